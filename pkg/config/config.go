// Package config provides configuration loading for repool. Pool
// definitions live in YAML files; the loader substitutes ${VAR}
// environment references before parsing and offers up-front validation so
// misconfigured capacity bounds are caught before they silently disable
// the engine's enforcement.
package config

import (
	"github.com/gorepool/repool/pkg/errors"
	"github.com/gorepool/repool/pkg/pool"
)

// PoolConfig describes one pool in a configuration file. It mirrors
// pool.Config with serialization tags and validation.
type PoolConfig struct {
	// Label identifies the pool in telemetry and logs
	Label string `yaml:"label" json:"label"`

	// MinCapacity is the prewarmed floor of instances
	MinCapacity int `yaml:"min_capacity" json:"min_capacity"`

	// MaxCapacity bounds long-lived instances; non-positive means unbounded
	MaxCapacity int `yaml:"max_capacity" json:"max_capacity"`

	// SpilloverAllowance permits extra instances beyond MaxCapacity:
	// -1 unlimited, 0 none, >0 bounded
	SpilloverAllowance int `yaml:"spillover_allowance" json:"spillover_allowance"`
}

// Validate checks the capacity bounds for consistency. The pool engine
// itself never rejects an inconsistent configuration (it stores the value
// and skips enforcement); callers that want a hard failure run Validate
// before constructing the pool.
func (c PoolConfig) Validate() error {
	if c.Label == "" {
		return errors.New(errors.ErrorTypeValidation, "pool label is required")
	}
	if c.MinCapacity < 0 {
		return errors.New(errors.ErrorTypeValidation, "min_capacity must not be negative").
			WithDetail("pool", c.Label).
			WithDetail("min_capacity", c.MinCapacity)
	}
	if c.MaxCapacity > 0 && c.MinCapacity > c.MaxCapacity {
		return errors.New(errors.ErrorTypeValidation, "min_capacity exceeds max_capacity").
			WithDetail("pool", c.Label).
			WithDetail("min_capacity", c.MinCapacity).
			WithDetail("max_capacity", c.MaxCapacity)
	}
	if c.SpilloverAllowance < -1 {
		return errors.New(errors.ErrorTypeValidation, "spillover_allowance must be -1, 0, or positive").
			WithDetail("pool", c.Label).
			WithDetail("spillover_allowance", c.SpilloverAllowance)
	}
	return nil
}

// Pool converts the file representation into the engine's Config.
func (c PoolConfig) Pool() pool.Config {
	return pool.Config{
		Label:              c.Label,
		MinCapacity:        c.MinCapacity,
		MaxCapacity:        c.MaxCapacity,
		SpilloverAllowance: c.SpilloverAllowance,
	}
}

// File is the top-level structure of a repool configuration file.
type File struct {
	Pools []PoolConfig `yaml:"pools" json:"pools"`
}

// Validate validates every pool definition and rejects duplicate labels.
func (f File) Validate() error {
	if len(f.Pools) == 0 {
		return errors.New(errors.ErrorTypeValidation, "configuration defines no pools")
	}
	seen := make(map[string]struct{}, len(f.Pools))
	for _, p := range f.Pools {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.Label]; dup {
			return errors.New(errors.ErrorTypeValidation, "duplicate pool label").
				WithDetail("pool", p.Label)
		}
		seen[p.Label] = struct{}{}
	}
	return nil
}
