package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gorepool/repool/pkg/errors"
)

// Load reads a YAML file into out, expanding ${VAR} environment
// references before parsing. Read failures carry ErrorTypeFile, parse
// failures ErrorTypeConfig.
func Load(filePath string, out interface{}) error {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: path comes from the caller
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to read config file").
			WithDetail("path", filePath)
	}

	expanded := os.Expand(string(data), os.Getenv)

	if err := yaml.Unmarshal([]byte(expanded), out); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse config file").
			WithDetail("path", filePath)
	}

	return nil
}

// Save writes in to a YAML file, creating or truncating it.
func Save(filePath string, in interface{}) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to marshal config")
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write config file").
			WithDetail("path", filePath)
	}

	return nil
}
