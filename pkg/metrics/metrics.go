// Package metrics provides the Prometheus reporting layer for repool.
// The pool engine only produces telemetry snapshots; this package is the
// external collaborator that turns those snapshots into metrics.
//
// # Basic Usage
//
//	collector := metrics.NewPoolCollector()
//	p.SetObserver(collector.Observe)
//
//	// Every mutating pool operation now updates:
//	//   repool_pool_instances{pool="..."}
//	//   repool_pool_active_instances{pool="..."}
//	//   repool_pool_spillover_instances{pool="..."}
//	//   repool_pool_recycles_total{pool="..."}
//	//   repool_pool_pooled_uses_total{pool="..."}
//
// A single collector can observe any number of pools; snapshots are keyed
// by the pool label.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gorepool/repool/pkg/pool"
)

var (
	// PoolInstances tracks the total number of instances each pool holds.
	PoolInstances = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "repool_pool_instances",
			Help: "Total number of instances held by the pool",
		},
		[]string{"pool"},
	)

	// PoolActive tracks the number of claimed instances per pool.
	PoolActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "repool_pool_active_instances",
			Help: "Number of instances currently claimed by callers",
		},
		[]string{"pool"},
	)

	// PoolSpillover tracks how far each pool sits beyond its maximum capacity.
	PoolSpillover = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "repool_pool_spillover_instances",
			Help: "Number of instances currently beyond the pool's maximum capacity",
		},
		[]string{"pool"},
	)

	// PoolRecycles counts forced reclamations of the oldest claimed instance.
	PoolRecycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repool_pool_recycles_total",
			Help: "Total number of forced instance recycles",
		},
		[]string{"pool"},
	)

	// PoolPooledUses counts acquisitions satisfied without creating a new instance.
	PoolPooledUses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repool_pool_pooled_uses_total",
			Help: "Total number of acquisitions served from pooled instances",
		},
		[]string{"pool"},
	)
)

// PoolCollector bridges pool telemetry snapshots into Prometheus metrics.
// Gauges are set directly from each snapshot; the snapshot's monotonic
// counters are converted into counter increments by tracking the last
// observed value per pool label.
type PoolCollector struct {
	mu           sync.Mutex
	lastRecycles map[string]int64
	lastUses     map[string]int64
}

// NewPoolCollector creates a collector ready to observe pools.
func NewPoolCollector() *PoolCollector {
	return &PoolCollector{
		lastRecycles: make(map[string]int64),
		lastUses:     make(map[string]int64),
	}
}

// Observe records one telemetry snapshot. Its signature matches
// pool.Observer, so it can be installed directly:
//
//	p.SetObserver(collector.Observe)
func (c *PoolCollector) Observe(t pool.Telemetry) {
	PoolInstances.WithLabelValues(t.Label).Set(float64(t.Instances))
	PoolActive.WithLabelValues(t.Label).Set(float64(t.Active))
	PoolSpillover.WithLabelValues(t.Label).Set(float64(t.ActiveSpillover))

	c.mu.Lock()
	defer c.mu.Unlock()

	if d := t.Recycles - c.lastRecycles[t.Label]; d > 0 {
		PoolRecycles.WithLabelValues(t.Label).Add(float64(d))
	}
	c.lastRecycles[t.Label] = t.Recycles

	if d := t.PooledUses - c.lastUses[t.Label]; d > 0 {
		PoolPooledUses.WithLabelValues(t.Label).Add(float64(d))
	}
	c.lastUses[t.Label] = t.PooledUses
}

// Forget drops the counter baseline for a pool label. Call it when a pool
// is discarded and its label may be reused by a fresh pool whose counters
// restart at zero.
func (c *PoolCollector) Forget(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lastRecycles, label)
	delete(c.lastUses, label)
}
