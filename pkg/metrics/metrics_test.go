package metrics_test

import (
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorepool/repool/pkg/metrics"
	"github.com/gorepool/repool/pkg/pool"
)

func TestPoolCollectorObserve(t *testing.T) {
	c := metrics.NewPoolCollector()

	c.Observe(pool.Telemetry{
		Label:           "obs-a",
		Instances:       3,
		Active:          2,
		ActiveSpillover: 1,
		Recycles:        4,
		PooledUses:      7,
	})

	assert.Equal(t, 3.0, promtestutil.ToFloat64(metrics.PoolInstances.WithLabelValues("obs-a")))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(metrics.PoolActive.WithLabelValues("obs-a")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(metrics.PoolSpillover.WithLabelValues("obs-a")))
	assert.Equal(t, 4.0, promtestutil.ToFloat64(metrics.PoolRecycles.WithLabelValues("obs-a")))
	assert.Equal(t, 7.0, promtestutil.ToFloat64(metrics.PoolPooledUses.WithLabelValues("obs-a")))

	// Counters advance by the delta between snapshots, not the raw value.
	c.Observe(pool.Telemetry{Label: "obs-a", Instances: 3, Active: 3, Recycles: 6, PooledUses: 7})

	assert.Equal(t, 3.0, promtestutil.ToFloat64(metrics.PoolActive.WithLabelValues("obs-a")))
	assert.Equal(t, 6.0, promtestutil.ToFloat64(metrics.PoolRecycles.WithLabelValues("obs-a")))
	assert.Equal(t, 7.0, promtestutil.ToFloat64(metrics.PoolPooledUses.WithLabelValues("obs-a")))
}

func TestPoolCollectorAsObserver(t *testing.T) {
	c := metrics.NewPoolCollector()

	p, err := pool.New(pool.NewBufferFactory(16), pool.Config{Label: "obs-b", MaxCapacity: 1})
	require.NoError(t, err)
	p.SetObserver(c.Observe)

	b, err := p.Acquire()
	require.NoError(t, err)
	p.Release(b)

	_, err = p.Acquire()
	require.NoError(t, err)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(metrics.PoolInstances.WithLabelValues("obs-b")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(metrics.PoolActive.WithLabelValues("obs-b")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(metrics.PoolPooledUses.WithLabelValues("obs-b")))
}

func TestPoolCollectorForget(t *testing.T) {
	c := metrics.NewPoolCollector()

	c.Observe(pool.Telemetry{Label: "obs-c", Recycles: 5, PooledUses: 5})
	c.Forget("obs-c")

	// A fresh pool restarting at zero must not be treated as a negative
	// delta.
	c.Observe(pool.Telemetry{Label: "obs-c", Recycles: 1, PooledUses: 1})

	assert.Equal(t, 6.0, promtestutil.ToFloat64(metrics.PoolRecycles.WithLabelValues("obs-c")))
}
