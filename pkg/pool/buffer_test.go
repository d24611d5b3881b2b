package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorepool/repool/pkg/pool"
)

func TestBufferReuseKeepsCapacity(t *testing.T) {
	p, err := pool.New(pool.NewBufferFactory(64), pool.Config{Label: "buffers"})
	require.NoError(t, err)

	b, err := p.Acquire()
	require.NoError(t, err)

	_, err = b.WriteString("hello, pool")
	require.NoError(t, err)
	assert.Equal(t, 11, b.Len())

	p.Release(b)
	assert.Zero(t, b.Len(), "release must drop the content")

	again, err := p.Acquire()
	require.NoError(t, err)
	assert.Same(t, b, again)
	assert.Zero(t, again.Len())
	assert.GreaterOrEqual(t, cap(again.Bytes()), 64, "reuse must keep the backing array")
}

func TestBufferRecycleResets(t *testing.T) {
	p, err := pool.New(pool.NewBufferFactory(16), pool.Config{Label: "buffers", MaxCapacity: 1})
	require.NoError(t, err)

	b1, err := p.Acquire()
	require.NoError(t, err)
	_, err = b1.Write([]byte{1, 2, 3})
	require.NoError(t, err)

	// Capacity is exhausted, so this acquisition recycles b1 out from
	// under its previous user.
	b2, err := p.Acquire()
	require.NoError(t, err)
	assert.Same(t, b1, b2)
	assert.Zero(t, b2.Len(), "recycled buffer must be fully reset")
}

func TestBufferDiscardRemovesFromPool(t *testing.T) {
	p, err := pool.New(pool.NewBufferFactory(16), pool.Config{Label: "buffers"})
	require.NoError(t, err)

	b, err := p.Acquire()
	require.NoError(t, err)
	require.Equal(t, 1, p.Len())

	b.Discard()

	assert.Equal(t, 0, p.Len())
	assert.Nil(t, b.Bytes())

	// A second discard has no owner to talk to.
	b.Discard()
	assert.Equal(t, 0, p.Len())
}
