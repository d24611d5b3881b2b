// Package pool provides a generic instance pool that hands out reusable
// instances of a caller-defined resource type, reclaiming and recycling them
// instead of paying repeated allocation and teardown cost.
//
// Unlike sync.Pool, which is an opaque cache the runtime may drain at any
// time, this pool owns an ordered collection of instances and gives the
// caller explicit control over minimum and maximum capacity, spillover
// beyond the maximum, and forced recycling of the oldest claimed instance
// when no capacity remains. Every instance is created through a factory
// callback supplied by the owner and destroyed explicitly by the pool.
//
// The package provides:
//   - Type-safe pooling with Pool[T] over any Poolable resource
//   - Acquire/Release lifecycle with oldest-first reuse
//   - Minimum-capacity prewarming and maximum-capacity eviction
//   - Spillover allowance for bounded bursts beyond the maximum
//   - Recycling of the oldest active instance under full load
//   - Telemetry snapshots recomputed after every mutating operation
//   - A ready-made Buffer resource for byte-slice workloads
//
// # Basic Usage
//
//	factory := func() (*conn, error) { return dial() }
//
//	p, err := pool.New(factory, pool.Config{
//	    Label:              "conns",
//	    MaxCapacity:        8,
//	    SpilloverAllowance: 2,
//	})
//	if err != nil {
//	    return err
//	}
//
//	c, err := p.Acquire()
//	if err != nil {
//	    return err
//	}
//	// Use c...
//	p.Release(c)
//
// # Capacity Policy
//
// A pool with MaxCapacity n hands out at most n long-lived instances. When
// all n are claimed, an acquisition either spills over (a short-lived extra
// instance, deleted on its next release) if the spillover allowance permits,
// or recycles the oldest claimed instance, notifying it through Recycled so
// it can reinitialize for its new user.
//
// # Concurrency
//
// A Pool is owned by a single logical caller and is not safe for concurrent
// use. All operations are synchronous and run to completion; there is no
// blocking, cancellation, or retry anywhere in the engine.
package pool
