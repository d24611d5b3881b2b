package pool

// Config holds the capacity policy for a Pool. It is read once at
// construction; capacity limits can be adjusted later through
// SetMinCapacity and SetMaxCapacity.
type Config struct {
	// Label is a descriptive name carried into every telemetry snapshot.
	Label string

	// MinCapacity is the number of instances the pool keeps prewarmed.
	// Instances created to satisfy the minimum are left available, not
	// claimed.
	MinCapacity int

	// MaxCapacity bounds the number of long-lived instances. A
	// non-positive value means unbounded.
	MaxCapacity int

	// SpilloverAllowance controls creation beyond MaxCapacity when every
	// instance is claimed: -1 allows unlimited spillover, 0 disables it,
	// and a positive value permits that many extra instances. Spillover
	// instances are deleted, not recycled, on their next release.
	SpilloverAllowance int
}

// entry pairs an instance with its availability flag. The flag is owned by
// the pool; resources never see or mutate it.
type entry[T Poolable] struct {
	value     T
	available bool
}

// Pool manages an ordered, oldest-first collection of poolable instances.
// Index 0 is the oldest entry. The insertion protocol keeps available
// instances clustered at the front: releases reinsert at the head, claims
// append to the tail.
//
// A Pool is not safe for concurrent use; it assumes a single logical owner
// issuing synchronous calls.
type Pool[T Poolable] struct {
	label   string
	factory Factory[T]
	entries []entry[T]

	minCapacity int
	maxCapacity int
	spillover   int

	recycles int64
	reuses   int64

	observer Observer
}

// New creates a pool around the given factory and prewarms it to
// cfg.MinCapacity. A factory error during prewarming is returned with the
// already-created instances left in the pool.
func New[T Poolable](factory Factory[T], cfg Config) (*Pool[T], error) {
	p := &Pool[T]{
		label:       cfg.Label,
		factory:     factory,
		minCapacity: cfg.MinCapacity,
		maxCapacity: cfg.MaxCapacity,
		spillover:   cfg.SpilloverAllowance,
	}
	if err := p.prewarm(); err != nil {
		return p, err
	}
	p.notify()
	return p, nil
}

// Label returns the descriptive name the pool was configured with.
func (p *Pool[T]) Label() string { return p.label }

// Len returns the total number of instances currently in the pool,
// claimed and available alike.
func (p *Pool[T]) Len() int { return len(p.entries) }

// MinCapacity returns the configured minimum capacity.
func (p *Pool[T]) MinCapacity() int { return p.minCapacity }

// MaxCapacity returns the configured maximum capacity. Non-positive means
// unbounded.
func (p *Pool[T]) MaxCapacity() int { return p.maxCapacity }

// Acquire returns an instance ready for active use. In priority order it
// reuses the oldest available instance, creates a new one while under the
// maximum capacity, spills over if the allowance permits, or recycles the
// oldest claimed instance. It never blocks and never returns a deleted
// instance.
//
// A factory error is returned as-is and leaves the pool unchanged.
func (p *Pool[T]) Acquire() (T, error) {
	if len(p.entries) == 0 {
		return p.acquireNew()
	}

	if p.entries[0].available {
		v := p.entries[0].value
		p.claim(v, false)
		p.reuses++
		p.notify()
		return v, nil
	}

	// No available instances: the oldest entry is claimed, so every
	// entry behind it is too.
	n := len(p.entries)
	if p.maxCapacity <= 0 || n < p.maxCapacity {
		return p.acquireNew()
	}
	if p.spillover < 0 || (p.spillover > 0 && n < p.maxCapacity+p.spillover) {
		return p.acquireNew()
	}

	return p.recycleOldest(), nil
}

// acquireNew constructs an instance through the factory and claims it.
func (p *Pool[T]) acquireNew() (T, error) {
	v, err := p.factory()
	if err != nil {
		var zero T
		return zero, err
	}
	v.Created(p)
	p.claim(v, true)
	p.notify()
	return v, nil
}

// recycleOldest force-reclaims the oldest claimed instance: it moves to the
// tail of the sequence and receives the Recycled notification. Claimed is
// deliberately not fired on this path.
func (p *Pool[T]) recycleOldest() T {
	e := p.entries[0]
	copy(p.entries, p.entries[1:])
	p.entries[len(p.entries)-1] = e
	e.value.Recycled()
	p.recycles++
	p.notify()
	return e.value
}

// claim marks an instance active: it is appended to the tail of the
// sequence with the availability flag cleared, then notified. Brand-new
// instances have no prior position to remove.
func (p *Pool[T]) claim(v T, isNew bool) {
	if !isNew {
		if i := p.indexOf(v); i >= 0 {
			p.removeAt(i)
		}
	}
	p.entries = append(p.entries, entry[T]{value: v})
	v.Claimed()
}

// Release returns a claimed instance to the pool. While the pool holds more
// instances than its maximum capacity the instance is in the spillover zone
// and is permanently deleted instead of being made available again.
// Otherwise it is reinserted at the head as the oldest available instance,
// which is what keeps reuse oldest-first.
//
// Releasing an instance the pool does not hold is a no-op.
func (p *Pool[T]) Release(v T) {
	i := p.indexOf(v)
	if i < 0 {
		return
	}

	p.removeAt(i)
	if p.maxCapacity > 0 && len(p.entries) >= p.maxCapacity {
		v.Removed()
		p.notify()
		return
	}

	p.entries = append(p.entries, entry[T]{})
	copy(p.entries[1:], p.entries)
	p.entries[0] = entry[T]{value: v, available: true}
	v.Relinquished()
	p.notify()
}

// DeleteFromInstance strips an instance from the pool's collection with no
// other side effect. It implements Owner for instance-initiated removal;
// the instance is assumed to have already cleaned itself up, so Removed is
// not fired. Unknown instances are ignored.
func (p *Pool[T]) DeleteFromInstance(item Poolable) {
	for i := range p.entries {
		if Poolable(p.entries[i].value) == item {
			p.removeAt(i)
			p.notify()
			return
		}
	}
}

// SetMinCapacity stores a new minimum capacity and prewarms the pool up to
// it. The raw value is stored even when it is inconsistent with the current
// maximum (min > max with both non-negative), but prewarming is skipped
// until consistency is restored. A factory error during prewarming is
// returned with the instances created so far kept in the pool.
func (p *Pool[T]) SetMinCapacity(n int) error {
	if n == p.minCapacity {
		return nil
	}
	p.minCapacity = n
	err := p.prewarm()
	p.notify()
	return err
}

// SetMaxCapacity stores a new maximum capacity and evicts the oldest
// instances if the pool now exceeds it. A non-positive value means
// unbounded and disables enforcement entirely. As with SetMinCapacity, an
// inconsistent value (max < min) is stored but not enforced.
func (p *Pool[T]) SetMaxCapacity(n int) {
	if n == p.maxCapacity {
		return
	}
	p.maxCapacity = n
	if n > 0 && p.minCapacity <= n {
		for len(p.entries) > n {
			e := p.entries[0]
			p.removeAt(0)
			e.value.Removed()
		}
	}
	p.notify()
}

// prewarm creates instances until the pool holds minCapacity of them. Each
// is created and immediately relinquished, never claimed, so it lands at
// the head of the sequence marked available.
func (p *Pool[T]) prewarm() error {
	if p.minCapacity <= 0 {
		return nil
	}
	if p.maxCapacity > 0 && p.minCapacity > p.maxCapacity {
		// Inconsistent configuration: keep the stored value, skip
		// enforcement until the caller restores min <= max.
		return nil
	}
	for len(p.entries) < p.minCapacity {
		v, err := p.factory()
		if err != nil {
			return err
		}
		v.Created(p)
		p.entries = append(p.entries, entry[T]{})
		copy(p.entries[1:], p.entries)
		p.entries[0] = entry[T]{value: v, available: true}
		v.Relinquished()
	}
	return nil
}

// Clean deletes the leading run of available instances, stopping at the
// first claimed one. Available instances cluster at the front under the
// normal release protocol, so anything past the first claimed entry is left
// alone.
func (p *Pool[T]) Clean() {
	for len(p.entries) > 0 && p.entries[0].available {
		e := p.entries[0]
		p.removeAt(0)
		e.value.Removed()
	}
	p.notify()
}

// Clear unconditionally deletes every instance, claimed or available, and
// empties the pool. Calling Clear on an empty pool is a no-op apart from
// the telemetry broadcast.
func (p *Pool[T]) Clear() {
	for _, e := range p.entries {
		e.value.Removed()
	}
	p.entries = p.entries[:0]
	p.notify()
}

// indexOf locates an instance in the sequence by identity, or -1 if the
// pool does not hold it.
func (p *Pool[T]) indexOf(v T) int {
	for i := range p.entries {
		if Poolable(p.entries[i].value) == Poolable(v) {
			return i
		}
	}
	return -1
}

// removeAt deletes the entry at index i, preserving order.
func (p *Pool[T]) removeAt(i int) {
	copy(p.entries[i:], p.entries[i+1:])
	p.entries[len(p.entries)-1] = entry[T]{}
	p.entries = p.entries[:len(p.entries)-1]
}
