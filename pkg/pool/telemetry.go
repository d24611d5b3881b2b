package pool

// Telemetry is an immutable snapshot of a pool's counters. The pool only
// produces these values; formatting, logging, and transport belong to an
// external reporting layer. The json tags exist so such a layer can
// serialize snapshots directly.
type Telemetry struct {
	// Label identifies the pool the snapshot came from.
	Label string `json:"label"`

	// Instances is the total number of instances the pool holds.
	Instances int `json:"instances"`

	// Active is the number of claimed instances, counted from the tail
	// of the sequence while the claimed run lasts.
	Active int `json:"active"`

	// Recycles is the monotonically increasing count of forced
	// reclamations of the oldest claimed instance.
	Recycles int64 `json:"recycles"`

	// ActiveSpillover is how far the pool currently sits beyond its
	// maximum capacity, or zero when the maximum is unbounded.
	ActiveSpillover int `json:"active_spillover"`

	// PooledUses counts every time an acquisition was satisfied without
	// creating a new instance: reuses of available instances plus
	// recycles.
	PooledUses int64 `json:"pooled_uses"`
}

// Observer receives a fresh telemetry snapshot after every mutating pool
// operation. Observers must not call back into the pool.
type Observer func(Telemetry)

// SetObserver installs the telemetry observer and immediately sends it the
// current snapshot. A nil observer disables broadcasting.
func (p *Pool[T]) SetObserver(fn Observer) {
	p.observer = fn
	p.notify()
}

// Telemetry recomputes and returns the current snapshot.
func (p *Pool[T]) Telemetry() Telemetry {
	active := 0
	for i := len(p.entries) - 1; i >= 0 && !p.entries[i].available; i-- {
		active++
	}

	spillover := 0
	if p.maxCapacity > 0 && len(p.entries) > p.maxCapacity {
		spillover = len(p.entries) - p.maxCapacity
	}

	return Telemetry{
		Label:           p.label,
		Instances:       len(p.entries),
		Active:          active,
		Recycles:        p.recycles,
		ActiveSpillover: spillover,
		PooledUses:      p.recycles + p.reuses,
	}
}

// notify broadcasts the current snapshot to the observer, if any.
func (p *Pool[T]) notify() {
	if p.observer != nil {
		p.observer(p.Telemetry())
	}
}
