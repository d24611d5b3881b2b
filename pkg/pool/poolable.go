package pool

// Poolable is the capability surface every pooled resource must expose.
// The pool drives the full lifecycle of an instance through these
// notifications; the resource itself never tracks whether it is available.
//
// Lifecycle: created -> claimed (active) -> relinquished (available) ->
// claimed again, recycled, or removed. Removal is terminal.
//
// The pool tracks instances by interface identity, so resource types must
// be comparable; use a pointer type, as *Buffer does.
type Poolable interface {
	// Created is fired exactly once, immediately after factory
	// construction and before the first claim. The owner handle allows
	// the resource to request its own removal via DeleteFromInstance,
	// e.g. when it self-destructs outside the normal flow.
	Created(owner Owner)

	// Claimed notifies the resource that it has become active. Resources
	// typically reset transient state here.
	Claimed()

	// Relinquished notifies the resource that it has returned to the
	// available set.
	Relinquished()

	// Recycled notifies the resource that it is being force-reclaimed
	// from active use to satisfy a new request. This is stronger than a
	// relinquish/claim pair: the previous user never released it, so the
	// resource should fully reinitialize rather than soft-reset.
	Recycled()

	// Removed notifies the resource that it is being permanently removed
	// from the pool. The resource must release any external resources it
	// holds here.
	Removed()
}

// Owner is the handle a pool gives to each of its instances. It exists so a
// resource can initiate its own removal without holding a concrete,
// type-parameterized pool reference.
type Owner interface {
	// DeleteFromInstance removes an instance from the pool's collection
	// with no other side effect. The instance is assumed to have already
	// cleaned itself up; Removed is not fired.
	DeleteFromInstance(item Poolable)
}

// Factory constructs one new instance of the resource type. It is invoked
// exactly once per creation, never for recycling or spillover reuse. An
// error aborts the acquisition with no partial registration in the pool.
type Factory[T Poolable] func() (T, error)
