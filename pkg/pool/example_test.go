// Package pool provides example usage of the instance pool.
package pool_test

import (
	"fmt"

	"github.com/gorepool/repool/pkg/pool"
)

// Example demonstrates the basic acquire/release cycle with the built-in
// Buffer resource.
func Example() {
	p, err := pool.New(pool.NewBufferFactory(256), pool.Config{
		Label:       "example",
		MaxCapacity: 4,
	})
	if err != nil {
		panic(err)
	}

	buf, err := p.Acquire()
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(buf, "pooled write #%d", 1)
	fmt.Println(string(buf.Bytes()))

	// Return the buffer so the next acquisition reuses it.
	p.Release(buf)

	again, _ := p.Acquire()
	fmt.Println(again == buf)

	// Output:
	// pooled write #1
	// true
}

// ExamplePool_Telemetry shows how an external reporting layer consumes
// telemetry snapshots.
func ExamplePool_Telemetry() {
	p, err := pool.New(pool.NewBufferFactory(64), pool.Config{
		Label:       "telemetry",
		MinCapacity: 2,
	})
	if err != nil {
		panic(err)
	}

	buf, _ := p.Acquire()
	defer p.Release(buf)

	tel := p.Telemetry()
	fmt.Printf("instances=%d active=%d pooled_uses=%d\n",
		tel.Instances, tel.Active, tel.PooledUses)

	// Output:
	// instances=2 active=1 pooled_uses=1
}

// ExamplePool_SetObserver wires a telemetry observer that fires after
// every mutating operation.
func ExamplePool_SetObserver() {
	p, err := pool.New(pool.NewBufferFactory(64), pool.Config{Label: "observed"})
	if err != nil {
		panic(err)
	}

	p.SetObserver(func(t pool.Telemetry) {
		fmt.Printf("%s: instances=%d active=%d\n", t.Label, t.Instances, t.Active)
	})

	buf, _ := p.Acquire()
	p.Release(buf)

	// Output:
	// observed: instances=0 active=0
	// observed: instances=1 active=1
	// observed: instances=1 active=0
}
