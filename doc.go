// Package repool provides an ordered object pool for reusable resources.
//
// The pool keeps every instance it manages in the order it was first
// acquired, reuses released instances before creating new ones, spills over
// past its maximum capacity when an allowance permits, and recycles the
// oldest active instance in place when it cannot grow any further. Every
// mutation broadcasts a telemetry snapshot to an optional observer.
//
// The library lives in pkg/pool; supporting packages cover configuration
// (pkg/config), structured logging (pkg/logger), error values (pkg/errors),
// and Prometheus reporting (pkg/metrics). The repool CLI under cmd/repool
// drives a synthetic workload against a buffer pool for experimentation.
//
// # Quick Start
//
//	factory := pool.NewBufferFactory(1024)
//	p, err := pool.New(factory, pool.Config{Label: "scratch", MinCapacity: 4})
//	if err != nil {
//		return err
//	}
//	buf, err := p.Acquire()
//	if err != nil {
//		return err
//	}
//	buf.WriteString("hello")
//	p.Release(buf)
//
// See pkg/pool for the full capacity and spillover semantics.
package repool
