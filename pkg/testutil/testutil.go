// Package testutil provides testing utilities for repool
package testutil

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/gorepool/repool/pkg/pool"
)

// TestLogger creates a test logger that writes to the test output.
// The logger is automatically cleaned up when the test completes.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// RequireTelemetry fails the test immediately if the snapshot's counts do
// not match. The monotonic counters are not compared; use the snapshot
// directly when they matter.
func RequireTelemetry(t *testing.T, want, got pool.Telemetry) {
	t.Helper()

	if want.Instances != got.Instances {
		t.Fatalf("instances: expected %d, got %d", want.Instances, got.Instances)
	}
	if want.Active != got.Active {
		t.Fatalf("active: expected %d, got %d", want.Active, got.Active)
	}
	if want.ActiveSpillover != got.ActiveSpillover {
		t.Fatalf("active spillover: expected %d, got %d", want.ActiveSpillover, got.ActiveSpillover)
	}
}

