package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorepool/repool/pkg/logger"
)

// The global logger is guarded by a sync.Once, so the failed-init path
// has to be driven as one ordered sequence.
func TestGetSurvivesFailedInit(t *testing.T) {
	require.Error(t, logger.Init(logger.Config{Level: "shouting"}))

	// The once is consumed: a retry reports success without rebuilding.
	assert.NoError(t, logger.Init(logger.Config{Level: "info"}))

	log := logger.Get()
	require.NotNil(t, log, "Get must fall back to a working logger")
	log.Info("fallback logger is usable")

	assert.NotNil(t, logger.With())
}
