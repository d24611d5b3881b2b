package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorepool/repool/pkg/errors"
)

func TestNewCarriesTypeAndStack(t *testing.T) {
	err := errors.New(errors.ErrorTypeConfig, "bad capacity")

	assert.Equal(t, errors.ErrorTypeConfig, err.Type)
	assert.Equal(t, "config: bad capacity", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := errors.Wrap(cause, errors.ErrorTypeResource, "factory failed")

	require.NotNil(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "resource: factory failed: disk full", err.Error())

	// Wrapping nil stays nil.
	assert.Nil(t, errors.Wrap(nil, errors.ErrorTypeInternal, "ignored"))
}

func TestIsType(t *testing.T) {
	err := errors.New(errors.ErrorTypeValidation, "min exceeds max")
	wrapped := errors.Wrap(err, errors.ErrorTypeConfig, "loading pools")

	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
	assert.True(t, errors.IsType(wrapped, errors.ErrorTypeConfig))
	assert.False(t, errors.IsType(stderrors.New("plain"), errors.ErrorTypeConfig))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrorTypeValidation, "min exceeds max").
		WithDetail("min", 5).
		WithDetail("max", 2)

	assert.Equal(t, 5, err.Details["min"])
	assert.Equal(t, 2, err.Details["max"])
}
