package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingEndpoint(t *testing.T) {
	err := MissingEndpoint("UsersClient")
	assert.Equal(t, ErrCodeConfiguration, err.Code)
	assert.Equal(t, "missing endpoint configuration", err.Message)
	assert.Equal(t, "UsersClient", err.Details["client"])
}

func TestUnknownEndpoint(t *testing.T) {
	err := UnknownEndpoint("users")
	assert.Contains(t, err.Error(), `"users"`)
	assert.True(t, IsConfiguration(err))
	assert.False(t, IsEntity(err))
}

func TestNotMapping(t *testing.T) {
	err := NotMapping(42)
	assert.Contains(t, err.Message, "int must be a mapping")
	assert.True(t, IsEntity(err))
}

func TestUndeclaredIsEntity(t *testing.T) {
	err := Undeclared("User", "password")
	assert.True(t, IsEntity(err))
	assert.Equal(t, "password", err.Details["attribute"])
}

func TestWrappedClassification(t *testing.T) {
	wrapped := fmt.Errorf("boot: %w", Configuration("bad root %q", ""))
	assert.True(t, IsConfiguration(wrapped))
	assert.False(t, IsConfiguration(stderrors.New("plain")))
}

func TestAppError_Cause(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Validation("root is required").WithCause(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "cause: root cause")
}
