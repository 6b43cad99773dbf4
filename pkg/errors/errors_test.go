package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("manufacturer", "abc-123")
	assert.Equal(t, "manufacturer with ID abc-123 not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsInvariantViolation(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "", "must not be empty")
	assert.Contains(t, err.Error(), "name")
	assert.True(t, IsValidationError(err))

	// Field-less message
	err = &ValidationError{Message: "bad submission"}
	assert.Equal(t, "validation failed: bad submission", err.Error())
}

func TestInvariantError(t *testing.T) {
	err := NewInvariantError("resolver", "duplicate candidate id gibson-1")
	assert.Contains(t, err.Error(), "resolver")
	assert.Contains(t, err.Error(), "duplicate candidate id")
	assert.True(t, IsInvariantViolation(err))
	assert.False(t, IsValidationError(err))
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := New("unexpected token")
	err := NewParseError("json", "batch.json", cause.Error(), cause)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "batch.json")
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, WrapValidation("name", nil))
	assert.NoError(t, WrapIO("read", "x.json", nil))
	assert.NoError(t, WrapParse("yaml", "x.yaml", nil))
	assert.NoError(t, WrapResource("commit", "model", "id", nil))

	wrapped := WrapResource("commit", "model", "m-1", fmt.Errorf("registry closed"))
	assert.Contains(t, wrapped.Error(), "failed to commit model m-1")
}
