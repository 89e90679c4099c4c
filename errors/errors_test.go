package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrapPreservesSentinel(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "resolve document")

	assert.Contains(t, wrapped.Error(), "resolve document")
	assert.True(t, Is(wrapped, ErrNotFound))
	assert.False(t, Is(wrapped, ErrInvalidRequest))
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(New("something else")))
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(NewNotFoundError("document %q not found", "loi-x")))
}

func TestIsInvalidRequestError(t *testing.T) {
	assert.False(t, IsInvalidRequestError(nil))
	assert.True(t, IsInvalidRequestError(NewInvalidRequestError("citation is required")))
	assert.False(t, IsInvalidRequestError(ErrNotFound))
}

func TestNewInvalidRequestErrorMessage(t *testing.T) {
	err := NewInvalidRequestError("as_of_date must be an ISO date (YYYY-MM-DD), got %q", "2026/01/01")
	assert.Contains(t, err.Error(), "as_of_date must be an ISO date")
	assert.Contains(t, err.Error(), "2026/01/01")
}
