package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMyError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewMyError(ErrBadParameter, "invalid input", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid input", e.Message)
	assert.Same(t, inner, e.Inner)
}

func TestNewInternalServerError(t *testing.T) {
	e := NewInternalServerError("registry failed", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrInternalServerError, e.Code)
	assert.Equal(t, "registry failed", e.Message)
}

func TestNewBadParameterError(t *testing.T) {
	e := NewBadParameterError("invalid body", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid body", e.Message)
}

func TestNewBadConfigurationError(t *testing.T) {
	inner := errors.New("parse failure")
	e := NewBadConfigurationError("failed to construct url", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadConfiguration, e.Code)
	assert.Equal(t, "failed to construct url", e.Message)
	assert.Same(t, inner, e.Inner)
}

func TestNewBadConfigurationError_KeepsCodeOverInnerMyError(t *testing.T) {
	inner := NewInternalServerError("redis down", nil)
	e := NewBadConfigurationError("failed to construct url", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadConfiguration, e.Code)
}

func TestToMyError_WithMyError(t *testing.T) {
	e := NewBadParameterError("bad", nil)
	got := ToMyError(e)
	require.NotNil(t, got)
	assert.Same(t, e, got)
}

func TestToMyError_WithOrdinaryError(t *testing.T) {
	e := errors.New("plain")
	got := ToMyError(e)
	assert.Nil(t, got)
}

func TestIsEntityNotFoundError(t *testing.T) {
	e := NewEntityNotFoundError("gone", nil)
	assert.True(t, IsEntityNotFoundError(e))
}

func TestIsBadConfigurationError(t *testing.T) {
	e := NewBadConfigurationError("unbuildable url", nil)
	assert.True(t, IsBadConfigurationError(e))
	assert.False(t, IsBadConfigurationError(errors.New("plain")))
	assert.False(t, IsBadConfigurationError(nil))
}
