package store_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campfinder/campfinder-server/internal/store"
)

func TestError_Error(t *testing.T) {
	err := &store.Error{
		Code:    http.StatusNotFound,
		Message: "not found",
	}

	assert.Equal(t, "not found", err.Error())
}

func TestError_ErrorWithCause(t *testing.T) {
	cause := errors.New("underlying error")
	err := &store.Error{
		Code:    http.StatusNotFound,
		Message: "not found",
		Err:     cause,
	}

	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "underlying error")
	assert.Equal(t, cause, err.Unwrap())
}

func TestError_WithMessage(t *testing.T) {
	modified := store.ErrNotFound.WithMessage("custom message")

	assert.Equal(t, http.StatusNotFound, modified.Code)
	assert.Equal(t, "custom message", modified.Message)
	assert.Equal(t, "resource not found", store.ErrNotFound.Message, "sentinel is unchanged")
}

func TestError_WithCause(t *testing.T) {
	cause := errors.New("db error")
	modified := store.ErrUnavailable.WithCause(cause)

	assert.Equal(t, http.StatusServiceUnavailable, modified.Code)
	assert.ErrorIs(t, modified, cause)
}

func TestError_IsByCode(t *testing.T) {
	assert.ErrorIs(t, store.ErrProfileNotFound, store.ErrNotFound)
	assert.ErrorIs(t, fmt.Errorf("load: %w", store.ErrProfileNotFound), store.ErrNotFound)
	assert.NotErrorIs(t, store.ErrProfileNotFound, store.ErrInvalidInput)
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      *store.Error
		wantCode int
	}{
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"profile not found", store.ErrProfileNotFound, http.StatusNotFound},
		{"invalid input", store.ErrInvalidInput, http.StatusBadRequest},
		{"unavailable", store.ErrUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.HTTPCode())
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}
