package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cipherswarm/cipherswarm/pkg/services"
)

func TestClassifyServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error maps to 422",
			err:        services.NewValidationError("mask", "mask attacks require a mask"),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "wrapped not found maps to 404",
			err:        fmt.Errorf("%w: campaign 42", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "state conflict maps to 409",
			err:        services.NewStateConflictError("task", "completed", "accept_status"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "lease mismatch maps to 409",
			err:        services.ErrLeaseMismatch,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("%w: agent", services.ErrAlreadyExists),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid input maps to 422",
			err:        fmt.Errorf("%w: bad invitation", services.ErrInvalidInput),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := classifyServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestClassifyServiceError_NotFoundBodyIsOpaque(t *testing.T) {
	// 404 must be indistinguishable from forbidden: no entity detail leaks.
	_, body := classifyServiceError(fmt.Errorf("%w: campaign 42", services.ErrNotFound))
	assert.Equal(t, "not found", body.Error)
}

func TestClassifyServiceError_InternalBodyIsOpaque(t *testing.T) {
	_, body := classifyServiceError(errors.New("pq: password authentication failed for user postgres"))
	assert.Equal(t, "internal server error", body.Error)
}
