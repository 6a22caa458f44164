package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dokanlabs/dokan-hisab/internal/store"
	"github.com/dokanlabs/dokan-hisab/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", validators.ErrMissingRecordID, http.StatusBadRequest},
		{"record not found", store.ErrRecordNotFound, http.StatusNotFound},
		{"statement failure", store.ErrExecutingStatement, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{
			name: "retryable storage failure wins over the wrapped sentinel",
			err:  fmt.Errorf("%w: %w: %w", store.ErrRetryableStorage, store.ErrExecutingStatement, errors.New("connection failure")),
			want: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
