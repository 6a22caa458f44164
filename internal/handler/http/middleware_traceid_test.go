package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	t.Run("generates trace id when none provided", func(t *testing.T) {
		h, _ := newTestHandler(t)

		var called bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		require.True(t, called)
		traceID := rec.Header().Get(traceIDHeader)
		require.NotEmpty(t, traceID)
		_, err := uuid.Parse(traceID)
		assert.NoError(t, err)
	})

	t.Run("propagates trace id from request header", func(t *testing.T) {
		h, _ := newTestHandler(t)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(traceIDHeader, "trace-from-client")

		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
	})
}
