package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/parky-api/internal/api/shared"
	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	base, buf := logger.NewTestLogger(t)

	var seenTraceID string
	handler := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContextOrDefault(r.Context(), nil).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/parks", nil))

	require.Len(t, seenTraceID, 32)
	assert.Equal(t, seenTraceID, rec.Header().Get(TraceIDHeader))

	entries := buf.Entries(t)
	require.NotEmpty(t, entries)
	assert.Contains(t, buf.Messages(t), "inside handler")
	for _, entry := range entries {
		assert.Equal(t, seenTraceID, entry["trace_id"])
	}
}
