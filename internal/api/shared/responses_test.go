package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/parky-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	RespondWithJSON(rec, req, http.StatusCreated, map[string]interface{}{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusNotFound, "Park not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Park not found", body.Error)
	assert.Equal(t, GetTraceID(req.Context()), body.TraceID)
}

func TestRespondWithErrorNoTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusBadRequest, "bad")

	assert.JSONEq(t, `{"error":"bad"}`, rec.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{name: "server error", status: http.StatusInternalServerError, wantLevel: `"level":"ERROR"`},
		{name: "client error", status: http.StatusBadRequest, wantLevel: `"level":"DEBUG"`},
		{name: "rate limited", status: http.StatusTooManyRequests, wantLevel: `"level":"WARN"`},
		{name: "elevated client error", status: http.StatusNotFound, opts: []ResponseOption{WithElevatedLogLevel()}, wantLevel: `"level":"WARN"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.NewTestLogger(t)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/parks", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), log))
			rec := httptest.NewRecorder()

			cause := errors.New("dial postgres://parky:hunter2@db:5432/parky: refused")
			RespondWithErrorAndLog(rec, req, tc.status, "Failed to create park", cause, tc.opts...)

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, `{"error":"Failed to create park"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "hunter2")

			out := buf.String()
			assert.Contains(t, out, tc.wantLevel)
			assert.Contains(t, out, "API error response")
			assert.NotContains(t, out, "hunter2")
		})
	}
}
