package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devsecops-demo/api/internal/platform/logger"
	"github.com/devsecops-demo/api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "object response",
			status:       http.StatusOK,
			data:         map[string]interface{}{"message": "success", "data": 123},
			expectedBody: `{"data":123,"message":"success"}`,
		},
		{
			name:         "empty response",
			status:       http.StatusOK,
			data:         map[string]interface{}{},
			expectedBody: `{}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	fixed := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	original := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = original })

	withDetails := NewErrorResponse("validation error", "overflow")
	require.NotNil(t, withDetails.Details)
	assert.Equal(t, "overflow", *withDetails.Details)
	assert.True(t, withDetails.Error)
	assert.Equal(t, fixed, withDetails.Timestamp)

	data, err := json.Marshal(NewErrorResponse("internal server error", ""))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"error":true,"message":"internal server error","details":null,"timestamp":"2025-04-01T12:00:00Z"}`,
		string(data))
}

func TestRespondWithErrorAndLog(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/suma", nil)
	req = req.WithContext(WithTraceID(req.Context(), "trace-123"))
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "internal server error", "", assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["error"])
	assert.Equal(t, "internal server error", resp["message"])
	assert.Nil(t, resp["details"])
	assert.NotContains(t, w.Body.String(), assert.AnError.Error(), "raw error must not leak")
}

func TestRespondWithErrorAndLog_LogLevels(t *testing.T) {
	tests := []struct {
		status        int
		expectedLevel string
	}{
		{http.StatusBadRequest, "DEBUG"},
		{http.StatusUnsupportedMediaType, "DEBUG"},
		{http.StatusTooManyRequests, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}

	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			rec := testutils.NewLogRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/suma", nil)
			ctx := WithTraceID(req.Context(), "trace-xyz")
			req = req.WithContext(logger.WithContext(ctx, rec.Logger()))

			RespondWithErrorAndLog(httptest.NewRecorder(), req, tc.status, "msg", "", assert.AnError)

			entry, ok := rec.Find("API error response")
			require.True(t, ok)
			assert.Equal(t, tc.expectedLevel, entry["level"])
			assert.Equal(t, "trace-xyz", entry["trace_id"])
			assert.Equal(t, assert.AnError.Error(), entry["error"])
		})
	}
}
