package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/devsecops-demo/api/internal/platform/logger"
)

// now is the clock used for envelope timestamps.
var now = time.Now

// ErrorResponse is the uniform error envelope returned on every failure.
type ErrorResponse struct {
	Error     bool      `json:"error"`
	Message   string    `json:"message"`
	Details   *string   `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse builds an envelope stamped with the current UTC time.
// An empty details string is serialized as null.
func NewErrorResponse(message, details string) ErrorResponse {
	resp := ErrorResponse{
		Error:     true,
		Message:   message,
		Timestamp: now().UTC(),
	}
	if details != "" {
		resp.Details = &details
	}
	return resp
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the error envelope with the given status code.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message, details string) {
	RespondWithJSON(w, r, status, NewErrorResponse(message, details))
}

// RespondWithErrorAndLog writes the error envelope and logs the underlying
// error. The raw error is never included in the response; only message and
// details, which the caller has already decided are safe, are sent.
//
// Log level strategy:
//   - 5xx errors: ERROR
//   - 429 Too Many Requests: WARN
//   - other 4xx errors: DEBUG
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	details string,
	err error,
) {
	logAttrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", message),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status == http.StatusTooManyRequests:
		logLevel = slog.LevelWarn
	}

	logger.FromContextOrDefault(r.Context(), nil).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithError(w, r, status, message, details)
}
