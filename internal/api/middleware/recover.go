package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/devsecops-demo/api/internal/platform/logger"
)

// Recoverer converts a panic in a downstream handler into an error passed to
// onError. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func Recoverer(onError ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.FromContextOrDefault(r.Context(), nil).Error("recovered from panic",
					"panic", fmt.Sprint(rvr),
					"stack", string(debug.Stack()))

				onError(w, r, fmt.Errorf("recovered from panic: %v", rvr))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
