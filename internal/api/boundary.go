package api

import (
	"net/http"

	"github.com/devsecops-demo/api/internal/api/shared"
)

// HandlerFunc is a route handler that returns its outcome instead of writing
// it. On success body is encoded as JSON with status; on failure err is
// mapped to the error envelope and status and body are ignored.
type HandlerFunc func(r *http.Request) (status int, body any, err error)

// Handle adapts fn to an http.HandlerFunc.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shared.LimitBody(w, r)

		status, body, err := fn(r)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, status, body)
	}
}
