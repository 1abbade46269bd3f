// Package middleware provides the HTTP middleware chain shared by every route:
// request tracing, access logging, panic recovery and per-client rate limiting.
//
// Middleware that must reject a request reports the failure through an
// ErrorHandler so that the response uses the same envelope as the handlers.
package middleware

import "net/http"

// ErrorHandler writes an error response for err.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
