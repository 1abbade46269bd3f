// Package api handles incoming HTTP requests, request decoding and response
// formatting. It acts as the boundary between HTTP clients and the services
// in internal/service.
//
// Handlers return (status, body, error) instead of writing responses
// themselves. Handle adapts them to http.HandlerFunc and converts every error
// into the uniform JSON envelope through HandleAPIError.
package api
