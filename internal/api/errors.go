package api

import (
	"errors"
	"net/http"

	"github.com/devsecops-demo/api/internal/api/middleware"
	"github.com/devsecops-demo/api/internal/api/shared"
	"github.com/devsecops-demo/api/internal/domain"
)

// Errors raised by the router itself.
var (
	ErrNotFound         = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// ErrorKind classifies an error for the purpose of building a response.
type ErrorKind int

// Error kinds, one per distinct response. KindInternal is the fallback for
// anything unrecognized.
const (
	KindInternal ErrorKind = iota
	KindValidation
	KindInvalidArgument
	KindEmptyBody
	KindMalformedBody
	KindBodyTooLarge
	KindUnsupportedMediaType
	KindNotFound
	KindMethodNotAllowed
	KindRateLimited
)

// AllErrorKinds lists every ErrorKind.
var AllErrorKinds = []ErrorKind{
	KindInternal,
	KindValidation,
	KindInvalidArgument,
	KindEmptyBody,
	KindMalformedBody,
	KindBodyTooLarge,
	KindUnsupportedMediaType,
	KindNotFound,
	KindMethodNotAllowed,
	KindRateLimited,
}

// ClassifyError determines the ErrorKind of err.
func ClassifyError(err error) ErrorKind {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return KindValidation
	case errors.Is(err, domain.ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, shared.ErrEmptyBody):
		return KindEmptyBody
	case errors.Is(err, shared.ErrMalformedBody):
		return KindMalformedBody
	case errors.Is(err, shared.ErrBodyTooLarge):
		return KindBodyTooLarge
	case errors.Is(err, shared.ErrUnsupportedMediaType):
		return KindUnsupportedMediaType
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		return KindMethodNotAllowed
	case errors.Is(err, middleware.ErrRateLimited):
		return KindRateLimited
	default:
		return KindInternal
	}
}

// StatusCode returns the HTTP status code for the kind.
func (k ErrorKind) StatusCode() int {
	switch k {
	case KindValidation, KindInvalidArgument, KindEmptyBody, KindMalformedBody:
		return http.StatusBadRequest
	case KindBodyTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindUnsupportedMediaType:
		return http.StatusUnsupportedMediaType
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing envelope message for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case KindValidation:
		return "validation error"
	case KindInvalidArgument:
		return "invalid arguments"
	case KindEmptyBody:
		return "request body cannot be empty"
	case KindMalformedBody:
		return "invalid request body"
	case KindBodyTooLarge:
		return "request body too large"
	case KindUnsupportedMediaType:
		return "unsupported media type"
	case KindNotFound:
		return "resource not found"
	case KindMethodNotAllowed:
		return "method not allowed"
	case KindRateLimited:
		return "too many requests"
	case KindInternal:
		return "internal server error"
	default:
		return "internal server error"
	}
}

// MapErrorToStatusCode maps an error to the HTTP status code returned to the
// client.
func MapErrorToStatusCode(err error) int {
	return ClassifyError(err).StatusCode()
}

// errorDetails returns the client-safe details for err, or "" when the kind
// carries none. Internal errors never expose details.
func errorDetails(kind ErrorKind, err error) string {
	switch kind {
	case KindValidation:
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return validationErr.Message
		}
		return err.Error()
	case KindInvalidArgument:
		var argErr *domain.ArgumentError
		if errors.As(err, &argErr) {
			return argErr.Message
		}
		return domain.ErrInvalidArgument.Error()
	case KindMalformedBody, KindBodyTooLarge:
		var bodyErr *shared.BodyError
		if errors.As(err, &bodyErr) {
			return bodyErr.Reason
		}
		return ""
	case KindUnsupportedMediaType:
		return "content type must be application/json"
	default:
		return ""
	}
}

// HandleAPIError writes the error envelope for err and logs it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	kind := ClassifyError(err)
	shared.RespondWithErrorAndLog(w, r, kind.StatusCode(), kind.Message(), errorDetails(kind, err), err)
}

// NotFoundHandler responds to unknown routes with the error envelope.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	HandleAPIError(w, r, ErrNotFound)
}

// MethodNotAllowedHandler responds to known routes called with the wrong
// method with the error envelope.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	HandleAPIError(w, r, ErrMethodNotAllowed)
}
