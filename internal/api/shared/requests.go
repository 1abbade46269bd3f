package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxRequestBodyBytes caps the size of JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// Errors returned by DecodeJSON. BodyError values unwrap to one of them.
var (
	ErrEmptyBody            = errors.New("request body cannot be empty")
	ErrMalformedBody        = errors.New("malformed request body")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// BodyError describes why a request body was rejected. Reason is safe to
// return to the client.
type BodyError struct {
	Err    error
	Reason string
}

// Error implements the error interface.
func (e *BodyError) Error() string {
	if e.Reason == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Reason
}

// Unwrap returns the sentinel describing the failure class.
func (e *BodyError) Unwrap() error {
	return e.Err
}

// LimitBody wraps the request body so reads fail past MaxRequestBodyBytes.
func LimitBody(w http.ResponseWriter, r *http.Request) {
	if r.Body != nil && r.Body != http.NoBody {
		r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	}
}

// DecodeJSON decodes the request body into v.
//
// Checks run in this order: an empty body (or the JSON literal null) yields
// ErrEmptyBody, a non-JSON content type yields ErrUnsupportedMediaType, and
// unparseable content yields ErrMalformedBody. Fields absent from the body
// keep their zero values.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return &BodyError{
				Err:    ErrBodyTooLarge,
				Reason: fmt.Sprintf("body must not exceed %d bytes", maxBytesErr.Limit),
			}
		}
		return &BodyError{Err: ErrMalformedBody, Reason: "could not read request body"}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrEmptyBody
	}

	if !IsJSONContentType(r.Header.Get("Content-Type")) {
		return ErrUnsupportedMediaType
	}

	if bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyBody
	}

	if err := json.Unmarshal(trimmed, v); err != nil {
		return &BodyError{Err: ErrMalformedBody, Reason: describeJSONError(err)}
	}

	return nil
}

// IsJSONContentType reports whether contentType is application/json,
// ignoring parameters such as charset.
func IsJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

func describeJSONError(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return fmt.Sprintf("field %q must be a valid %s", typeErr.Field, typeErr.Type)
		}
		return "body must be a JSON object"
	default:
		return "request body is not valid JSON"
	}
}
