package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is the sentinel matched by every ValidationError.
	// Callers check for it with errors.Is to map client-caused failures.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidArgument marks an argument that is structurally unusable, as
	// opposed to one failing a business rule. The bundled services never
	// return it; it is reserved for MathService implementations that reject
	// their input before evaluating it. Return an *ArgumentError to give the
	// client a specific message.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError signals that caller-supplied input failed a business rule.
// Its message is safe to return to the client.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is(err, ErrValidation) to match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ArgumentError reports an unusable argument. Its message is safe to return
// to the client.
type ArgumentError struct {
	Message string
}

// NewArgumentError creates an ArgumentError with the given message.
func NewArgumentError(message string) *ArgumentError {
	return &ArgumentError{Message: message}
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is(err, ErrInvalidArgument) to match.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
