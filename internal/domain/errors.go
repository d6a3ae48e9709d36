package domain

import "fmt"

// ErrorCode classifies a domain error for transport-level mapping.
type ErrorCode string

const (
	ErrCodeNotFound   ErrorCode = "not_found"
	ErrCodeValidation ErrorCode = "validation"
	ErrCodeInternal   ErrorCode = "internal"
)

// Error is the typed error raised by services and repositories. The HTTP
// layer never sees anything else: unknown errors are wrapped as internal.
type Error struct {
	Code    ErrorCode
	Message string
	// Fields carries a field-name to message mapping. Set only for
	// validation errors, nil otherwise.
	Fields map[string]string
	cause  error
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// IsNotFound reports whether err is a domain not-found error.
func IsNotFound(err error) bool {
	de, ok := err.(*Error)
	return ok && de.Code == ErrCodeNotFound
}

// NewNotFoundError creates an error for an absent entity, e.g. "Owner 12 not found".
func NewNotFoundError(resource string, id int) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s %d not found", resource, id),
	}
}

// NewValidationError creates an error carrying per-field validation messages.
func NewValidationError(fields map[string]string) *Error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(cause error) *Error {
	return &Error{
		Code:    ErrCodeInternal,
		Message: "internal error",
		cause:   cause,
	}
}
