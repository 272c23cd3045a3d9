package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application failure. The set is closed: callers switch
// on it to tell client mistakes from internal faults without reading
// message text.
type Kind string

const (
	KindInvalidInput   Kind = "INVALID_INPUT"
	KindMalformedTable Kind = "MALFORMED_TABLE"
	KindNotFound       Kind = "NOT_FOUND"
	KindIO             Kind = "IO"
)

// HTTPStatus returns the response status for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindMalformedTable:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrMissingField is wrapped by every error reporting an absent required
// column, so callers can test for it with errors.Is.
var ErrMissingField = errors.New("missing required field")

// AppError represents an application-specific error
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(kind Kind, message string, cause error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidInput reports a request the caller must correct.
func NewInvalidInput(message string) *AppError {
	return NewAppError(KindInvalidInput, message, nil)
}

// NewMalformedTable reports input table content that cannot be used.
func NewMalformedTable(message string, cause error) *AppError {
	return NewAppError(KindMalformedTable, message, cause)
}

// NewMissingField reports a required column absent from the input table.
func NewMissingField(field string) *AppError {
	return NewAppError(KindMalformedTable, fmt.Sprintf("column %q", field), ErrMissingField).
		WithContext("field", field)
}

// NewNotFound reports an unknown resource.
func NewNotFound(resource string) *AppError {
	return NewAppError(KindNotFound, fmt.Sprintf("%s not found", resource), nil)
}

// NewIOError reports a filesystem failure during the named operation.
func NewIOError(operation string, cause error) *AppError {
	return NewAppError(KindIO, fmt.Sprintf("failed to %s", operation), cause)
}

// KindOf returns the kind of the first AppError in err's chain, or KindIO
// for errors that carry no classification.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindIO
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
