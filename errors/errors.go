package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified apistruct error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Configuration errors ---

// MissingEndpoint creates an error for a client declared without an endpoint binding.
func MissingEndpoint(client string) *AppError {
	e := &AppError{Code: ErrCodeConfiguration, Message: "missing endpoint configuration"}
	if client != "" {
		e.WithDetail("client", client)
	}
	return e
}

// UnknownEndpoint creates an error for an endpoint name absent from the registry.
func UnknownEndpoint(name string) *AppError {
	return &AppError{
		Code:    ErrCodeConfiguration,
		Message: fmt.Sprintf("endpoint %q is not configured", name),
		Details: map[string]any{"endpoint": name},
	}
}

// Configuration creates a generic configuration error.
func Configuration(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeConfiguration, Message: fmt.Sprintf(format, args...)}
}

// Validation creates an error for a configuration value that failed validation.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// --- Entity errors ---

// NotMapping creates an error for entity input that is not a key/value mapping.
func NotMapping(value any) *AppError {
	return &AppError{
		Code:    ErrCodeEntity,
		Message: fmt.Sprintf("%T must be a mapping", value),
	}
}

// InvalidEntityType creates an error for a nested association whose type is not an entity schema.
func InvalidEntityType(attr string) *AppError {
	return &AppError{
		Code:    ErrCodeEntity,
		Message: fmt.Sprintf("type declared for %q must be an entity schema", attr),
		Details: map[string]any{"attribute": attr},
	}
}

// Entity creates a generic entity error.
func Entity(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeEntity, Message: fmt.Sprintf(format, args...)}
}

// Undeclared creates an error for access to an attribute the schema does not declare.
func Undeclared(schema, attr string) *AppError {
	return &AppError{
		Code:    ErrCodeUndeclared,
		Message: fmt.Sprintf("%s does not declare attribute %q", schema, attr),
		Details: map[string]any{"schema": schema, "attribute": attr},
	}
}

// --- Classification ---

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsConfiguration reports whether err is a configuration or validation error.
func IsConfiguration(err error) bool {
	e, ok := AsAppError(err)
	return ok && configurationCodes[e.Code]
}

// IsEntity reports whether err is an entity construction or declaration error.
func IsEntity(err error) bool {
	e, ok := AsAppError(err)
	return ok && entityCodes[e.Code]
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }
