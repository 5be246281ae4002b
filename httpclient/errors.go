package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies HTTP client errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, reset).
	ErrCodeConnection
	// ErrCodeRequest indicates the request could not be built.
	ErrCodeRequest
	// ErrCodeClient indicates a 4xx response.
	ErrCodeClient
	// ErrCodeRateLimit indicates a 429 response.
	ErrCodeRateLimit
	// ErrCodeServer indicates a 5xx response.
	ErrCodeServer
	// ErrCodeRedirect indicates an unfollowed 3xx response.
	ErrCodeRedirect
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeRequest:
		return "request"
	case ErrCodeClient:
		return "client"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeServer:
		return "server"
	case ErrCodeRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for connection-level errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Retryable indicates whether the operation can be retried.
	Retryable bool
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Retryable: true, Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Retryable: true, Err: err}
}

// NewRequestError creates an error for a request that could not be built.
func NewRequestError(err error) *Error {
	return &Error{Code: ErrCodeRequest, Message: err.Error(), Err: err}
}

// ClassifyStatusCode converts an HTTP status code into a typed error.
// Returns nil for status codes below 300.
func ClassifyStatusCode(statusCode int) *Error {
	e := &Error{StatusCode: statusCode, Message: fmt.Sprintf("HTTP %d", statusCode)}
	switch {
	case statusCode < 300:
		return nil
	case statusCode < 400:
		e.Code = ErrCodeRedirect
	case statusCode == 429:
		e.Code, e.Retryable = ErrCodeRateLimit, true
	case statusCode < 500:
		e.Code = ErrCodeClient
	default:
		e.Code = ErrCodeServer
		e.Retryable = statusCode != 501
	}
	return e
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsUnreachable reports whether the request never produced a response
// because of a timeout or connection failure.
func IsUnreachable(err error) bool {
	return IsTimeout(err) || IsConnection(err)
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
