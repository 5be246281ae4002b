package result

import (
	"fmt"
	"strconv"
)

// Symbolic statuses used when no HTTP status is available.
const (
	// StatusNotConnected means the transport never reached the network layer.
	StatusNotConnected = "not_connected"
	// StatusInvalidRequest means the request could not be built.
	StatusInvalidRequest = "invalid_request"
	// StatusInvalidResponse means a success response carried an undecodable body.
	StatusInvalidResponse = "invalid_response"
)

// ClientError describes a failed request.
type ClientError struct {
	// StatusCode is the HTTP status, or 0 when none was received.
	StatusCode int `json:"status_code,omitempty"`
	// Status is the decimal HTTP status or a symbolic status such as "not_connected".
	Status string `json:"status"`
	// Body is the raw response body or the transport error message.
	Body string `json:"body"`
}

// HTTPError creates a ClientError for a response with the given status and body.
func HTTPError(statusCode int, body string) *ClientError {
	return &ClientError{StatusCode: statusCode, Status: strconv.Itoa(statusCode), Body: body}
}

// NotConnected creates a ClientError for a transport-level connectivity failure.
func NotConnected(message string) *ClientError {
	return &ClientError{Status: StatusNotConnected, Body: message}
}

// Tagged creates a ClientError with a symbolic status.
func Tagged(status, body string) *ClientError {
	return &ClientError{Status: status, Body: body}
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("apistruct: HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("apistruct: %s: %s", e.Status, e.Body)
}

// NotConnected reports whether the request never reached the network.
func (e *ClientError) NotConnected() bool {
	return e.Status == StatusNotConnected
}
