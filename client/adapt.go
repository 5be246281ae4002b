package client

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/kbukum/apistruct/httpclient"
	"github.com/kbukum/apistruct/result"
)

// Wrap converts a transport response into a result. Statuses below 300
// succeed with the decoded JSON body, or nil when the body is empty.
func Wrap(resp *httpclient.Response) result.Result[any] {
	if resp.StatusCode >= 300 {
		return result.Failure[any](result.HTTPError(resp.StatusCode, string(resp.Body)))
	}
	if len(resp.Body) == 0 {
		return result.Success[any](nil)
	}
	var body any
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return result.Failure[any](result.Tagged(result.StatusInvalidResponse, string(resp.Body)))
	}
	return result.Success(body)
}

// timeoutMessage is the Failure body for a request that timed out.
const timeoutMessage = "timeout"

// WrapError converts a transport error that carried no response into a
// Failure. Connectivity failures and timeouts are tagged not_connected, a
// timeout with the body "timeout"; any other error means the request could
// not be sent.
func WrapError(err error) result.Result[any] {
	if isNotConnected(err) {
		return result.Failure[any](result.NotConnected(errorMessage(err)))
	}
	return result.Failure[any](result.Tagged(result.StatusInvalidRequest, errorMessage(err)))
}

func isNotConnected(err error) bool {
	return httpclient.IsUnreachable(err) || errors.Is(err, context.DeadlineExceeded)
}

// errorMessage prefers the transport's own message over the wrapped chain.
func errorMessage(err error) string {
	if httpclient.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return timeoutMessage
	}
	var e *httpclient.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
