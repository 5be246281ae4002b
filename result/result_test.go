package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	r := Success[any](map[string]any{"id": 1.0})
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Nil(t, r.Err())
	assert.Equal(t, map[string]any{"id": 1.0}, r.Value())

	v, err := r.Unwrap()
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestSuccessWithNilValue(t *testing.T) {
	r := Success[any](nil)
	assert.True(t, r.IsSuccess())
	assert.Nil(t, r.Value())
}

func TestFailure(t *testing.T) {
	r := Failure[any](HTTPError(404, "not found"))
	assert.True(t, r.IsFailure())
	assert.False(t, r.IsSuccess())
	assert.Equal(t, &ClientError{StatusCode: 404, Status: "404", Body: "not found"}, r.Err())
	assert.Equal(t, "fallback", r.ValueOr("fallback"))

	_, err := r.Unwrap()
	var ce *ClientError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 404, ce.StatusCode)
}

func TestFailureNeverNil(t *testing.T) {
	r := Failure[int](nil)
	assert.True(t, r.IsFailure())
	assert.Equal(t, "unknown", r.Err().Status)
}

func TestNotConnected(t *testing.T) {
	e := NotConnected("timeout")
	assert.True(t, e.NotConnected())
	assert.Equal(t, 0, e.StatusCode)
	assert.Equal(t, "apistruct: not_connected: timeout", e.Error())
	assert.False(t, HTTPError(500, "").NotConnected())
}

func TestMapAndBind(t *testing.T) {
	double := func(v int) int { return v * 2 }
	assert.Equal(t, 4, Map(Success(2), double).Value())

	failed := Map(Failure[int](HTTPError(500, "boom")), double)
	assert.True(t, failed.IsFailure())
	assert.Equal(t, 500, failed.Err().StatusCode)

	positive := func(v int) Result[int] {
		if v < 0 {
			return Failure[int](Tagged("negative", ""))
		}
		return Success(v)
	}
	assert.True(t, Bind(Success(1), positive).IsSuccess())
	assert.Equal(t, "negative", Bind(Success(-1), positive).Err().Status)
}
