package result

// Result is exactly one of Success(value) or Failure(*ClientError).
type Result[T any] struct {
	value T
	err   *ClientError
}

// Success wraps a value. The value may be the zero value (an empty body).
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps a client error. A nil error is replaced by an unknown-status error
// so that a Failure can never be mistaken for a Success.
func Failure[T any](err *ClientError) Result[T] {
	if err == nil {
		err = Tagged("unknown", "")
	}
	return Result[T]{err: err}
}

// IsSuccess reports whether the result is a Success.
func (r Result[T]) IsSuccess() bool { return r.err == nil }

// IsFailure reports whether the result is a Failure.
func (r Result[T]) IsFailure() bool { return r.err != nil }

// Value returns the success value, or the zero value for a Failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure error, or nil for a Success.
func (r Result[T]) Err() *ClientError { return r.err }

// Unwrap returns the value and the failure as a Go error.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// ValueOr returns the success value, or fallback for a Failure.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Map transforms a Success value. Failures pass through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Failure[U](r.err)
	}
	return Success(fn(r.value))
}

// Bind chains a fallible step onto a Success. Failures pass through unchanged.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Failure[U](r.err)
	}
	return fn(r.value)
}
