package entity

import (
	"encoding/json"

	"github.com/kbukum/apistruct/result"
)

// FromResult converts a client result into an entity of schema s.
//
// A Success holding a JSON object becomes a success entity; an empty body
// becomes an empty success entity. A Failure becomes a failure entity that
// carries the *result.ClientError, with the error body's declared keys
// when the body is a JSON object. The returned error is only set when the
// success value cannot be converted.
func (s *Schema) FromResult(r result.Result[any]) (*Entity, error) {
	if r.IsSuccess() {
		v := r.Value()
		if v == nil {
			v = map[string]any{}
		}
		return s.New(v)
	}

	clientErr := r.Err()
	e, err := s.Failure(errorBody(clientErr))
	if err != nil {
		return nil, err
	}
	e.err = clientErr
	return e, nil
}

// CollectionFromResult converts a client result holding a JSON array into a
// collection of schema s. A Failure gives an empty collection and the
// *result.ClientError.
func (s *Schema) CollectionFromResult(r result.Result[any]) (*Collection, error) {
	if r.IsFailure() {
		return NewCollection(nil, s), r.Err()
	}
	return NewCollection(r.Value(), s), nil
}

// errorBody decodes a failure body into a mapping, or returns an empty one.
func errorBody(e *result.ClientError) map[string]any {
	body := map[string]any{}
	if e == nil || e.Body == "" {
		return body
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(e.Body), &decoded); err == nil && decoded != nil {
		return decoded
	}
	return body
}
