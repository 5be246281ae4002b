package entity

import (
	"encoding/json"
	"maps"
	"reflect"

	"github.com/kbukum/apistruct/errors"
	"github.com/kbukum/apistruct/result"
)

// Entity is a whitelisted view over one decoded JSON object.
type Entity struct {
	schema *Schema
	raw    map[string]any
	status bool
	err    *result.ClientError
}

// Schema returns the schema the entity was built with.
func (e *Entity) Schema() *Schema {
	return e.schema
}

// Get returns a plain attribute, passed through its transform if declared
// with AttrFunc. An absent attribute reads as nil (before the transform).
func (e *Entity) Get(name string) (any, error) {
	a, err := e.schema.lookup(name, kindValue)
	if err != nil {
		return nil, err
	}
	v := e.raw[a.name]
	if a.transform != nil {
		return a.transform(v), nil
	}
	return v, nil
}

// Set writes a declared attribute. A HasEntity attribute takes a mapping or
// an *Entity, a HasEntities attribute takes an array or a *Collection; either
// accepts nil. Nested values are stored raw, so the next Entity or Entities
// call sees them.
func (e *Entity) Set(name string, value any) error {
	a, ok := e.schema.attrs[NormalizeName(name)]
	if !ok {
		return errors.Undeclared(e.schema.name, name)
	}
	v, err := rawValue(e.schema, a, value)
	if err != nil {
		return err
	}
	e.raw[a.name] = v
	return nil
}

// rawValue converts value into the raw form stored for a.
func rawValue(s *Schema, a *attribute, value any) (any, error) {
	if value == nil || a.kind == kindValue {
		return value, nil
	}
	switch a.kind {
	case kindEntity:
		if nested, ok := value.(*Entity); ok {
			if nested == nil {
				return nil, nil
			}
			return nested.Raw(), nil
		}
		m, err := mapping(value)
		if err != nil {
			return nil, errors.Entity("%s.%s expects a mapping or *Entity, got %T", s.name, a.name, value)
		}
		return m, nil
	default:
		switch v := value.(type) {
		case *Collection:
			if v == nil {
				return nil, nil
			}
			return v.Raw(), nil
		case []*Entity:
			out := make([]any, len(v))
			for i, item := range v {
				if item != nil {
					out[i] = item.Raw()
				}
			}
			return out, nil
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, errors.Entity("%s.%s expects an array or *Collection, got %T", s.name, a.name, value)
		}
		return items(value), nil
	}
}

// Has reports whether the raw data holds a value for name.
func (e *Entity) Has(name string) bool {
	_, ok := e.raw[NormalizeName(name)]
	return ok
}

// Entity returns the nested entity declared with HasEntity, or nil when the
// raw value is absent, nil or false. The entity is rebuilt on every call.
func (e *Entity) Entity(name string) (*Entity, error) {
	a, err := e.schema.lookup(name, kindEntity)
	if err != nil {
		return nil, err
	}
	v, ok := e.raw[a.name]
	if !ok || v == nil || v == false {
		return nil, nil
	}
	if !a.as.valid {
		return nil, invalidType(a)
	}
	return a.as.New(v)
}

// Entities returns a fresh collection for an attribute declared with
// HasEntities. An absent raw array yields an empty collection.
func (e *Entity) Entities(name string) (*Collection, error) {
	a, err := e.schema.lookup(name, kindEntities)
	if err != nil {
		return nil, err
	}
	if !a.as.valid {
		return nil, invalidType(a)
	}
	return NewCollection(e.raw[a.name], a.as), nil
}

// Raw returns a copy of the whitelisted data.
func (e *Entity) Raw() map[string]any {
	return maps.Clone(e.raw)
}

// Status returns true for a success entity.
func (e *Entity) Status() bool {
	return e.status
}

// IsSuccess reports whether the entity represents a successful response.
func (e *Entity) IsSuccess() bool {
	return e.status
}

// IsFailure reports whether the entity represents a failed response.
func (e *Entity) IsFailure() bool {
	return !e.status
}

// Err returns the client error of a failure entity built from a result, or nil.
func (e *Entity) Err() *result.ClientError {
	return e.err
}

// MarshalJSON encodes the whitelisted data.
func (e *Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.raw)
}
