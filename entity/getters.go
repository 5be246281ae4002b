package entity

import "github.com/spf13/cast"

// Value returns a plain attribute asserted to T. ok is false when the
// attribute is undeclared, absent or of another type.
func Value[T any](e *Entity, name string) (T, bool) {
	var zero T
	v, err := e.Get(name)
	if err != nil || v == nil {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// String returns a plain attribute converted to a string, or "".
func String(e *Entity, name string) string {
	v, err := e.Get(name)
	if err != nil {
		return ""
	}
	return cast.ToString(v)
}

// Int returns a plain attribute converted to an int, or 0.
// JSON numbers decode as float64 and convert as expected.
func Int(e *Entity, name string) int {
	v, err := e.Get(name)
	if err != nil {
		return 0
	}
	return cast.ToInt(v)
}

// Float returns a plain attribute converted to a float64, or 0.
func Float(e *Entity, name string) float64 {
	v, err := e.Get(name)
	if err != nil {
		return 0
	}
	return cast.ToFloat64(v)
}

// Bool returns a plain attribute converted to a bool, or false.
func Bool(e *Entity, name string) bool {
	v, err := e.Get(name)
	if err != nil {
		return false
	}
	return cast.ToBool(v)
}
