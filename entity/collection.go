package entity

import (
	"iter"
	"reflect"

	"github.com/kbukum/apistruct/errors"
)

// Collection is an ordered, re-iterable sequence of entities over a raw array.
// Items are converted on every access.
type Collection struct {
	items []any
	as    *Schema
}

// NewCollection creates a collection of as entities over raw. A nil or
// non-array raw gives an empty collection.
func NewCollection(raw any, as *Schema) *Collection {
	return &Collection{items: items(raw), as: as}
}

func items(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	case []map[string]any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// At converts the item at index i.
func (c *Collection) At(i int) (*Entity, error) {
	if i < 0 || i >= len(c.items) {
		return nil, errors.Entity("index %d out of range [0:%d]", i, len(c.items))
	}
	return Convert(c.items[i], c.as)
}

// All yields every item converted to an entity, with the conversion error
// for items that are not mappings. Iteration can be repeated.
func (c *Collection) All() iter.Seq2[*Entity, error] {
	return func(yield func(*Entity, error) bool) {
		for _, item := range c.items {
			if !yield(Convert(item, c.as)) {
				return
			}
		}
	}
}

// Slice converts every item, stopping at the first conversion error.
func (c *Collection) Slice() ([]*Entity, error) {
	out := make([]*Entity, 0, len(c.items))
	for e, err := range c.All() {
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Raw returns a copy of the underlying items.
func (c *Collection) Raw() []any {
	out := make([]any, len(c.items))
	copy(out, c.items)
	return out
}
