package entity

import (
	"github.com/kbukum/apistruct/errors"
)

// Transform converts a raw attribute value on read.
type Transform func(any) any

type attrKind int

const (
	kindValue attrKind = iota
	kindEntity
	kindEntities
)

func (k attrKind) String() string {
	switch k {
	case kindEntity:
		return "entity"
	case kindEntities:
		return "entities"
	default:
		return "value"
	}
}

type attribute struct {
	name      string
	kind      attrKind
	transform Transform
	as        *Schema
}

// Schema is the attribute table shared by all entities of one type.
// Declare attributes before constructing entities; declarations are not
// synchronized with concurrent reads.
type Schema struct {
	name  string
	attrs map[string]*attribute
	order []string
	valid bool
}

// NewSchema creates an empty schema. name is used in error messages.
func NewSchema(name string) *Schema {
	return &Schema{
		name:  name,
		attrs: make(map[string]*attribute),
		valid: true,
	}
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// Attr declares plain attributes.
func (s *Schema) Attr(names ...string) *Schema {
	for _, name := range names {
		s.declare(&attribute{name: name, kind: kindValue})
	}
	return s
}

// AttrFunc declares a plain attribute whose value passes through fn on read.
func (s *Schema) AttrFunc(name string, fn Transform) *Schema {
	return s.declare(&attribute{name: name, kind: kindValue, transform: fn})
}

// HasEntity declares a nested entity built with as. A nil as means s itself.
func (s *Schema) HasEntity(name string, as *Schema) *Schema {
	if as == nil {
		as = s
	}
	return s.declare(&attribute{name: name, kind: kindEntity, as: as})
}

// HasEntities declares a nested collection whose items are built with as.
// A nil as means s itself.
func (s *Schema) HasEntities(name string, as *Schema) *Schema {
	if as == nil {
		as = s
	}
	return s.declare(&attribute{name: name, kind: kindEntities, as: as})
}

// Attributes returns the declared attribute names in declaration order.
func (s *Schema) Attributes() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Declares reports whether name (after normalization) is declared.
func (s *Schema) Declares(name string) bool {
	_, ok := s.attrs[NormalizeName(name)]
	return ok
}

// declare adds or redefines an attribute. A redeclared name keeps its
// original position.
func (s *Schema) declare(a *attribute) *Schema {
	if s.attrs == nil {
		s.attrs = make(map[string]*attribute)
	}
	a.name = NormalizeName(a.name)
	if _, exists := s.attrs[a.name]; !exists {
		s.order = append(s.order, a.name)
	}
	s.attrs[a.name] = a
	return s
}

// lookup returns the declaration of name, checking that it has the wanted kind.
func (s *Schema) lookup(name string, want attrKind) (*attribute, error) {
	a, ok := s.attrs[NormalizeName(name)]
	if !ok {
		return nil, errors.Undeclared(s.name, name)
	}
	if a.kind != want {
		return nil, errors.Entity("%s.%s is declared as %s, not %s", s.name, a.name, a.kind, want)
	}
	return a, nil
}

// New builds a success entity from raw. See NewWithStatus.
func (s *Schema) New(raw any) (*Entity, error) {
	return s.NewWithStatus(raw, true)
}

// Failure builds a failure entity from raw.
func (s *Schema) Failure(raw any) (*Entity, error) {
	return s.NewWithStatus(raw, false)
}

// NewWithStatus builds an entity from raw, which must be a map[string]any,
// a map[string]string or an *Entity. Keys are normalized and undeclared keys
// are dropped.
func (s *Schema) NewWithStatus(raw any, status bool) (*Entity, error) {
	if !s.valid {
		return nil, errors.Entity("schema %q was not created by NewSchema", s.name)
	}
	src, err := mapping(raw)
	if err != nil {
		return nil, err
	}
	filtered := make(map[string]any, len(s.attrs))
	for k, v := range src {
		name := NormalizeName(k)
		if _, ok := s.attrs[name]; ok {
			filtered[name] = v
		}
	}
	return &Entity{schema: s, raw: filtered, status: status}, nil
}

// mapping returns the key/value view of raw.
func mapping(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case map[string]any:
		return v, nil
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, nil
	case *Entity:
		if v == nil {
			return nil, errors.NotMapping(raw)
		}
		return v.raw, nil
	default:
		return nil, errors.NotMapping(raw)
	}
}
