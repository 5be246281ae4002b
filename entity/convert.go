package entity

import (
	"github.com/kbukum/apistruct/errors"
)

// Convert builds an entity of schema as from item.
func Convert(item any, as *Schema) (*Entity, error) {
	if as == nil || !as.valid {
		return nil, errors.Entity("entity type must be a schema created by NewSchema")
	}
	return as.New(item)
}

func invalidType(a *attribute) error {
	return errors.InvalidEntityType(a.name)
}
