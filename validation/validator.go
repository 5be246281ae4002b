package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kbukum/apistruct/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{errors: make([]FieldError, 0)}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// Merge adds the field errors of err under the given prefix.
// Errors that did not come from this package are recorded against the prefix itself.
func (v *Validator) Merge(prefix string, err error) {
	if err == nil {
		return
	}
	appErr, ok := errors.AsAppError(err)
	if ok {
		if fields, ok := appErr.Details["fields"].([]FieldError); ok {
			for _, f := range fields {
				v.AddError(prefix+"."+f.Field, f.Message)
			}
			return
		}
	}
	v.AddError(prefix, err.Error())
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors sorted by field.
func (v *Validator) Errors() []FieldError {
	sort.SliceStable(v.errors, func(i, j int) bool { return v.errors[i].Field < v.errors[j].Field })
	return v.errors
}

// Error returns an AppError if there are validation errors, nil otherwise.
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	fields := v.Errors()
	messages := make([]string, len(fields))
	for i, e := range fields {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return errors.Validation(strings.Join(messages, "; ")).WithDetail("fields", fields)
}
