package validation

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"

	"github.com/kbukum/apistruct/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// placeholderName matches the start of a segment following "/:". Text after
// the name, as in "/:id.json", stays literal.
var placeholderName = regexp.MustCompile(`^[a-z_]+`)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use mapstructure tag names for field names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "-" || name == "" {
				return strcase.ToSnake(fld.Name)
			}
			return name
		})
		_ = validate.RegisterValidation("root_template", validateRootTemplate)
	})
	return validate
}

// validateRootTemplate accepts absolute http(s) URLs and relative paths in
// which every "/:" starts a lowercase placeholder name.
func validateRootTemplate(fl validator.FieldLevel) bool {
	root := fl.Field().String()
	if strings.Contains(root, "://") {
		u, err := url.Parse(root)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return false
		}
	}
	for _, seg := range strings.Split(root, "/") {
		if strings.HasPrefix(seg, ":") && !placeholderName.MatchString(seg[1:]) {
			return false
		}
	}
	return true
}

// Validate validates a struct using struct tags.
func Validate(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Validation("validation failed").WithCause(err)
	}

	v := New()
	for _, e := range validationErrors {
		v.AddError(e.Field(), formatValidationError(e))
	}
	return v.Error()
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "root_template":
		return "must be a path or http(s) URL with /:name placeholders"
	case "gt":
		return "must be greater than " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}
