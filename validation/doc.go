// Package validation checks endpoint and client configuration values.
//
// Struct tag validation uses go-playground/validator with apistruct's custom
// tags registered:
//
//	type Endpoint struct {
//	    Root string `validate:"required,root_template"`
//	}
//	err := validation.Validate(ep)
//
// Errors from several values can be collected and reported together:
//
//	v := validation.New()
//	v.Merge("endpoints.users", validation.Validate(users))
//	err := v.Error()
package validation
