package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/apistruct/errors"
)

type endpointFixture struct {
	Root    string `mapstructure:"root" validate:"required,root_template"`
	Timeout int    `mapstructure:"timeout" validate:"gt=0"`
}

func TestValidate_Valid(t *testing.T) {
	roots := []string{
		"/users",
		"https://api.example.com/users/:id/posts",
		"users/:user_id",
		"http://api.test/items/:id.json",
		"/files/:name-v2",
		"http://api.test:8080/users/:id",
	}
	for _, root := range roots {
		assert.NoError(t, Validate(endpointFixture{Root: root, Timeout: 1}), root)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		fixture endpointFixture
		want    string
	}{
		{"missing root", endpointFixture{Timeout: 1}, "root: is required"},
		{"bad scheme", endpointFixture{Root: "ftp://host/x", Timeout: 1}, "root: must be a path"},
		{"bad placeholder", endpointFixture{Root: "/users/:ID", Timeout: 1}, "root: must be a path"},
		{"empty placeholder", endpointFixture{Root: "/users/:", Timeout: 1}, "root: must be a path"},
		{"digit placeholder", endpointFixture{Root: "/users/:1.json", Timeout: 1}, "root: must be a path"},
		{"timeout", endpointFixture{Root: "/x"}, "timeout: must be greater than 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.fixture)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.True(t, errors.IsConfiguration(err), "expected a configuration-class error")
		})
	}
}

func TestValidator_Merge(t *testing.T) {
	v := New()
	v.Merge("endpoints.users", Validate(endpointFixture{Timeout: 1}))
	v.Merge("endpoints.posts", fmt.Errorf("boom"))
	v.Merge("endpoints.ok", nil)

	errs := v.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "endpoints.posts", errs[0].Field)
	assert.Equal(t, "endpoints.users.root", errs[1].Field)
	assert.Error(t, v.Error())
}

func TestValidator_NoErrors(t *testing.T) {
	assert.NoError(t, New().Error())
}
