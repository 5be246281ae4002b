package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/apistruct/errors"
)

func TestRegistry_ConfigureAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(map[string]Config{
		"users": {Root: "/users", Params: map[string]any{"per_page": 20}},
		"posts": {Root: "https://api.example.com/users/:user_id/posts", Headers: map[string]string{"Accept": "application/vnd.api+json"}},
	}))

	users, err := r.Lookup("users")
	require.NoError(t, err)
	assert.Equal(t, "users", users.Name)
	assert.Equal(t, "/users", users.Root)
	assert.Equal(t, 20, users.Params["per_page"])

	posts, err := r.Lookup("posts")
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.api+json", posts.Headers["Accept"])

	assert.Equal(t, []string{"posts", "users"}, r.Names())
}

func TestRegistry_LookupMissing(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("users")
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Contains(t, err.Error(), `"users"`)
}

func TestRegistry_ConfigureReplacesWholesale(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(map[string]Config{"users": {Root: "/users"}}))
	require.NoError(t, r.Configure(map[string]Config{"posts": {Root: "/posts"}}))

	_, err := r.Lookup("users")
	assert.Error(t, err, "configure must not merge with the previous contents")
	assert.Equal(t, []string{"posts"}, r.Names())
}

func TestRegistry_ConfigureInvalidKeepsPrevious(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(map[string]Config{"users": {Root: "/users"}}))

	err := r.Configure(map[string]Config{
		"broken": {},
		"posts":  {Root: "/posts"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "endpoints.broken.root: is required")

	_, err = r.Lookup("users")
	assert.NoError(t, err)
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(map[string]Config{"users": {Root: "/users", Params: map[string]any{"a": 1}}}))

	cfg, err := r.Lookup("users")
	require.NoError(t, err)
	cfg.Params["a"] = 2

	again, err := r.Lookup("users")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Params["a"])
}

func TestRegistry_Stub(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(map[string]Config{"users": {Root: "/users"}}))
	require.NoError(t, r.Stub("http://localhost:3000/stub", map[string]any{"token": "x"}))

	assert.Equal(t, []string{StubName}, r.Names())
	cfg, err := r.Lookup(StubName)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/stub", cfg.Root)
	assert.Equal(t, "x", cfg.Params["token"])
}

func TestDefaultRegistry(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })
	SetDefault(NewRegistry())

	require.NoError(t, Configure(map[string]Config{"users": {Root: "/users"}}))
	cfg, err := Lookup("users")
	require.NoError(t, err)
	assert.Equal(t, "/users", cfg.Root)
}

func TestRegistry_ConfigureAcceptsPlaceholderWithSuffix(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Configure(map[string]Config{
		"items": {Root: "http://api.test/items/:id.json"},
		"files": {Root: "/files/:name-v2"},
	}))

	err := r.Configure(map[string]Config{"bad": {Root: "/items/:ID.json"}})
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}
