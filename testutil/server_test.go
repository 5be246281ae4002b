package testutil_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/apistruct/client"
	"github.com/kbukum/apistruct/endpoint"
	"github.com/kbukum/apistruct/testutil"
)

func TestStubServer_ServesAndRecords(t *testing.T) {
	srv := testutil.NewStubServer("users-api")
	testutil.T(t).Setup(srv)
	srv.Handle(http.MethodPost, "/users", http.StatusCreated, `{"id":7}`)

	resp, err := http.Post(srv.URL()+"/users?team=core", "application/json", strings.NewReader(`{"name":"ann"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"id":7}`, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/users", last.Path)
	assert.Equal(t, "core", last.Query.Get("team"))
	assert.JSONEq(t, `{"name":"ann"}`, string(last.Body))
}

func TestStubServer_UnmatchedIsNotFound(t *testing.T) {
	srv := testutil.NewStubServer("empty")
	testutil.T(t).Setup(srv)

	resp, err := http.Get(srv.URL() + "/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not found", string(body))
	assert.Len(t, srv.Requests(), 1)
}

func TestStubServer_Reset(t *testing.T) {
	srv := testutil.NewStubServer("api")
	testutil.T(t).Setup(srv)
	srv.Handle(http.MethodGet, "/ping", http.StatusOK, `{}`)

	resp, err := http.Get(srv.URL() + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	testutil.T(t).Reset(srv)
	assert.Empty(t, srv.Requests())

	resp, err = http.Get(srv.URL() + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStubServer_Lifecycle(t *testing.T) {
	ctx := context.Background()
	srv := testutil.NewStubServer("api")
	assert.Equal(t, "api", srv.Name())
	assert.Empty(t, srv.URL())

	cleanup, err := testutil.Setup(srv)
	require.NoError(t, err)
	assert.NotEmpty(t, srv.URL())
	assert.Error(t, srv.Start(ctx))

	require.NoError(t, cleanup())
	assert.Empty(t, srv.URL())
	assert.NoError(t, srv.Stop(ctx))
}

func TestStubEndpoint_WithClient(t *testing.T) {
	srv := testutil.NewStubServer("users-api")
	testutil.T(t).Setup(srv)
	srv.Handle(http.MethodGet, "/users/42", http.StatusOK, `{"id":42,"name":"ann"}`)

	registry := testutil.StubEndpoint(t, srv.URL()+"/users", map[string]any{"lang": "en"})
	assert.Same(t, registry, endpoint.Default())
	assert.Equal(t, []string{endpoint.StubName}, registry.Names())

	c, err := client.New(client.Bind(endpoint.StubName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close(context.Background()) })

	res := c.Get(context.Background(), 42)
	require.True(t, res.IsSuccess(), "%v", res.Err())
	assert.Equal(t, map[string]any{"id": float64(42), "name": "ann"}, res.Value())

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/users/42", reqs[0].Path)
	assert.Equal(t, "en", reqs[0].Query.Get("lang"))
}

func TestStubEndpoint_RestoresDefault(t *testing.T) {
	before := endpoint.Default()
	t.Run("stubbed", func(t *testing.T) {
		r := testutil.StubEndpoint(t, "http://stub.test", nil)
		assert.Same(t, r, endpoint.Default())
	})
	assert.Same(t, before, endpoint.Default())
}

func TestStubEndpoint_FailureStatus(t *testing.T) {
	srv := testutil.NewStubServer("users-api")
	testutil.T(t).Setup(srv)
	srv.Handle(http.MethodDelete, "/users/1", http.StatusConflict, `{"error":"busy"}`)

	registry := testutil.StubEndpoint(t, srv.URL()+"/users", nil)
	c, err := client.New(client.Bind(endpoint.StubName), client.WithRegistry(registry))
	require.NoError(t, err)

	res := c.Delete(context.Background(), 1)
	require.True(t, res.IsFailure())
	assert.Equal(t, http.StatusConflict, res.Err().StatusCode)
	assert.Equal(t, "409", res.Err().Status)
	assert.JSONEq(t, `{"error":"busy"}`, res.Err().Body)
}
