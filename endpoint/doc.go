// Package endpoint holds the endpoint registry: per symbolic endpoint name,
// a root path template, default query parameters and default headers.
//
// The registry is configured once at process start and read thereafter:
//
//	endpoint.Configure(map[string]endpoint.Config{
//	    "users": {Root: "https://api.example.com/users"},
//	    "posts": {Root: "https://api.example.com/users/:user_id/posts", Params: map[string]any{"per_page": 50}},
//	})
//
// Registries can also be built explicitly and handed to clients, which keeps
// tests isolated from the package-level default. Configure replaces the whole
// registry and is not synchronized with readers: reconfiguring while clients
// are being constructed is undefined behavior.
package endpoint
