// Package testutil provides test doubles for code built on apistruct.
//
// StubServer is an HTTP server (gin on httptest) that serves canned
// responses and records every request it receives. StubEndpoint points an
// endpoint registry at it:
//
//	func TestUsers(t *testing.T) {
//	    srv := testutil.NewStubServer("users-api")
//	    testutil.T(t).Setup(srv)
//	    srv.Handle(http.MethodGet, "/users/42", http.StatusOK, `{"id":42}`)
//
//	    registry := testutil.StubEndpoint(t, srv.URL()+"/users", nil)
//	    c, _ := client.New(client.Bind(endpoint.StubName), client.WithRegistry(registry))
//	    res := c.Get(ctx, 42)
//	    // srv.Requests()[0].Path == "/users/42"
//	}
//
// Servers implement TestComponent, so several of them can be started,
// reset and stopped together through a Manager.
package testutil
