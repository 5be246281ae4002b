// Package client binds a symbolic endpoint to an HTTP transport and turns
// verb calls into result.Result values.
//
//	users, err := client.New(client.Bind("users"))
//	if err != nil {
//	    return err // configuration error: the endpoint is not registered
//	}
//
//	res := users.Get(ctx, 42)                                   // GET {root}/42
//	res = users.Get(ctx, client.WithPath("active"))              // GET {root}/active
//	res = users.Get(ctx, client.WithPrefix("v2"))                // GET {root}/v2
//	res = users.Post(ctx, client.WithBody(map[string]any{"name": "Ann"}))
//
// Every argument that is not a RequestOption is a path argument, appended to
// the URL in order. Root templates may contain /:name placeholders that are
// filled from WithValue and removed when no value is given:
//
//	// root: https://api.example.com/users/:user_id/posts
//	posts.Get(ctx, client.WithValue("user_id", 7)) // .../users/7/posts
//	posts.Get(ctx)                                 // .../users/posts
//
// Responses below 300 become a Success holding the decoded JSON body (nil
// for an empty body). Other statuses become a Failure holding a
// *result.ClientError with the status code and raw body. Connectivity and
// timeout failures become a Failure with status "not_connected".
package client
