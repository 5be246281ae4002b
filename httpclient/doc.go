// Package httpclient is the HTTP transport used by apistruct endpoint clients.
//
// An Adapter sends one Request to a fully resolved URL and returns the raw
// Response. Status codes of 300 and above return the Response together with a
// classified *Error, so callers can still read the body. Failures that never
// produced a response return a connection or timeout *Error and a nil Response.
//
//	a, err := httpclient.New(httpclient.Config{
//	    Headers: map[string]string{"Accept": "application/json"},
//	    Timeout: 10 * time.Second,
//	})
//	resp, err := a.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    URL:    "https://api.example.com/users/42",
//	    Query:  url.Values{"include": {"posts"}},
//	})
//
// Retry and circuit breaking are opt-in through Config.
package httpclient
