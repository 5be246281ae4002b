// Package errors provides the error types shared by apistruct packages.
//
// Expected request outcomes (HTTP error statuses, unreachable hosts) are not
// errors in apistruct; they are Failure results (see package result). The
// AppError type defined here covers mistakes that callers must fix:
// endpoint configuration problems and malformed entity declarations or
// payloads.
//
//	c, err := client.New(client.Bind("users"))
//	if errors.IsConfiguration(err) {
//	    // the "users" endpoint was never configured
//	}
package errors
