// Package result provides the two-variant value returned by endpoint client
// verbs: a Success carrying the parsed response body, or a Failure carrying a
// *ClientError. Expected request outcomes such as HTTP error statuses and
// unreachable hosts are modeled here instead of as Go errors.
//
//	res := users.Get(ctx, 42)
//	if res.IsFailure() {
//	    if res.Err().NotConnected() {
//	        // retry later
//	    }
//	    return res.Err()
//	}
//	body := res.Value()
package result
