// Package lookup implements the client for the third-party number lookup API.
//
// A search is exactly one HTTP GET of the form
//
//	<base-url>?key=<key>&number=<10-digit number>
//
// bounded by a total timeout (30 seconds by default). The decoded JSON body is
// classified into a model.Result:
//   - an object with a truthy "error" field becomes an UpstreamError
//   - null, {}, [] and falsy scalars become an empty result
//   - a single object becomes one record
//   - an array becomes its object elements, in order
//
// Lookup never returns a Go error. Network failures, timeouts, non-2xx
// statuses and undecodable bodies are all reported as an error Result so the
// caller always has something to show the user.
//
// Design decision: The API key travels in the query string, so errors coming
// out of net/http (which embed the full URL) are unwrapped before they are
// returned or logged.
package lookup
