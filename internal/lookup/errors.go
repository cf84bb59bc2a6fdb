package lookup

import (
	"errors"
	"fmt"
)

// Lookup errors. Callers use errors.Is to pick the message shown to the user.
var (
	// ErrTransport is returned when the request could not be completed:
	// DNS or connection failures, TLS errors, or the timeout expiring.
	ErrTransport = errors.New("lookup request failed")

	// ErrUpstream is matched by every UpstreamError.
	ErrUpstream = errors.New("lookup API reported an error")

	// ErrMalformedResponse is returned when the body is not JSON or has a
	// shape that cannot hold records.
	ErrMalformedResponse = errors.New("malformed lookup response")

	// ErrInvalidNumber is returned when Lookup is called with something other
	// than exactly ten digits. No request is sent in that case.
	ErrInvalidNumber = errors.New("invalid number: expected 10 digits")

	// ErrNoBaseURL is returned by NewClient when no endpoint is configured.
	ErrNoBaseURL = errors.New("lookup API base URL is not configured")

	// ErrInvalidBaseURL is returned by NewClient when the endpoint is not an
	// absolute http or https URL.
	ErrInvalidBaseURL = errors.New("invalid lookup API base URL")

	// ErrInvalidProxyAddress is returned when the SOCKS5 proxy address is not
	// in "host:port" form.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)

// UpstreamError describes a failure reported by the API itself, either
// through a non-2xx status code or through an "error" field in the body.
type UpstreamError struct {
	// StatusCode is the HTTP status for status failures, zero otherwise.
	StatusCode int

	// Message is the API's own error text for body-level failures.
	Message string
}

// Error implements error.
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API status %d", e.StatusCode)
	}
	return e.Message
}

// Unwrap lets errors.Is(err, ErrUpstream) match.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}
