// Package normalize cleans raw field values returned by the lookup API and
// extracts phone numbers from free-form user input.
//
// The functions in this package are total: they never return an error and
// never panic. Values that cannot be turned into something presentable are
// replaced with a fixed placeholder (NotAvailable or AddressNotAvailable).
//
// Every function is idempotent on its own output, so it is safe to run an
// already-cleaned value through it again.
package normalize
