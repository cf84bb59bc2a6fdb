// Package log provides secure logging built on top of the standard slog
// package.
//
// The SecureHandler wraps any slog.Handler and rewrites attributes before
// they are written:
//   - Credentials (the Discord bot token, the lookup API key, authorization
//     headers) are replaced with MaskValue.
//   - A "key" query parameter inside a logged URL is masked while the rest
//     of the URL stays readable.
//   - Phone numbers logged under "number", "mobile" or "phone" are replaced
//     with a short SHA3-256 fingerprint, so two log lines about the same
//     search can be correlated without the number itself being stored.
//
// # Usage
//
//	logger := log.New(os.Stderr, log.Options{Level: slog.LevelInfo})
//	logger.Info("search started", "number", "9876543210")
//	// number=sha3:4b1c09a2f7de
//
//	slog.SetDefault(logger)
package log
