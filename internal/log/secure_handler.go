package log

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

// sensitiveKeys contains attribute keys that should always be sanitized.
var sensitiveKeys = map[string]bool{
	// HTTP headers
	"authorization":       true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
	"proxy-authorization": true,

	// Credentials
	"password":      true,
	"secret":        true,
	"token":         true,
	"bot_token":     true,
	"discord_token": true,
	"key":           true,
	"api_key":       true,
	"apikey":        true,
	"api-key":       true,
	"access_token":  true,
	"credential":    true,
	"credentials":   true,
	"auth":          true,
}

// personalKeys are attribute keys that hold phone numbers.
// Their values are fingerprinted rather than masked so related log lines
// stay correlatable.
var personalKeys = map[string]bool{
	"number": true,
	"mobile": true,
	"phone":  true,
}

// sensitivePatterns contains regex patterns that indicate sensitive values.
// Values matching these patterns will be sanitized regardless of key name.
var sensitivePatterns = []*regexp.Regexp{
	// Discord bot tokens: base64 user ID, timestamp and HMAC
	regexp.MustCompile(`^[A-Za-z0-9_-]{23,28}\.[A-Za-z0-9_-]{6,7}\.[A-Za-z0-9_-]{27,}$`),

	// Bot and Bearer authorization values
	regexp.MustCompile(`(?i)^(bot|bearer)\s+.+`),

	// API keys (common formats)
	regexp.MustCompile(`^[a-zA-Z0-9]{32,}$`),
}

// keyParam matches a "key" query parameter inside a URL or error message.
var keyParam = regexp.MustCompile(`([?&](?:api_?)?key=)[^&\s"]*`)

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// fingerprintPrefix marks fingerprinted values in log output.
const fingerprintPrefix = "sha3:"

// SecureHandler wraps an slog.Handler to sanitize sensitive information.
// It intercepts log records and sanitizes attribute values that match
// sensitive key names or value patterns before passing them to the
// underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because it integrates with standard slog APIs and works with any
// underlying handler (text, JSON, etc.).
type SecureHandler struct {
	// handler is the underlying slog handler that receives sanitized records.
	handler slog.Handler
}

// NewSecureHandler creates a new SecureHandler wrapping the given handler.
// If handler is nil, the returned SecureHandler will use slog.Default().Handler().
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle sanitizes the record's attributes and passes it to the underlying handler.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	sanitized := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(h.sanitizeAttr(a))
		return true
	})

	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are sanitized before being added.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitizedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		sanitizedAttrs[i] = h.sanitizeAttr(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(sanitizedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

// sanitizeAttr sanitizes a single attribute, recursively handling groups.
func (h *SecureHandler) sanitizeAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		sanitizedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			sanitizedAttrs[i] = h.sanitizeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(sanitizedAttrs...)}
	}

	keyLower := strings.ToLower(a.Key)
	if sensitiveKeys[keyLower] || containsSensitiveKeyword(keyLower) {
		return slog.String(a.Key, MaskValue)
	}

	if personalKeys[keyLower] {
		return slog.String(a.Key, Fingerprint(a.Value.String()))
	}

	// error values are rendered as strings so a key in a failed URL is
	// caught as well
	if a.Value.Kind() == slog.KindString || isError(a.Value) {
		strVal := a.Value.String()
		if isSensitiveValue(strVal) {
			return slog.String(a.Key, MaskValue)
		}
		if keyParam.MatchString(strVal) {
			return slog.String(a.Key, keyParam.ReplaceAllString(strVal, "${1}"+MaskValue))
		}
	}

	return a
}

// isError reports whether v holds an error.
func isError(v slog.Value) bool {
	if v.Kind() != slog.KindAny {
		return false
	}
	_, ok := v.Any().(error)
	return ok
}

// containsSensitiveKeyword checks if the key contains sensitive keywords.
// The bare "key" keyword is matched exactly through sensitiveKeys only, as
// a substring it causes false positives ("primary_key", "keyboard").
func containsSensitiveKeyword(key string) bool {
	sensitiveKeywords := []string{
		"password", "passwd", "secret", "token", "auth", "credential",
	}

	for _, keyword := range sensitiveKeywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

// isSensitiveValue checks if a value matches sensitive patterns.
func isSensitiveValue(value string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// Fingerprint returns a short, stable SHA3-256 digest of value.
// Empty values are returned unchanged.
func Fingerprint(value string) string {
	if value == "" {
		return value
	}
	sum := sha3.Sum256([]byte(value))
	return fingerprintPrefix + hex.EncodeToString(sum[:6])
}

// Options controls the logger built by New.
type Options struct {
	// Level is the minimum level written.
	Level slog.Level

	// JSON switches the output from text to JSON.
	JSON bool
}

// New creates a new slog.Logger with secure handling.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(NewSecureHandler(handler))
}

// Level returns Debug when verbose is set and fallback otherwise.
func Level(verbose bool, fallback slog.Level) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return fallback
}

// NewSecureLogger creates a text logger at Debug level when verbose and Warn
// level otherwise.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	return New(w, Options{Level: Level(verbose, slog.LevelWarn)})
}
