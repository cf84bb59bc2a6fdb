package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and ValidateForBot() and
// provide specific information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoAPIURL is returned when no lookup API endpoint is configured.
	ErrNoAPIURL = errors.New("no lookup API URL configured: set api.url or LOOKUP_API_URL")

	// ErrNoToken is returned by ValidateForBot when DISCORD_BOT_TOKEN is unset.
	ErrNoToken = errors.New("no Discord bot token: set DISCORD_BOT_TOKEN")

	// ErrInvalidTimeout is returned when the lookup timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMessageDelay is returned when the delay between result
	// messages is negative. Use 0 for no delay.
	ErrInvalidMessageDelay = errors.New("invalid message delay: must be non-negative")

	// ErrInvalidExportTTL is returned when the export lifetime is not positive.
	// A zero lifetime would expire export buttons before anyone can press them.
	ErrInvalidExportTTL = errors.New("invalid export TTL: must be positive")

	// ErrInvalidSweepInterval is returned when the export sweep interval is
	// not positive.
	ErrInvalidSweepInterval = errors.New("invalid sweep interval: must be positive")

	// ErrEmptyPrefix is returned when the command prefix is empty.
	// Without a prefix every message would be parsed as a command.
	ErrEmptyPrefix = errors.New("invalid prefix: must not be empty")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// A negative body size is invalid; use 0 to use the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
