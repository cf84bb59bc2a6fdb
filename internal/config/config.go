package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "lookupbot"

	// DefaultPrefix starts every chat command, as in "!search".
	DefaultPrefix = "!"

	// DefaultTimeout bounds one lookup request from dial to the last byte.
	// The lookup API is slow under load; 30 seconds keeps a stuck request
	// from holding the placeholder message forever.
	DefaultTimeout = 30 * time.Second

	// DefaultMessageDelay is the pause between consecutive result messages.
	// Discord rate-limits bursts of messages to one channel; half a second
	// keeps a multi-record answer under the limit.
	DefaultMessageDelay = 500 * time.Millisecond

	// DefaultExportTTL is how long the export buttons of a search stay usable.
	DefaultExportTTL = 3 * time.Minute

	// DefaultSweepInterval is how often expired result sets are dropped.
	DefaultSweepInterval = time.Minute

	// DefaultUserAgent identifies lookupbot to the lookup API.
	DefaultUserAgent = "lookupbot/1.0"

	// DefaultMaxBodySize limits how much of a lookup response is read.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultStatus is the "Watching ..." presence shown in Discord.
	DefaultStatus = "Mobile Numbers | !help"

	// DefaultBrand is the name shown in message footers.
	DefaultBrand = "Mobile Search Bot"
)

// Environment variables read by LoadFromEnv.
const (
	EnvToken  = "DISCORD_BOT_TOKEN"
	EnvAPIURL = "LOOKUP_API_URL"
	EnvAPIKey = "LOOKUP_API_KEY"
	EnvPrefix = "LOOKUPBOT_PREFIX"
	EnvProxy  = "LOOKUPBOT_PROXY"
)

// Config holds all configuration options for lookupbot.
// This struct is populated from defaults, the config file, the environment
// and CLI flags, and is passed through the application via dependency
// injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The YAML file is nested by concern (api, bot) and is
// flattened into this struct by File.Apply.
type Config struct {
	// Token is the Discord bot token. It is only read from the environment
	// so it never ends up in a config file that may be committed.
	Token string

	// APIURL is the lookup API endpoint. The number and key are added as
	// query parameters.
	APIURL string

	// APIKey is sent as the "key" query parameter. It may be empty for
	// endpoints that do not require one.
	APIKey string

	// Timeout bounds a single lookup request.
	Timeout time.Duration

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format used
	// for lookup requests.
	ProxyAddress string

	// UserAgent is the User-Agent header sent to the lookup API.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Set to 0 to use the default (5MB).
	MaxBodySize int64

	// Prefix starts every chat command.
	Prefix string

	// MessageDelay is the pause between consecutive result messages.
	MessageDelay time.Duration

	// ExportTTL is how long export buttons stay usable after a search.
	ExportTTL time.Duration

	// SweepInterval is how often expired result sets are removed.
	SweepInterval time.Duration

	// AutoDetect makes the bot search numbers in ordinary messages, without
	// the search command.
	AutoDetect bool

	// Status is the "Watching ..." presence text. Empty disables it.
	Status string

	// Brand is the name shown in message footers.
	Brand string

	// Verbose enables debug logging.
	Verbose bool

	// JSONLogs switches log output from text to JSON.
	JSONLogs bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeout, prefix).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:       DefaultTimeout,
		UserAgent:     DefaultUserAgent,
		MaxBodySize:   DefaultMaxBodySize,
		Prefix:        DefaultPrefix,
		MessageDelay:  DefaultMessageDelay,
		ExportTTL:     DefaultExportTTL,
		SweepInterval: DefaultSweepInterval,
		Status:        DefaultStatus,
		Brand:         DefaultBrand,
	}
}

// XDGConfigDir returns the XDG config directory for lookupbot.
// On Linux: ~/.config/lookupbot
// On macOS: ~/Library/Application Support/lookupbot
// On Windows: %APPDATA%\lookupbot
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the settings every command needs.
// It returns the first problem found.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return ErrNoAPIURL
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	return nil
}

// ValidateForBot checks everything Validate does plus the settings only
// the chat bot needs.
func (c *Config) ValidateForBot() error {
	if strings.TrimSpace(c.Token) == "" {
		return ErrNoToken
	}

	if err := c.Validate(); err != nil {
		return err
	}

	if c.Prefix == "" {
		return ErrEmptyPrefix
	}

	if c.MessageDelay < 0 {
		return ErrInvalidMessageDelay
	}

	if c.ExportTTL <= 0 {
		return ErrInvalidExportTTL
	}

	if c.SweepInterval <= 0 {
		return ErrInvalidSweepInterval
	}

	return nil
}
