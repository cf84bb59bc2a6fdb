package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// current directory.
const DefaultConfigFile = ".lookupbot"

// XDGConfigFileName is the configuration file name inside XDGConfigDir.
const XDGConfigFileName = "config.yaml"

// APISection configures the lookup API client.
type APISection struct {
	// URL is the lookup endpoint.
	URL string `yaml:"url,omitempty"`

	// Key is the API key sent with every request.
	Key string `yaml:"key,omitempty"`

	// Timeout bounds a single request, e.g. "30s".
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Proxy is an optional SOCKS5 proxy in "host:port" format.
	Proxy string `yaml:"proxy,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`

	// MaxBodySize caps the response size in bytes.
	MaxBodySize int64 `yaml:"maxBodySize,omitempty"`
}

// BotSection configures the chat bot.
type BotSection struct {
	// Prefix starts every command.
	Prefix string `yaml:"prefix,omitempty"`

	// MessageDelay is the pause between result messages, e.g. "500ms".
	MessageDelay *time.Duration `yaml:"messageDelay,omitempty"`

	// ExportTTL is how long export buttons stay usable, e.g. "3m".
	ExportTTL time.Duration `yaml:"exportTTL,omitempty"`

	// SweepInterval is how often expired exports are removed.
	SweepInterval time.Duration `yaml:"sweepInterval,omitempty"`

	// AutoDetect searches numbers in messages without the search command.
	AutoDetect *bool `yaml:"autoDetect,omitempty"`

	// Status is the "Watching ..." presence text.
	Status *string `yaml:"status,omitempty"`

	// Brand is the name shown in message footers.
	Brand string `yaml:"brand,omitempty"`
}

// File represents the structure of the lookupbot configuration file.
type File struct {
	API APISection `yaml:"api,omitempty"`
	Bot BotSection `yaml:"bot,omitempty"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cf, nil
}

// Apply copies every value set in the file onto cfg.
// Unset values leave cfg untouched. Pointer fields distinguish "unset"
// from an explicit zero, such as a zero delay or an empty status.
func (cf *File) Apply(cfg *Config) {
	if cf.API.URL != "" {
		cfg.APIURL = cf.API.URL
	}
	if cf.API.Key != "" {
		cfg.APIKey = cf.API.Key
	}
	if cf.API.Timeout != 0 {
		cfg.Timeout = cf.API.Timeout
	}
	if cf.API.Proxy != "" {
		cfg.ProxyAddress = cf.API.Proxy
	}
	if cf.API.UserAgent != "" {
		cfg.UserAgent = cf.API.UserAgent
	}
	if cf.API.MaxBodySize != 0 {
		cfg.MaxBodySize = cf.API.MaxBodySize
	}

	if cf.Bot.Prefix != "" {
		cfg.Prefix = cf.Bot.Prefix
	}
	if cf.Bot.MessageDelay != nil {
		cfg.MessageDelay = *cf.Bot.MessageDelay
	}
	if cf.Bot.ExportTTL != 0 {
		cfg.ExportTTL = cf.Bot.ExportTTL
	}
	if cf.Bot.SweepInterval != 0 {
		cfg.SweepInterval = cf.Bot.SweepInterval
	}
	if cf.Bot.AutoDetect != nil {
		cfg.AutoDetect = *cf.Bot.AutoDetect
	}
	if cf.Bot.Status != nil {
		cfg.Status = *cf.Bot.Status
	}
	if cf.Bot.Brand != "" {
		cfg.Brand = cf.Bot.Brand
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .lookupbot in the current directory
// 3. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), XDGConfigFileName)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
