package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/lookupbot/internal/config"
	"github.com/nao1215/lookupbot/internal/log"
	"github.com/nao1215/lookupbot/internal/lookup"
)

// getBoolFlag retrieves a global boolean flag from the command or its parent.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// getStringFlag retrieves a global string flag from the command or its parent.
func getStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetString(name)
		if err != nil {
			return ""
		}
	}
	return v
}

// buildConfig creates a Config from defaults, the config file, the
// environment and the global flags, in that order.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	cfg.ConfigFilePath = getStringFlag(cmd, "config")

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	cfg.LoadFromEnv()

	cfg.Verbose = getBoolFlag(cmd, "verbose")
	cfg.JSONLogs = getBoolFlag(cmd, "json-logs")

	return cfg, nil
}

// newLogger creates the secure logger for a command. level applies unless
// --verbose is set.
func newLogger(w io.Writer, cfg *config.Config, level slog.Level) *slog.Logger {
	return log.New(w, log.Options{
		Level: log.Level(cfg.Verbose, level),
		JSON:  cfg.JSONLogs,
	})
}

// newLookupClient creates the lookup API client described by cfg.
func newLookupClient(cfg *config.Config, logger *slog.Logger) (*lookup.Client, error) {
	opts := []lookup.Option{
		lookup.WithTimeout(cfg.Timeout),
		lookup.WithUserAgent(cfg.UserAgent),
		lookup.WithLogger(logger),
	}
	if cfg.MaxBodySize > 0 {
		opts = append(opts, lookup.WithMaxBodySize(cfg.MaxBodySize))
	}
	if cfg.ProxyAddress != "" {
		opts = append(opts, lookup.WithProxy(cfg.ProxyAddress))
	}

	client, err := lookup.NewClient(cfg.APIURL, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup client: %w", err)
	}
	return client, nil
}
