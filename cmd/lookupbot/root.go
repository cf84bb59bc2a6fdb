package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for lookupbot.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookupbot",
		Short: "Discord bot for mobile number lookups",
		Long: `lookupbot is a Discord bot that extracts a 10-digit mobile number from a
command, queries a lookup API and posts the records it finds.

The bot token is read from DISCORD_BOT_TOKEN. A .env file in the current
directory is loaded first. The lookup API endpoint and key come from the
configuration file (see "lookupbot init") or from LOOKUP_API_URL and
LOOKUP_API_KEY.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .lookupbot in current directory or XDG config dir)")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewLookupCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
