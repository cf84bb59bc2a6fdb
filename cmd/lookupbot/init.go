package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/lookupbot/internal/config"
)

//go:embed templates/lookupbot.yaml
var configTemplate embed.FS

// configTemplatePath is the template's path inside configTemplate.
const configTemplatePath = "templates/lookupbot.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new lookupbot configuration file",
		Long: `Initialize creates a new .lookupbot configuration file in the current directory.

The generated file includes:
- The lookup API endpoint and key settings
- Bot settings such as prefix, message delay and export lifetime
- Documentation for all available options

Examples:
  # Create .lookupbot in current directory
  lookupbot init

  # Create the config file in the XDG config directory
  lookupbot init -o ~/.config/lookupbot/config.yaml

  # Force overwrite existing file
  lookupbot init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(configTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// The file may hold the API key, so it is only readable by the owner
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure:")
	fmt.Fprintln(out, "  - The lookup API endpoint and key")
	fmt.Fprintln(out, "  - The command prefix and message pacing")
	fmt.Fprintln(out, "\nThe bot token is read from DISCORD_BOT_TOKEN, not from this file.")
	fmt.Fprintf(out, "Files in %s are also found automatically.\n", config.XDGConfigDir())

	return nil
}
