package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/lookupbot/internal/bot"
	"github.com/nao1215/lookupbot/internal/model"
	"github.com/nao1215/lookupbot/internal/report"
)

// NewLookupCmd creates the lookup command.
func NewLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <text>",
		Short: "Look up a mobile number from the command line",
		Long: `Lookup runs one search without connecting to Discord and prints the
result as a report. The first 10-digit number found in the arguments is used.

Examples:
  # Print a plain-text report
  lookupbot lookup 9876543210

  # Print the raw records as JSON
  lookupbot lookup --json "call me on +91 9876543210"

  # Write a Markdown report to a file
  lookupbot lookup --markdown -o reports/9876543210.md 9876543210`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLookupCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown")

	return cmd
}

// runLookupCmd executes the lookup command.
func runLookupCmd(cmd *cobra.Command, args []string) error {
	number, err := bot.ValidateQuery(strings.Join(args, " "))
	if err != nil {
		return err
	}

	format, err := reportFormat(cmd)
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg, slog.LevelWarn)
	client, err := newLookupClient(cfg, logger)
	if err != nil {
		return err
	}

	result := client.Lookup(cmd.Context(), number)
	if result.Kind == model.KindError {
		return fmt.Errorf("lookup failed: %w", result.Err)
	}

	export := model.NewExport(number, result.Records, time.Now())
	return writeReport(cmd.OutOrStdout(), outputPath, format, export)
}

// reportFormat returns the format selected by --json or --markdown.
func reportFormat(cmd *cobra.Command) (report.Format, error) {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return "", err
	}
	asMarkdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return "", err
	}

	switch {
	case asJSON:
		return report.FormatJSON, nil
	case asMarkdown:
		return report.FormatMarkdown, nil
	default:
		return report.FormatText, nil
	}
}

// writeReport writes export to outputPath, or to stdout when it is empty.
func writeReport(stdout io.Writer, outputPath string, format report.Format, export *model.Export) error {
	output := stdout
	if outputPath != "" {
		dir := filepath.Dir(outputPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports hold personal data and are only readable by the owner
		f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	writer, err := report.NewWriter(format, output)
	if err != nil {
		return err
	}
	_, err = writer.Write(export)
	return err
}
