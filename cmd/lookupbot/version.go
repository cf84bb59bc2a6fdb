package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build information set at build time via ldflags, e.g.
// -X main.version=v1.2.0 -X main.commit=abc1234 -X main.date=2026-01-01.
var (
	version = ""
	commit  = ""
	date    = ""
)

// shortCommitLen is how many characters of a VCS revision are shown.
const shortCommitLen = 7

// buildSetting returns the named setting recorded by the Go toolchain,
// or "" when the binary carries no build info.
func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// getVersion returns the version: ldflags, then module version, then "(devel)".
func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// getCommit returns the short commit hash or "unknown".
func getCommit() string {
	rev := commit
	if rev == "" {
		rev = buildSetting("vcs.revision")
	}
	if rev == "" {
		return "unknown"
	}
	if len(rev) > shortCommitLen {
		return rev[:shortCommitLen]
	}
	return rev
}

// getDate returns the build date or "unknown".
func getDate() string {
	if date != "" {
		return date
	}
	if t := buildSetting("vcs.time"); t != "" {
		return t
	}
	return "unknown"
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, build date and Go version of lookupbot.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lookupbot version %s\n", getVersion())
			fmt.Fprintf(out, "  commit: %s\n", getCommit())
			fmt.Fprintf(out, "  built:  %s\n", getDate())
			fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
		},
	}
}
