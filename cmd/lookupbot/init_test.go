package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/nao1215/lookupbot/internal/config"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" || flag.DefValue != config.DefaultConfigFile {
			t.Errorf("output flag = -%s default %q", flag.Shorthand, flag.DefValue)
		}
	})

	t.Run("has force flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("force")
		if flag == nil {
			t.Fatal("expected force flag")
		}
		if flag.Shorthand != "f" || flag.DefValue != "false" {
			t.Errorf("force flag = -%s default %q", flag.Shorthand, flag.DefValue)
		}
	})
}

// runInit executes init with args and returns its output.
func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewInitCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// TestRunInitCmd tests the init command execution.
func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates loadable config file", func(t *testing.T) {
		t.Parallel()
		outputPath := filepath.Join(t.TempDir(), ".lookupbot")

		out, err := runInit(t, "-o", outputPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, outputPath) {
			t.Errorf("expected output to name the file, got %q", out)
		}

		file, err := config.LoadConfigFile(outputPath)
		if err != nil {
			t.Fatalf("generated file does not load: %v", err)
		}
		cfg := config.NewConfig()
		file.Apply(cfg)
		defaults := config.NewConfig()
		if cfg.Prefix != defaults.Prefix || cfg.Timeout != defaults.Timeout ||
			cfg.MessageDelay != defaults.MessageDelay || cfg.ExportTTL != defaults.ExportTTL ||
			cfg.Status != defaults.Status {
			t.Errorf("template does not match defaults: %+v", cfg)
		}
	})

	t.Run("fails if file exists without force", func(t *testing.T) {
		t.Parallel()
		outputPath := filepath.Join(t.TempDir(), ".lookupbot")
		if err := os.WriteFile(outputPath, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := runInit(t, "-o", outputPath)
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Errorf("expected 'already exists' error, got %v", err)
		}
	})

	t.Run("overwrites file with force flag", func(t *testing.T) {
		t.Parallel()
		outputPath := filepath.Join(t.TempDir(), ".lookupbot")
		if err := os.WriteFile(outputPath, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		if _, err := runInit(t, "-o", outputPath, "-f"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(content) == "existing" {
			t.Error("expected file to be overwritten")
		}
	})

	t.Run("creates parent directories with owner-only permissions", func(t *testing.T) {
		t.Parallel()
		outputPath := filepath.Join(t.TempDir(), "lookupbot", "config.yaml")

		if _, err := runInit(t, "-o", outputPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		info, err := os.Stat(outputPath)
		if err != nil {
			t.Fatalf("expected config file to be created: %v", err)
		}
		if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
			t.Errorf("expected permissions 0600, got %o", info.Mode().Perm())
		}
	})
}

// TestConfigTemplate tests the embedded config template.
func TestConfigTemplate(t *testing.T) {
	t.Parallel()

	content, err := configTemplate.ReadFile(configTemplatePath)
	if err != nil {
		t.Fatalf("failed to read template: %v", err)
	}
	if strings.Contains(string(content), "DISCORD_BOT_TOKEN=") {
		t.Error("template must not carry a token")
	}
	for _, key := range []string{"api:", "bot:", "url:", "prefix:"} {
		if !strings.Contains(string(content), key) {
			t.Errorf("expected template to contain %q", key)
		}
	}
}
