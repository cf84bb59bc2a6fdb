package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildInfo(t *testing.T) {
	t.Parallel()

	if getVersion() == "" {
		t.Error("getVersion() returned empty string")
	}
	if c := getCommit(); c == "" || len(c) > shortCommitLen && c != "unknown" {
		t.Errorf("getCommit() = %q", c)
	}
	if getDate() == "" {
		t.Error("getDate() returned empty string")
	}
}

func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := NewVersionCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"lookupbot version", "commit:", "built:", "go:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}
