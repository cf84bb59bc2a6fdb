package bot

import (
	"errors"
	"testing"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   string
		content  string
		wantName string
		wantArg  string
		wantOK   bool
	}{
		{name: "command with argument", prefix: "!", content: "!search 9876543210", wantName: "search", wantArg: "9876543210", wantOK: true},
		{name: "command without argument", prefix: "!", content: "!help", wantName: "help", wantOK: true},
		{name: "upper case", prefix: "!", content: "!PING", wantName: "ping", wantOK: true},
		{name: "argument spacing trimmed", prefix: "!", content: "  !search   call me 9876543210  ", wantName: "search", wantArg: "call me 9876543210", wantOK: true},
		{name: "newline separator", prefix: "!", content: "!search\n9876543210", wantName: "search", wantArg: "9876543210", wantOK: true},
		{name: "multi-character prefix", prefix: "lb.", content: "lb.stats", wantName: "stats", wantOK: true},
		{name: "bare prefix", prefix: "!", content: "!", wantOK: false},
		{name: "space after prefix", prefix: "!", content: "! search", wantOK: false},
		{name: "other prefix", prefix: "!", content: "?search", wantOK: false},
		{name: "plain text", prefix: "!", content: "hello", wantOK: false},
		{name: "empty prefix", prefix: "", content: "search", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			name, arg, ok := ParseCommand(tt.prefix, tt.content)
			if ok != tt.wantOK || name != tt.wantName || arg != tt.wantArg {
				t.Errorf("ParseCommand(%q, %q) = %q, %q, %v; want %q, %q, %v",
					tt.prefix, tt.content, name, arg, ok, tt.wantName, tt.wantArg, tt.wantOK)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg     string
		want    string
		wantErr error
	}{
		{arg: "9876543210", want: "9876543210"},
		{arg: "my number is 9876543210 thanks", want: "9876543210"},
		{arg: "+91 9876543210", want: "9876543210"},
		{arg: "", wantErr: ErrMissingQuery},
		{arg: " \t ", wantErr: ErrMissingQuery},
		{arg: "12345", wantErr: ErrNoNumber},
		{arg: "98765432101", wantErr: ErrNoNumber},
		{arg: "abc9876543210", wantErr: ErrNoNumber},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()
			got, err := ValidateQuery(tt.arg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateQuery(%q) error = %v, want %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateQuery(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}
