package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/lookupbot/internal/model"
)

// Format names an export format.
type Format string

const (
	// FormatJSON is the JSON document with raw records.
	FormatJSON Format = "json"

	// FormatText is the plain-text listing.
	FormatText Format = "text"

	// FormatMarkdown is the Markdown listing.
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat is returned when a format name is not recognised.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat converts a user supplied name into a Format.
// "txt" and "md" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension used for the format, without a dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "md"
	default:
		return "txt"
	}
}

// ContentType returns the MIME type used when the export is attached.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Writer defines the interface for export output.
type Writer interface {
	// Write outputs the export to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(export *model.Export) (int, error)
}

// NewWriter returns the Writer for format f writing to output.
// JSON output is pretty-printed.
func NewWriter(f Format, output io.Writer) (Writer, error) {
	switch f {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatText:
		return NewTextWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Render writes export in format f and returns the result as a string.
func Render(f Format, export *model.Export) (string, error) {
	var buf bytes.Buffer
	w, err := NewWriter(f, &buf)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(export); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// timestampLayout is used for the generation time in text and Markdown.
const timestampLayout = "2006-01-02 15:04:05 MST"
