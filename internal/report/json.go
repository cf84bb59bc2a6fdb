package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/lookupbot/internal/model"
)

// JSONWriter outputs exports in JSON format.
// Records are written exactly as they were returned by the lookup API.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because the records are already generic maps decoded by
// encoding/json, and round-tripping them through the same package keeps
// number formatting intact.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the export in JSON format.
func (w *JSONWriter) Write(export *model.Export) (int, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	// Names and addresses routinely contain '&'; keep them readable.
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent(w.indentPrefix, w.indentString)
	}

	// Encode appends the trailing newline for terminal output.
	if err := enc.Encode(export); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
