package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/lookupbot/internal/model"
)

// ruleWidth is the width of the separator lines in text output.
const ruleWidth = 70

// TextWriter outputs exports as a human-readable text listing.
//
// Design decision: Plain ASCII separators rather than box drawing or ANSI
// colours, because the file is usually opened on a phone from a chat
// attachment, where neither renders reliably.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the export in text format.
func (w *TextWriter) Write(export *model.Export) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, export)
	for i, rec := range export.DisplayRecords() {
		w.writeRecord(&sb, rec, i+1, export.Count)
	}
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the title block with search metadata.
func (w *TextWriter) writeHeader(sb *strings.Builder, export *model.Export) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("                    MOBILE NUMBER SEARCH REPORT\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Number:     %s\n", export.Number)
	fmt.Fprintf(sb, "Generated:  %s\n", export.GeneratedAt.Format(timestampLayout))
	fmt.Fprintf(sb, "Records:    %d\n", export.Count)
	sb.WriteString("\n")
}

// writeRecord writes every field of one record.
func (w *TextWriter) writeRecord(sb *strings.Builder, rec model.DisplayRecord, index, total int) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "RECORD %d of %d\n", index, total)
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")

	fmt.Fprintf(sb, "  Mobile:        %s\n", rec.Mobile)
	fmt.Fprintf(sb, "  Name:          %s\n", rec.Name)
	fmt.Fprintf(sb, "  Father's Name: %s\n", rec.FatherName)
	fmt.Fprintf(sb, "  Address:       %s\n", rec.Address)
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("Report generated by lookupbot\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}
