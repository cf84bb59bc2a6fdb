package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/lookupbot/internal/model"
)

// MarkdownWriter outputs exports in Markdown format.
// This format is designed for pasting into issues, wikis and notes.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which gives us type-safe tables and alerts without hand-built
// pipe syntax.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the export in Markdown format.
func (w *MarkdownWriter) Write(export *model.Export) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, export)
	w.writeRecords(md, export)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the search metadata table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, export *model.Export) {
	md.H1("Mobile Number Search Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Number", "`" + export.Number + "`"},
			{"Generated", export.GeneratedAt.Format(timestampLayout)},
			{"Records", strconv.Itoa(export.Count)},
		},
	})
	md.PlainText("")
}

// writeRecords writes one section per record.
func (w *MarkdownWriter) writeRecords(md *markdown.Markdown, export *model.Export) {
	if export.Count == 0 {
		md.Note("No records were found for this number.")
		md.PlainText("")
		return
	}

	for i, rec := range export.DisplayRecords() {
		md.H2(fmt.Sprintf("Record %d of %d", i+1, export.Count))
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Field", "Value"},
			Rows: [][]string{
				{"Mobile", "`" + rec.Mobile + "`"},
				{"Name", escapeCell(rec.Name)},
				{"Father's Name", escapeCell(rec.FatherName)},
				{"Address", escapeCell(rec.Address)},
			},
		})
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by lookupbot*")
}

// escapeCell keeps a value from breaking the table layout.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
