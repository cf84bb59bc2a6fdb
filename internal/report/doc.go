// Package report renders exported search results.
//
// This package contains writers for different output formats:
//   - JSONWriter: the raw records with search metadata, for tool integration
//   - TextWriter: a plain-text listing of every record, for humans
//   - MarkdownWriter: the same listing as GitHub Flavored Markdown tables
//
// Design decision: We separate report writing from the data structures
// (which are in the model package) so new output formats can be added without
// touching the model. Writers implement the Writer interface and can be used
// interchangeably.
//
// Unlike the chat display, text and Markdown exports list every field of
// every record, including placeholders for missing values.
package report
