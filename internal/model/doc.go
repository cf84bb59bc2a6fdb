// Package model defines the data structures that flow through a search.
//
// This package contains the following main types:
//   - Record: one raw entry returned by the lookup API
//   - Result: the classified outcome of a lookup (error, empty or records)
//   - DisplayRecord: a Record after its fields have been normalized for display
//   - Export: the document written by the export writers
//
// Design decision: We keep records as a loosely typed map rather than a struct
// because the lookup API returns provider-specific fields that must survive
// untouched in exports. Typed accessors give the handful of fields we render a
// documented default instead of a missing-key failure.
//
// None of these values are persisted. They are created per search and dropped
// once the response has been sent.
package model
