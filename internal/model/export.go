package model

import "time"

// Export is the document produced when a user asks to export a result set.
// Records are the raw, unmodified entries returned by the API.
type Export struct {
	Number      string    `json:"number"`
	GeneratedAt time.Time `json:"generated_at"`
	Count       int       `json:"count"`
	Records     []Record  `json:"records"`
}

// NewExport builds an Export for the given search.
func NewExport(number string, records []Record, generatedAt time.Time) *Export {
	if records == nil {
		records = []Record{}
	}
	return &Export{
		Number:      number,
		GeneratedAt: generatedAt,
		Count:       len(records),
		Records:     records,
	}
}

// DisplayRecords returns the normalized view of every record, in order.
func (e *Export) DisplayRecords() []DisplayRecord {
	out := make([]DisplayRecord, len(e.Records))
	for i, rec := range e.Records {
		out[i] = NewDisplayRecord(rec, e.Number)
	}
	return out
}
