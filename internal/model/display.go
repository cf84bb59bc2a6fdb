package model

import "github.com/nao1215/lookupbot/internal/normalize"

// DisplayRecord is the presentable view of a Record.
// It is derived once and never modified.
type DisplayRecord struct {
	// Mobile is the record's mobile value verbatim, or the searched number
	// when the record has none.
	Mobile string `json:"mobile"`

	// Name is the cleaned name or normalize.NotAvailable.
	Name string `json:"name"`

	// FatherName is the cleaned father's name or normalize.NotAvailable.
	FatherName string `json:"father_name"`

	// Address is the formatted address or normalize.AddressNotAvailable.
	Address string `json:"address"`
}

// NewDisplayRecord normalizes rec for display. searched is the number the
// user asked for and is used when the record carries no mobile value.
func NewDisplayRecord(rec Record, searched string) DisplayRecord {
	mobile := rec.Mobile()
	if mobile == "" {
		mobile = searched
	}

	return DisplayRecord{
		Mobile:     mobile,
		Name:       normalize.CleanText(rec.Name()),
		FatherName: normalize.CleanText(rec.FatherName()),
		Address:    normalize.FormatAddress(rec.Address()),
	}
}

// HasFatherName reports whether the father's name holds real data.
func (d DisplayRecord) HasFatherName() bool {
	return d.FatherName != normalize.NotAvailable
}

// HasAddress reports whether the address holds real data.
func (d DisplayRecord) HasAddress() bool {
	return d.Address != normalize.AddressNotAvailable
}
