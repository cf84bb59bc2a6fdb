package model

// Kind identifies which variant a Result holds.
type Kind int

const (
	// KindError means the lookup failed; Result.Err holds the reason.
	KindError Kind = iota

	// KindEmpty means the lookup succeeded but found nothing.
	KindEmpty

	// KindRecords means the lookup returned at least one record.
	KindRecords
)

// String returns the lower-case name of the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindEmpty:
		return "empty"
	case KindRecords:
		return "records"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single lookup.
// Exactly one of Err (KindError) or Records (KindRecords) is meaningful.
type Result struct {
	Kind    Kind
	Err     error
	Records []Record
}

// ErrorResult returns a failed Result carrying err.
func ErrorResult(err error) Result {
	return Result{Kind: KindError, Err: err}
}

// EmptyResult returns a Result for a lookup with no matches.
func EmptyResult() Result {
	return Result{Kind: KindEmpty}
}

// RecordsResult returns a Result holding records in the given order.
// An empty slice yields EmptyResult.
func RecordsResult(records []Record) Result {
	if len(records) == 0 {
		return EmptyResult()
	}
	return Result{Kind: KindRecords, Records: records}
}

// Count returns the number of records held by the result.
func (r Result) Count() int {
	return len(r.Records)
}
