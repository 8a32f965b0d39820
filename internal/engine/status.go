package engine

// Status classifies the outcome of a single interpolation query.
// These are expected, reportable conditions returned as values; only
// UnexpectedFailure signals an internal invariant violation.
type Status int

const (
	// Successful means a pose was produced for the query timestamp.
	Successful Status = iota

	// BeforeRecordedData means the query precedes all tracker data.
	// Always possible for a prefix of queries before the first keyframe.
	BeforeRecordedData

	// OutOfData means the tracker stream was exhausted before the window
	// could be advanced to cover the query timestamp. Terminal.
	OutOfData

	// UnexpectedFailure is defensive: it should not occur as long as
	// queries arrive in non-decreasing time order.
	UnexpectedFailure
)

// String returns a short human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Successful:
		return "successful"
	case BeforeRecordedData:
		return "before recorded tracker data"
	case OutOfData:
		return "out of tracker data"
	case UnexpectedFailure:
		return "unexpected failure"
	default:
		return "unknown status"
	}
}
