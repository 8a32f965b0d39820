package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/motiontools/trackalign/internal/track"
)

// RefReader reads the reference timestamp stream: records whose first two
// fields are the integer timestamp components and whose remaining fields are
// opaque payload passed through to the output.
type RefReader struct {
	r      *csv.Reader
	header []string
}

// NewRefReader wraps rd, consuming the header row and validating its two
// leading timestamp columns.
func NewRefReader(rd io.Reader) (*RefReader, error) {
	r := csv.NewReader(rd)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading reference header: %w", err)
	}
	if err := ValidateHeader(header, TimestampHeader); err != nil {
		return nil, fmt.Errorf("reference data file: %w", err)
	}
	return &RefReader{r: r, header: header}, nil
}

// Header returns the full header row of the reference file, for echoing into
// the output header.
func (r *RefReader) Header() []string {
	return r.header
}

// Next reads one reference record. It reports false at end-of-stream or on
// the first record whose timestamp fields are missing or unparsable.
func (r *RefReader) Next() (track.TimeValue, []string, bool) {
	record, err := r.r.Read()
	if err != nil || len(record) < len(TimestampHeader) {
		return track.TimeValue{}, nil, false
	}
	sec, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return track.TimeValue{}, nil, false
	}
	usec, err := strconv.ParseInt(record[1], 10, 64)
	if err != nil {
		return track.TimeValue{}, nil, false
	}
	return track.TimeValue{Sec: sec, USec: usec}.Normalized(), record, true
}
