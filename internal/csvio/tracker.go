package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/motiontools/trackalign/internal/track"
)

// Field indices within a tracker record.
const (
	fieldSec = iota
	fieldUSec
	fieldX
	fieldY
	fieldZ
	fieldQW
	fieldQX
	fieldQY
	fieldQZ

	trackerFieldCount = 9
)

// TrackerSource reads keyframes from a tracker CSV stream. It implements
// engine.SampleSource: a record with too few fields or an unparsable numeric
// field is reported the same way as end-of-stream, so the stream effectively
// ends at the first bad record.
type TrackerSource struct {
	r *csv.Reader
}

// NewTrackerSource wraps rd, consuming and validating the header row.
func NewTrackerSource(rd io.Reader) (*TrackerSource, error) {
	r := csv.NewReader(rd)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading tracker header: %w", err)
	}
	if err := ValidateHeader(header, TrackerHeader); err != nil {
		return nil, fmt.Errorf("tracker data file: %w", err)
	}
	return &TrackerSource{r: r}, nil
}

// Next consumes one tracker record and converts it into a keyframe.
func (s *TrackerSource) Next() (track.Keyframe, bool) {
	record, err := s.r.Read()
	if err != nil || len(record) < trackerFieldCount {
		return track.Keyframe{}, false
	}

	sec, err := strconv.ParseInt(record[fieldSec], 10, 64)
	if err != nil {
		return track.Keyframe{}, false
	}
	usec, err := strconv.ParseInt(record[fieldUSec], 10, 64)
	if err != nil {
		return track.Keyframe{}, false
	}

	var vals [7]float64
	for i, field := range record[fieldX : fieldQZ+1] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return track.Keyframe{}, false
		}
		vals[i] = v
	}

	return track.Keyframe{
		Time: track.TimeValue{Sec: sec, USec: usec}.Normalized(),
		Pose: track.Pose{
			Position:    r3.Vector{X: vals[0], Y: vals[1], Z: vals[2]},
			Orientation: quat.Number{Real: vals[3], Imag: vals[4], Jmag: vals[5], Kmag: vals[6]},
		},
	}, true
}
