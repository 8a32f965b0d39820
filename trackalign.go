package trackalign

import (
	"errors"
	"fmt"
	"io"

	"github.com/motiontools/trackalign/internal/csvio"
	"github.com/motiontools/trackalign/internal/engine"
)

// Stats summarizes one alignment run.
type Stats struct {
	// RefRows is the number of reference records read.
	RefRows int64

	// RowsWritten is the number of aligned rows written to the output.
	RowsWritten int64

	// SkippedBefore is the number of reference records skipped because
	// they preceded the first tracker keyframe.
	SkippedBefore int64

	// TrackerExhausted reports whether the run ended because the tracker
	// stream ran out before the reference stream did.
	TrackerExhausted bool
}

// ErrInterpolation indicates the engine reported an internal failure for a
// query that should have been answerable. It points at a logic defect or at
// reference timestamps arriving out of order.
var ErrInterpolation = errors.New("interpolation failed")

// Process aligns the tracker stream with the reference stream, writing one
// CSV row per reference record that falls inside the recorded tracker data.
//
// Both streams must carry their header rows and be ordered by time. Header
// mismatches and a tracker stream shorter than two keyframes are fatal;
// reference records before the first keyframe are counted and skipped, and
// the run ends quietly when the tracker data runs out.
func Process(trackerData, refData io.Reader, out io.Writer) (Stats, error) {
	var stats Stats

	tracker, err := csvio.NewTrackerSource(trackerData)
	if err != nil {
		return stats, err
	}
	refs, err := csvio.NewRefReader(refData)
	if err != nil {
		return stats, err
	}

	eng, err := engine.New(tracker)
	if err != nil {
		return stats, err
	}

	output := csvio.NewOutputWriter(out)
	if err := output.WriteHeader(refs.Header()); err != nil {
		return stats, fmt.Errorf("writing output header: %w", err)
	}

	for {
		tv, payload, ok := refs.Next()
		if !ok {
			break
		}
		stats.RefRows++

		pose, status := eng.Query(tv)
		switch status {
		case engine.Successful:
			if err := output.WriteRow(pose, payload); err != nil {
				return stats, fmt.Errorf("writing output row: %w", err)
			}
			stats.RowsWritten++
		case engine.BeforeRecordedData:
			stats.SkippedBefore++
		case engine.OutOfData:
			stats.TrackerExhausted = true
		default:
			return stats, fmt.Errorf("%w: status %v at %v", ErrInterpolation, status, tv)
		}
		if stats.TrackerExhausted {
			break
		}
	}

	if err := output.Flush(); err != nil {
		return stats, fmt.Errorf("flushing output: %w", err)
	}
	return stats, nil
}
