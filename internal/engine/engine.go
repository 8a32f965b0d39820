// Package engine implements sequential pose interpolation over an ordered
// stream of tracker keyframes.
//
// The engine holds a two-keyframe sliding window and answers queries for
// monotonically non-decreasing timestamps, advancing the window forward as
// the queries catch up to it. It never seeks backward and reads each
// keyframe from its source exactly once.
package engine

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/motiontools/trackalign/internal/spatial"
	"github.com/motiontools/trackalign/internal/track"
)

// SampleSource supplies tracker keyframes in non-decreasing time order.
// Next reports false when no further keyframe is available; a short or
// unparsable record counts as unavailable, the same as end-of-stream.
type SampleSource interface {
	Next() (track.Keyframe, bool)
}

// ErrInsufficientData indicates the source could not supply the two keyframes
// needed to establish the initial interpolation window.
var ErrInsufficientData = errors.New("insufficient tracker data")

// Engine interpolates poses at query timestamps between the two keyframes of
// its current window. Queries must arrive in non-decreasing time order; this
// precondition is documented rather than checked.
type Engine struct {
	src SampleSource

	start track.Keyframe
	end   track.Keyframe

	// Cached interval data, refreshed whenever either keyframe changes.
	spanMicros int64
	deltaPos   r3.Vector

	exhausted bool
}

// New constructs an engine by reading the two initial keyframes from src.
// Failure to obtain either keyframe is fatal for the pipeline.
func New(src SampleSource) (*Engine, error) {
	e := &Engine{src: src}
	var ok bool
	if e.start, ok = src.Next(); !ok {
		return nil, fmt.Errorf("%w: could not read the initial keyframe", ErrInsufficientData)
	}
	if e.end, ok = src.Next(); !ok {
		return nil, fmt.Errorf("%w: could not read the second keyframe", ErrInsufficientData)
	}
	e.refreshInterval()
	return e, nil
}

// Exhausted reports whether the underlying source has run out of keyframes.
func (e *Engine) Exhausted() bool {
	return e.exhausted
}

// Window returns the current start and end keyframes, for skip diagnostics.
func (e *Engine) Window() (start, end track.Keyframe) {
	return e.start, e.end
}

// Query interpolates a pose at tv. Successive calls must supply
// non-decreasing timestamps. The returned pose is meaningful only when the
// status is Successful.
func (e *Engine) Query(tv track.TimeValue) (track.Pose, Status) {
	if tv.Before(e.start.Time) {
		return track.Pose{}, BeforeRecordedData
	}

	// The window may need to advance several keyframes to catch up.
	for e.end.Time.Before(tv) {
		if !e.advance() {
			return track.Pose{}, OutOfData
		}
	}
	if e.exhausted {
		return track.Pose{}, OutOfData
	}

	return e.interpolate(tv)
}

// advance promotes end to start and reads a new end keyframe. It reports
// false once the source is exhausted, after which it never reads again.
func (e *Engine) advance() bool {
	if e.exhausted {
		return false
	}
	e.start = e.end
	next, ok := e.src.Next()
	if !ok {
		e.exhausted = true
		return false
	}
	e.end = next
	e.refreshInterval()
	return true
}

func (e *Engine) refreshInterval() {
	e.spanMicros = e.start.Time.MicrosecondsUntil(e.end.Time)
	e.deltaPos = e.end.Pose.Position.Sub(e.start.Pose.Position)
}

// interpolate assumes start.Time <= tv <= end.Time.
func (e *Engine) interpolate(tv track.TimeValue) (track.Pose, Status) {
	// Window boundaries are returned verbatim, with no arithmetic applied.
	if tv.Equal(e.start.Time) {
		return e.start.Pose, Successful
	}
	if tv.Equal(e.end.Time) {
		return e.end.Pose, Successful
	}
	if tv.Before(e.start.Time) || e.end.Time.Before(tv) || e.spanMicros <= 0 {
		// Unreachable given Query's checks; indicates a logic defect
		// rather than a data condition.
		return track.Pose{}, UnexpectedFailure
	}

	t := float64(e.start.Time.MicrosecondsUntil(tv)) / float64(e.spanMicros)

	return track.Pose{
		Position:    e.start.Pose.Position.Add(e.deltaPos.Mul(t)),
		Orientation: spatial.Slerp(e.start.Pose.Orientation, e.end.Pose.Orientation, t),
	}, Successful
}
