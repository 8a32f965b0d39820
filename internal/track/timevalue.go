// Package track defines the data model for timestamped tracker samples.
package track

import "strconv"

// MicrosecondsPerSecond is the usec-to-sec conversion factor.
const MicrosecondsPerSecond = 1_000_000

// TimeValue is a tracker timestamp split into whole seconds and microseconds.
// Ordering is lexicographic on (Sec, USec); a normalized value keeps USec in
// [0, 1_000_000).
type TimeValue struct {
	Sec  int64
	USec int64
}

// Normalized returns an equivalent TimeValue with USec folded into [0, 1_000_000).
func (tv TimeValue) Normalized() TimeValue {
	sec := tv.Sec + tv.USec/MicrosecondsPerSecond
	usec := tv.USec % MicrosecondsPerSecond
	if usec < 0 {
		sec--
		usec += MicrosecondsPerSecond
	}
	return TimeValue{Sec: sec, USec: usec}
}

// Before reports whether tv is strictly earlier than other.
func (tv TimeValue) Before(other TimeValue) bool {
	if tv.Sec != other.Sec {
		return tv.Sec < other.Sec
	}
	return tv.USec < other.USec
}

// Equal reports whether both fields match exactly.
func (tv TimeValue) Equal(other TimeValue) bool {
	return tv.Sec == other.Sec && tv.USec == other.USec
}

// String formats the timestamp as "sec:usec" for diagnostics.
func (tv TimeValue) String() string {
	return strconv.FormatInt(tv.Sec, 10) + ":" + strconv.FormatInt(tv.USec, 10)
}

// MicrosecondsUntil returns the signed microsecond count from tv to other.
// The arithmetic is integral throughout; the int64 result cannot overflow for
// timestamps representable in the input format.
func (tv TimeValue) MicrosecondsUntil(other TimeValue) int64 {
	return (other.Sec-tv.Sec)*MicrosecondsPerSecond + (other.USec - tv.USec)
}
