// Package csvio provides the CSV collaborators around the interpolation
// engine: header validation, the tracker keyframe source, the reference
// timestamp reader, and the output writer.
//
// Records are read and written with encoding/csv, so quoting is handled by
// the codec; header comparison therefore sees already-unquoted tokens.
package csvio

import (
	"errors"
	"fmt"
)

// Column layouts of the two input files. The tracker layout stores the
// quaternion scalar component (qw) before the vector components.
var (
	// TrackerHeader is the required header of the tracker data file.
	TrackerHeader = []string{"sec", "usec", "x", "y", "z", "qw", "qx", "qy", "qz"}

	// TimestampHeader is the required leading header of the reference
	// timestamp file; any further columns are opaque payload.
	TimestampHeader = []string{"sec", "usec"}

	// OutputPrefixFields are the interpolated pose columns prepended to
	// each output row.
	OutputPrefixFields = []string{"refx", "refy", "refz", "refqw", "refqx", "refqy", "refqz"}
)

// ErrHeaderMismatch indicates an input file's header row does not declare the
// required columns.
var ErrHeaderMismatch = errors.New("header mismatch")

// ValidateHeader checks that got declares every column of want, in order,
// case-sensitively. Columns beyond len(want) are ignored.
func ValidateHeader(got, want []string) error {
	if len(got) < len(want) {
		return fmt.Errorf("%w: got %d columns, need at least %d", ErrHeaderMismatch, len(got), len(want))
	}
	for i, name := range want {
		if got[i] != name {
			return fmt.Errorf("%w: column %d, expected %q, found %q", ErrHeaderMismatch, i, name, got[i])
		}
	}
	return nil
}
