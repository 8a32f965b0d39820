package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/motiontools/trackalign/internal/track"
)

// OutputWriter writes the aligned dataset: each row is an interpolated pose
// followed by the originating reference record's fields, unchanged.
type OutputWriter struct {
	w *csv.Writer
}

// NewOutputWriter creates a writer over w.
func NewOutputWriter(w io.Writer) *OutputWriter {
	return &OutputWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the output header: the pose column names followed by the
// reference file's own header columns.
func (o *OutputWriter) WriteHeader(refHeader []string) error {
	row := make([]string, 0, len(OutputPrefixFields)+len(refHeader))
	row = append(row, OutputPrefixFields...)
	row = append(row, refHeader...)
	return o.w.Write(row)
}

// WriteRow writes one aligned row. Pose fields use the shortest decimal
// representation that round-trips float64.
func (o *OutputWriter) WriteRow(p track.Pose, payload []string) error {
	row := make([]string, 0, len(OutputPrefixFields)+len(payload))
	row = append(row,
		formatFloat(p.Position.X),
		formatFloat(p.Position.Y),
		formatFloat(p.Position.Z),
		formatFloat(p.Orientation.Real),
		formatFloat(p.Orientation.Imag),
		formatFloat(p.Orientation.Jmag),
		formatFloat(p.Orientation.Kmag),
	)
	row = append(row, payload...)
	return o.w.Write(row)
}

// Flush writes buffered rows to the underlying writer and reports any write
// error encountered.
func (o *OutputWriter) Flush() error {
	o.w.Flush()
	return o.w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
