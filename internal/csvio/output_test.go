package csvio

import (
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"

	"github.com/motiontools/trackalign/internal/track"
)

func TestOutputWriter(t *testing.T) {
	var buf strings.Builder
	w := NewOutputWriter(&buf)

	require.NoError(t, w.WriteHeader([]string{"sec", "usec", "frame"}))
	require.NoError(t, w.WriteRow(track.Pose{
		Position:    r3.Vector{X: 0.5, Y: -1, Z: 2.25},
		Orientation: quat.Number{Real: 1},
	}, []string{"3", "250000", "17"}))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "refx,refy,refz,refqw,refqx,refqy,refqz,sec,usec,frame", lines[0])
	assert.Equal(t, "0.5,-1,2.25,1,0,0,0,3,250000,17", lines[1])
}

func TestOutputWriter_RoundTripsFloats(t *testing.T) {
	var buf strings.Builder
	w := NewOutputWriter(&buf)

	// One third does not terminate in decimal; the shortest round-trip
	// form must still parse back to the identical float64.
	require.NoError(t, w.WriteRow(track.Pose{
		Position: r3.Vector{X: 1.0 / 3.0},
	}, nil))
	require.NoError(t, w.Flush())

	first := strings.Split(strings.TrimRight(buf.String(), "\n"), ",")[0]
	assert.Equal(t, "0.3333333333333333", first)
}
