package track

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Pose is a 3D position paired with a unit-norm orientation.
// The orientation uses gonum's quat.Number: Real is the scalar (w) component,
// Imag/Jmag/Kmag are the vector (x/y/z) components. Normalization is the
// producer's responsibility; the interpolation engine does not re-normalize.
type Pose struct {
	Position    r3.Vector
	Orientation quat.Number
}

// Keyframe is one timestamped pose sample from the tracker stream.
type Keyframe struct {
	Time TimeValue
	Pose Pose
}
