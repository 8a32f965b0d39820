// Package spatial implements the quaternion interpolation used when
// resampling orientations between keyframes.
package spatial

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// nearParallelDot is the |dot| threshold above which two unit quaternions are
// treated as coincident and slerp falls back to normalized linear blending,
// keeping the interpolation well defined when sin(theta) approaches zero.
const nearParallelDot = 0.9995

// Dot returns the 4D dot product of two quaternions.
func Dot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

// Normalize scales q to unit norm. The zero quaternion is returned unchanged.
func Normalize(q quat.Number) quat.Number {
	n := math.Sqrt(Dot(q, q))
	if n == 0 {
		return q
	}
	return quat.Scale(1/n, q)
}

// Slerp spherically interpolates from a to b by t in [0, 1], taking the
// shorter arc on the 4D unit sphere. Both inputs must be unit quaternions.
// When a and b are nearly identical or antipodal the great-circle formula
// degenerates and a normalized linear blend is used instead.
func Slerp(a, b quat.Number, t float64) quat.Number {
	d := Dot(a, b)

	// A quaternion and its negation describe the same rotation; flip one
	// endpoint so the interpolation follows the shorter arc.
	if d < 0 {
		b = quat.Scale(-1, b)
		d = -d
	}

	if d > nearParallelDot {
		return Normalize(quat.Add(quat.Scale(1-t, a), quat.Scale(t, b)))
	}

	theta := math.Acos(d)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return quat.Add(quat.Scale(wa, a), quat.Scale(wb, b))
}
