package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
)

const tolerance = 1e-9

var (
	identity = quat.Number{Real: 1}

	// 90 degrees about z, orthogonal to identity on the 4D unit sphere.
	rot90z = quat.Number{Real: math.Sqrt2 / 2, Kmag: math.Sqrt2 / 2}
)

func assertQuatInDelta(t *testing.T, want, got quat.Number, tol float64) {
	t.Helper()
	assert.InDelta(t, want.Real, got.Real, tol)
	assert.InDelta(t, want.Imag, got.Imag, tol)
	assert.InDelta(t, want.Jmag, got.Jmag, tol)
	assert.InDelta(t, want.Kmag, got.Kmag, tol)
}

func TestSlerp_Endpoints(t *testing.T) {
	assertQuatInDelta(t, identity, Slerp(identity, rot90z, 0), tolerance)
	assertQuatInDelta(t, rot90z, Slerp(identity, rot90z, 1), tolerance)
}

func TestSlerp_MidpointBisectsArc(t *testing.T) {
	mid := Slerp(identity, rot90z, 0.5)

	// The midpoint of a great-circle arc splits the angle evenly: its dot
	// against each endpoint (cosine of half the arc angle) must match.
	dotStart := Dot(mid, identity)
	dotEnd := Dot(mid, rot90z)
	assert.InDelta(t, dotStart, dotEnd, tolerance)

	// Result stays on the unit sphere.
	assert.InDelta(t, 1.0, Dot(mid, mid), tolerance)

	// 45 degrees about z.
	want := quat.Number{Real: math.Cos(math.Pi / 8), Kmag: math.Sin(math.Pi / 8)}
	assertQuatInDelta(t, want, mid, tolerance)
}

func TestSlerp_TakesShorterArc(t *testing.T) {
	// Negating a unit quaternion leaves the rotation unchanged; slerp must
	// flip the far endpoint rather than travel the long way around.
	negEnd := quat.Scale(-1, rot90z)
	mid := Slerp(identity, negEnd, 0.5)

	want := Slerp(identity, rot90z, 0.5)
	assertQuatInDelta(t, want, mid, tolerance)
	assert.InDelta(t, 1.0, Dot(mid, mid), tolerance)
}

func TestSlerp_NearIdenticalFallsBackToLerp(t *testing.T) {
	// A tiny rotation about x keeps the dot product above the parallel
	// threshold, exercising the normalized linear blend path.
	const epsilon = 1e-8
	near := Normalize(quat.Number{Real: 1, Imag: epsilon})

	got := Slerp(identity, near, 0.5)
	assert.False(t, math.IsNaN(got.Real))
	assert.InDelta(t, 1.0, Dot(got, got), tolerance)
	assert.InDelta(t, 1.0, got.Real, 1e-7)
}

func TestSlerp_AntipodalDoesNotDivideByZero(t *testing.T) {
	// Exactly opposite quaternions: after the shorter-arc flip the inputs
	// coincide, which must hit the blend fallback, not sin(0) division.
	got := Slerp(identity, quat.Scale(-1, identity), 0.5)
	assert.False(t, math.IsNaN(got.Real))
	assert.InDelta(t, 1.0, Dot(got, got), tolerance)
}

func TestNormalize(t *testing.T) {
	q := Normalize(quat.Number{Real: 3, Imag: 4})
	assert.InDelta(t, 0.6, q.Real, tolerance)
	assert.InDelta(t, 0.8, q.Imag, tolerance)

	// The zero quaternion has no direction to preserve; it passes through.
	assert.Equal(t, quat.Number{}, Normalize(quat.Number{}))
}
