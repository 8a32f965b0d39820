// Package testutil provides reusable assertion helpers for pose and
// quaternion comparisons in trackalign tests.
package testutil

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
)

// DefaultTolerance is the absolute tolerance used for floating-point
// comparisons unless a test needs something looser.
const DefaultTolerance = 1e-9

// AssertVectorInDelta verifies that each component of got is within tolerance
// of the corresponding component of want.
func AssertVectorInDelta(t *testing.T, want, got r3.Vector, tolerance float64) bool {
	t.Helper()
	ok := assert.InDelta(t, want.X, got.X, tolerance, "X component")
	ok = assert.InDelta(t, want.Y, got.Y, tolerance, "Y component") && ok
	ok = assert.InDelta(t, want.Z, got.Z, tolerance, "Z component") && ok
	return ok
}

// AssertQuatInDelta verifies that each component of got is within tolerance
// of the corresponding component of want.
func AssertQuatInDelta(t *testing.T, want, got quat.Number, tolerance float64) bool {
	t.Helper()
	ok := assert.InDelta(t, want.Real, got.Real, tolerance, "Real (w) component")
	ok = assert.InDelta(t, want.Imag, got.Imag, tolerance, "Imag (x) component") && ok
	ok = assert.InDelta(t, want.Jmag, got.Jmag, tolerance, "Jmag (y) component") && ok
	ok = assert.InDelta(t, want.Kmag, got.Kmag, tolerance, "Kmag (z) component") && ok
	return ok
}
