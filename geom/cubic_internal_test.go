package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDimExtrema_ConstantDerivative covers the f1 = f2 = 0 branch: a
// dimension whose derivative never vanishes has no extrema.
func TestDimExtrema_ConstantDerivative(t *testing.T) {
	// Evenly spaced collinear controls: B'(t) is a nonzero constant.
	assert.Empty(t, dimExtrema(0, 3, 1, 2))
}

// TestDimExtrema_LinearDerivative covers the f2 = 0 branch.
func TestDimExtrema_LinearDerivative(t *testing.T) {
	// a=0, b=0, c1=1, c2=1: f0=3, f1=-6, f2=0 ⇒ single root at 0.5.
	roots := dimExtrema(0, 0, 1, 1)
	require.Len(t, roots, 1)
	assert.Equal(t, 0.5, roots[0])
}

// TestDimExtrema_NegativeDiscriminant covers the no-real-roots branch.
func TestDimExtrema_NegativeDiscriminant(t *testing.T) {
	// a=0, b=4, c1=1, c2=2: f0=3, f1=0, f2=3 ⇒ d=-36<0.
	assert.Empty(t, dimExtrema(0, 4, 1, 2))
}

// TestDimExtrema_DoubleRoot covers the zero-discriminant branch.
func TestDimExtrema_DoubleRoot(t *testing.T) {
	// a=0, b=7, c1=1, c2=3: f0=3, f1=6, f2=3 ⇒ d=0, root at -1.
	roots := dimExtrema(0, 7, 1, 3)
	require.Len(t, roots, 1)
	assert.Equal(t, -1.0, roots[0])
}

// TestDimExtrema_TwoRoots covers the positive-discriminant branch; the
// −sqrt root comes first.
func TestDimExtrema_TwoRoots(t *testing.T) {
	// a=0, b=2.5, c1=2, c2=2.5: f0=6, f1=-9, f2=3 ⇒ d=9, roots 1 and 2.
	roots := dimExtrema(0, 2.5, 2, 2.5)
	require.Len(t, roots, 2)
	assert.Equal(t, 1.0, roots[0])
	assert.Equal(t, 2.0, roots[1])
}

// TestDimExtrema_RoundingCollapsesNoise verifies that coefficients within
// 5e-9 of zero are treated as zero, keeping nearly-degenerate curves on
// the lower-degree branch.
func TestDimExtrema_RoundingCollapsesNoise(t *testing.T) {
	// c2 nudged off the straight line by float noise: without rounding
	// this would be a quadratic with enormous roots.
	assert.Empty(t, dimExtrema(0, 3, 1, 2+1e-10))
}

// TestRoundTo verifies the 8-digit rounding helper at its boundaries.
func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.12345678, roundTo(0.123456784, 8))
	assert.Equal(t, 0.12345679, roundTo(0.123456789, 8))
	assert.Equal(t, -2.0, roundTo(-2.0000000049, 8))
}
