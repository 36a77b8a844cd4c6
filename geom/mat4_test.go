package geom_test

import (
	"testing"

	"github.com/cetz-package/cetz/geom"
	"github.com/stretchr/testify/assert"
)

// translate builds a translation matrix moving points by (tx, ty, tz).
func translate(tx, ty, tz float64) geom.Mat4 {
	m := geom.Identity()
	m[3], m[7], m[11] = tx, ty, tz
	return m
}

// TestMulVec_Identity verifies the identity transform returns (x, y, z).
func TestMulVec_Identity(t *testing.T) {
	out := geom.MulVec(geom.Identity(), geom.Point{2, -3, 5}, 1)
	assert.Equal(t, geom.Point{2, -3, 5}, out)
}

// TestMulVec_2DVectorDefaultsZ verifies that a 2-component vector is
// treated as having z = 0.
func TestMulVec_2DVectorDefaultsZ(t *testing.T) {
	out := geom.MulVec(translate(0, 0, 7), geom.Point{1, 2}, 1)
	assert.Equal(t, geom.Point{1, 2, 7}, out)
}

// TestMulVec_WControlsTranslation verifies that w = 1 applies the
// translation column while w = 0 suppresses it (direction vectors).
func TestMulVec_WControlsTranslation(t *testing.T) {
	m := translate(10, 20, 30)

	pos := geom.MulVec(m, geom.Point{1, 1, 1}, 1)
	assert.Equal(t, geom.Point{11, 21, 31}, pos)

	dir := geom.MulVec(m, geom.Point{1, 1, 1}, 0)
	assert.Equal(t, geom.Point{1, 1, 1}, dir)
}

// TestMulVec_Scale verifies a diagonal scale matrix.
func TestMulVec_Scale(t *testing.T) {
	var m geom.Mat4
	m[0], m[5], m[10], m[15] = 2, 3, 4, 1

	out := geom.MulVec(m, geom.Point{1, 1, 1}, 1)
	assert.Equal(t, geom.Point{2, 3, 4}, out)
}

// TestMulVecs_BatchUsesUnitW verifies the batch form treats every vector
// as a position.
func TestMulVecs_BatchUsesUnitW(t *testing.T) {
	m := translate(1, 0, 0)
	out := geom.MulVecs(m, []geom.Point{{0, 0, 0}, {1, 2}})
	assert.Equal(t, []geom.Point{{1, 0, 0}, {2, 2, 0}}, out)
}

// TestMulVecs_Empty verifies an empty batch stays empty.
func TestMulVecs_Empty(t *testing.T) {
	out := geom.MulVecs(geom.Identity(), nil)
	assert.Empty(t, out)
}
