// Package geom - cubic Bézier evaluation and extrema.
package geom

import (
	"math"
)

// coefficientDigits is how far derivative coefficients are rounded before
// the root case analysis; without it, float noise around zero promotes
// degenerate curves into the quadratic branch.
const coefficientDigits = 8

// CubicPoint evaluates the cubic Bézier with endpoints a, b and control
// points c1, c2 at parameter t, component-wise:
//
//	B(t) = (1−t)³·a + 3(1−t)²t·c1 + 3(1−t)t²·c2 + t³·b
//
// The result has max(len(a), len(b), len(c1), len(c2)) components;
// missing input components read as zero.
func CubicPoint(a, b, c1, c2 Point, t float64) Point {
	dims := max(len(a), len(b), len(c1), len(c2))
	u := 1 - t

	w0 := u * u * u
	w1 := 3 * u * u * t
	w2 := 3 * u * t * t
	w3 := t * t * t

	out := make(Point, dims)
	for d := 0; d < dims; d++ {
		out[d] = w0*component(a, d) + w1*component(c1, d) +
			w2*component(c2, d) + w3*component(b, d)
	}
	return out
}

// dimExtrema returns the parameters where one dimension of the curve
// reaches an extreme, by solving the derivative
//
//	B'(t) = f2·t² + f1·t + f0
//
// with coefficients rounded to coefficientDigits:
//
//	f0 = 3(c1 − a)
//	f1 = 6(c2 − 2c1 + a)
//	f2 = 3(b − 3c2 + 3c1 − a)
//
// Cases: no roots when f1 = f2 = 0; the linear root −f0/f1 when only
// f2 = 0; otherwise the quadratic roots — none for a negative
// discriminant, one for zero, two for positive. Returned parameters are
// unbounded; the caller filters to the admissible range.
func dimExtrema(a, b, c1, c2 float64) []float64 {
	f0 := roundTo(3*(c1-a), coefficientDigits)
	f1 := roundTo(6*(c2-2*c1+a), coefficientDigits)
	f2 := roundTo(3*(b-3*c2+3*c1-a), coefficientDigits)

	if f1 == 0 && f2 == 0 {
		return nil
	}
	if f2 == 0 {
		return []float64{-f0 / f1}
	}

	d := f1*f1 - 4*f0*f2
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-f1 / (2 * f2)}
	}

	sqrtD := math.Sqrt(d)
	return []float64{
		(-f1 - sqrtD) / (2 * f2),
		(-f1 + sqrtD) / (2 * f2),
	}
}

// CubicExtrema returns the curve points at every parameter strictly
// inside (0, 1) where some dimension of the cubic Bézier from s to e with
// controls c1, c2 reaches an extreme. The dimension count is
// max(len(s), len(e)). Endpoint parameters are excluded: the endpoints
// themselves already bound the curve there.
func CubicExtrema(s, e, c1, c2 Point) []Point {
	dims := max(len(s), len(e))

	var pts []Point
	for d := 0; d < dims; d++ {
		roots := dimExtrema(component(s, d), component(e, d), component(c1, d), component(c2, d))
		for _, t := range roots {
			if t > 0 && t < 1 {
				pts = append(pts, CubicPoint(s, e, c1, c2, t))
			}
		}
	}
	return pts
}
