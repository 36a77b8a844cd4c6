// Package geom provides the Bézier and affine geometry primitives of the
// kernel: cubic curve evaluation and extrema, axis-aligned bounding box
// merging, and 4×4 matrix by vector transforms.
//
// 🚀 What is geom?
//
//	The routine numerical collaborators next to the layout engine:
//
//	  • CubicPoint / CubicExtrema — evaluate a cubic Bézier and find the
//	    interior points where a component reaches an extreme, by solving
//	    the derivative's quadratic per dimension
//	  • Merge — expand an axis-aligned bounding box over a point cloud
//	  • MulVec / MulVecs — row-major 4×4 affine transforms of 3-vectors
//
// ✨ Numerical conventions:
//
//   - Derivative coefficients are rounded to 8 decimal digits before the
//     case analysis, so nearly-degenerate curves take the lower-degree
//     branch instead of producing wild roots
//   - Extrema parameters are admitted strictly inside (0, 1); endpoint
//     values are already covered by the curve's endpoints
//   - Points are plain []float64; missing components read as zero
//
// ⚙️ Usage:
//
//	import "github.com/cetz-package/cetz/geom"
//
//	pts := geom.CubicExtrema(
//	  geom.Point{0, 0}, geom.Point{1, 0},
//	  geom.Point{0, 1}, geom.Point{1, 1},
//	)
//	box, err := geom.Merge(nil, pts3d)
//
// All functions are pure and allocation is bounded by the output size.
package geom
