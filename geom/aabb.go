// Package geom - axis-aligned bounding box merging.
package geom

import (
	"fmt"
	"math"
)

// Merge expands a bounding box component-wise to cover pts. When init is
// nil the box is seeded from the first point; otherwise init seeds the
// result and is not mutated. Every point — and a provided seed's bounds —
// must have exactly three components (ErrNot3D). A nil init with no
// points returns ErrNoPoints.
//
// Complexity: O(len(pts)).
func Merge(init *AABB, pts []Point) (AABB, error) {
	var box AABB
	seeded := false

	if init != nil {
		if len(init.Low) != 3 || len(init.High) != 3 {
			return AABB{}, fmt.Errorf("Merge: initial box: %w", ErrNot3D)
		}
		box = AABB{Low: clonePoint(init.Low), High: clonePoint(init.High)}
		seeded = true
	}

	for k, p := range pts {
		if len(p) != 3 {
			return AABB{}, fmt.Errorf("Merge: point %d: %w", k, ErrNot3D)
		}
		if !seeded {
			box = AABB{Low: clonePoint(p), High: clonePoint(p)}
			seeded = true
			continue
		}
		for d := 0; d < 3; d++ {
			box.Low[d] = math.Min(box.Low[d], p[d])
			box.High[d] = math.Max(box.High[d], p[d])
		}
	}

	if !seeded {
		return AABB{}, ErrNoPoints
	}
	return box, nil
}
