// Package layout - public entry point for the tidy-tree engine.
package layout

import (
	"fmt"
)

// Layout computes positions for every node of root.
//
// The pipeline is: validate options → flatten root into an arena →
// vertical placement → first walk (contour merging, preliminary x) →
// second walk (absolute x, delayed spacing) → third walk iff the minimum
// x is nonzero → export. Afterwards the leftmost node sits at x = 0, every
// non-root node sits at y = parent.y + parent.height + VerticalMargin,
// and sibling bounding boxes widened by HorizontalMargin never overlap.
//
// Layout is pure: identical inputs yield bit-identical outputs. It
// returns ErrBadMargin or ErrBadDimension for malformed input. Invariant
// violations inside the walks — impossible on conforming input — are
// recovered and reported as a descriptive error rather than a panic.
// Recursion depth equals tree depth; pathologically deep trees may
// exhaust the call stack.
//
// Complexity: O(n) time, O(n) memory.
func Layout(root InputTree, opts Options) (out OutputTree, err error) {
	if err = opts.Validate(); err != nil {
		return OutputTree{}, err
	}

	t, err := newLayoutTree(&root, opts)
	if err != nil {
		return OutputTree{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			out = OutputTree{}
			err = fmt.Errorf("layout: internal failure: %v", r)
		}
	}()

	t.setY(0, 0)
	t.firstWalk(0)
	if minX := t.secondWalk(0, 0); minX != 0 {
		t.thirdWalk(0, -minX)
	}

	return t.export(0), nil
}
