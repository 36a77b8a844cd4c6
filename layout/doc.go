// Package layout draws rooted trees whose nodes have arbitrary,
// non-uniform widths and heights.
//
// 🚀 What is layout?
//
//	An implementation of van der Ploeg's linear-time algorithm for
//	non-layered tidy trees (SP&E 44(12), 2014). Given a recursive input
//	tree of boxes it assigns every box an (x, y) position such that:
//
//	  • sibling subtrees never overlap horizontally
//	  • parents sit centered over their children
//	  • edges from parents to children never cross
//	  • the leftmost box sits exactly at x = 0
//
// ✨ Key mechanics:
//
//   - Arena storage    — the tree is flattened into a contiguous slice of
//     records addressed by small integer indices; contour threads and
//     extreme pointers are plain int fields, not aliasing pointers
//   - Contour threads  — leaves on the shorter side of a merged subtree
//     get a thread so contour traversal skips interior nodes entirely
//   - Delayed spacing  — shift/change accumulators spread corrective
//     spacing across intermediate siblings in O(1) per conflict
//
// ⚙️ Usage:
//
//	import "github.com/cetz-package/cetz/layout"
//
//	tree := layout.InputTree{
//	  Width: 1, Height: 1,
//	  Children: []layout.InputTree{{Width: 3, Height: 1}, {Width: 1, Height: 1}},
//	}
//	opts := layout.DefaultOptions()
//	opts.HorizontalMargin = 0.5
//	out, err := layout.Layout(tree, opts)
//
// Performance:
//
//   - Time:   O(n) in the number of nodes
//   - Memory: O(n) for the arena; recursion depth equals tree depth
//
// A layout is single-use: each call builds its own arena, runs the three
// walks, and drops everything on return. Layout is a pure function;
// identical inputs produce bit-identical outputs.
package layout
