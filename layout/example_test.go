package layout_test

import (
	"fmt"

	"github.com/cetz-package/cetz/layout"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleLayout
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A unit root with a wide first child and a narrow second child.
//	The wide child is centered at x = 0 and spans [-1.5, 1.5]; the narrow
//	child is pushed right until the boxes are adjacent; the root centers
//	itself over the combined span.
//
// Options:
//   - VerticalMargin = 0   (children touch the root's bottom edge)
//   - HorizontalMargin = 0 (boxes may touch but never overlap)
//
// Complexity: O(n) time, O(n) memory
func ExampleLayout() {
	tree := layout.InputTree{
		Width: 1, Height: 1,
		Children: []layout.InputTree{
			{Width: 3, Height: 1},
			{Width: 1, Height: 1},
		},
	}

	out, err := layout.Layout(tree, layout.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=(%.1f, %.1f)\n", out.X, out.Y)
	for _, c := range out.Children {
		fmt.Printf("child=(%.1f, %.1f) %vx%v\n", c.X, c.Y, c.Width, c.Height)
	}
	// Output:
	// root=(0.5, 0.0)
	// child=(0.0, 1.0) 3x1
	// child=(2.0, 1.0) 1x1
}
