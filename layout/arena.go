// Package layout - arena storage for the tidy-tree engine.
//
// The algorithm treats the tree as a graph whose contour threads create
// non-tree back-references. Aliasing pointers would make that awkward, so
// the tree lives in a contiguous slice of records addressed by small
// integer indices; threads and extremes are plain index fields.
package layout

import (
	"fmt"
)

// treeIndex addresses a node record inside the arena. The root is always
// index 0.
type treeIndex int

// none marks an absent optional index (no parent, no thread, no children).
const none treeIndex = -1

// nodeData is one arena record.
//
// prelim is the node's x relative to its parent before modifier
// propagation; modifier is the additive x-offset applied to the whole
// subtree on the way down. shift and change hold delayed corrective
// spacing distributed across intermediate siblings. The thread fields
// point through nodes with no real child on one side so that contour
// traversal costs O(1) per level. extremeLeft/extremeRight name the
// leftmost/rightmost leaf on the subtree's bottom contour, and
// modSumLeft/modSumRight cache the modifier sums along the paths down to
// those leaves.
type nodeData struct {
	width  float64
	height float64

	x float64
	y float64

	prelim   float64
	modifier float64
	shift    float64
	change   float64

	parent  treeIndex
	childLo treeIndex // children occupy [childLo, childHi); none for leaves
	childHi treeIndex

	leftThread  treeIndex
	rightThread treeIndex

	extremeLeft  treeIndex
	extremeRight treeIndex
	modSumLeft   float64
	modSumRight  float64
}

// layoutTree is the arena plus the margins active for this run.
type layoutTree struct {
	nodes []nodeData
	vm    float64 // vertical margin
	hm    float64 // horizontal margin
}

// buildFrame is one pending unit of work during arena construction.
type buildFrame struct {
	parent treeIndex
	own    treeIndex
	node   *InputTree
}

// newLayoutTree flattens the input tree into an arena by preorder index
// assignment: a work stack pops (parent, own, node) triples, records the
// node at its pre-assigned slot, and reserves a contiguous block at the
// current arena end for its children. Pop order is irrelevant because
// every slot is assigned before it is pushed; children always occupy
// contiguous indices in the input's left-to-right order.
//
// Construction fails only on malformed dimensions (ErrBadDimension).
//
// Complexity: O(n) time and space.
func newLayoutTree(root *InputTree, opts Options) (*layoutTree, error) {
	t := &layoutTree{
		nodes: make([]nodeData, 1),
		vm:    opts.VerticalMargin,
		hm:    opts.HorizontalMargin,
	}

	stack := []buildFrame{{parent: none, own: 0, node: root}}
	var f buildFrame
	for len(stack) > 0 {
		f, stack = stack[len(stack)-1], stack[:len(stack)-1]

		if !isFiniteNonNegative(f.node.Width) || !isFiniteNonNegative(f.node.Height) {
			return nil, fmt.Errorf("layout: node %d: %w", f.own, ErrBadDimension)
		}

		// Reserve a contiguous block for the children at the arena end.
		n := len(f.node.Children)
		childLo, childHi := none, none
		if n > 0 {
			childLo = treeIndex(len(t.nodes))
			childHi = childLo + treeIndex(n)
			t.nodes = append(t.nodes, make([]nodeData, n)...)
		}

		for k := range f.node.Children {
			stack = append(stack, buildFrame{
				parent: f.own,
				own:    childLo + treeIndex(k),
				node:   &f.node.Children[k],
			})
		}

		t.nodes[f.own] = nodeData{
			width:        f.node.Width,
			height:       f.node.Height,
			parent:       f.parent,
			childLo:      childLo,
			childHi:      childHi,
			leftThread:   none,
			rightThread:  none,
			extremeLeft:  none,
			extremeRight: none,
		}
	}

	return t, nil
}

// node returns the record at i for in-place mutation.
func (t *layoutTree) node(i treeIndex) *nodeData {
	return &t.nodes[i]
}

// childCount returns the number of children of i.
func (t *layoutTree) childCount(i treeIndex) int {
	n := t.node(i)
	if n.childLo == none {
		return 0
	}
	return int(n.childHi - n.childLo)
}

// nthChildID returns the arena index of the k-th child of i.
// Asking a leaf for a child is an invariant violation and panics with a
// descriptive message; Layout converts the panic into an error.
func (t *layoutTree) nthChildID(i treeIndex, k int) treeIndex {
	n := t.node(i)
	if n.childLo == none {
		panic(fmt.Sprintf("node %d has no children", i))
	}
	return n.childLo + treeIndex(k)
}

// extremeLeftOf returns the leftmost bottom-contour leaf of the subtree
// rooted at i, panicking if the extreme has not been set yet.
func (t *layoutTree) extremeLeftOf(i treeIndex) treeIndex {
	e := t.node(i).extremeLeft
	if e == none {
		panic(fmt.Sprintf("node %d has no left extreme", i))
	}
	return e
}

// extremeRightOf is the mirror of extremeLeftOf.
func (t *layoutTree) extremeRightOf(i treeIndex) treeIndex {
	e := t.node(i).extremeRight
	if e == none {
		panic(fmt.Sprintf("node %d has no right extreme", i))
	}
	return e
}

// leftContour advances one level down the left outline of the subtree at
// i: the first real child if there is one, else the left thread.
func (t *layoutTree) leftContour(i treeIndex) treeIndex {
	n := t.node(i)
	if n.childLo != none {
		return n.childLo
	}
	return n.leftThread
}

// rightContour is the mirror of leftContour.
func (t *layoutTree) rightContour(i treeIndex) treeIndex {
	n := t.node(i)
	if n.childLo != none {
		return n.childHi - 1
	}
	return n.rightThread
}

// bottom returns the y-coordinate below which the node at i no longer
// blocks other subtrees. The contour-advance condition depends on it, so
// y must be final (set_y) before the first walk runs.
func (t *layoutTree) bottom(i treeIndex) float64 {
	n := t.node(i)
	return n.y + n.height + t.vm
}

// effWidth returns the node's width expanded by the horizontal margin.
// All contour distance computations use effective widths.
func (t *layoutTree) effWidth(i treeIndex) float64 {
	return t.node(i).width + t.hm
}

// export mirrors the arena back into a recursive output tree, preorder,
// children in input order. Children is always non-nil so the encoded
// record carries an empty array rather than nil for leaves.
func (t *layoutTree) export(i treeIndex) OutputTree {
	n := t.node(i)
	out := OutputTree{
		X:        n.x,
		Y:        n.y,
		Width:    n.width,
		Height:   n.height,
		Children: make([]OutputTree, 0, t.childCount(i)),
	}
	for c := n.childLo; c < n.childHi; c++ {
		out.Children = append(out.Children, t.export(c))
	}
	return out
}
