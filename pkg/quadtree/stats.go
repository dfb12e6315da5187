package quadtree

import "github.com/wesen/quadkit/pkg/geo"

// Stats describes the shape of one tree version.
type Stats struct {
	Items    int // stored items, same as Len
	Leaves   int // leaf nodes, empty ones included
	Internal int // internal nodes
	MaxDepth int // deepest node, root at depth 0
	MaxLeaf  int // most items held by a single leaf
}

// Stats walks the whole version and tallies its shape. It is meant for
// inspection panels and test assertions, not hot paths.
func (t *Tree[T, E]) Stats() Stats {
	st := Stats{Items: t.root.count}
	t.root.tally(0, &st)
	return st
}

func (n *node[T, E]) tally(depth int, st *Stats) {
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}
	if n.leaf() {
		st.Leaves++
		if len(n.items) > st.MaxLeaf {
			st.MaxLeaf = len(n.items)
		}
		return
	}
	st.Internal++
	for _, k := range n.kids {
		k.tally(depth+1, st)
	}
}

// Walk visits every node of the tree, parents before children and
// children in SW, SE, NW, NE order. fn receives the node's box, its
// depth (the root is at zero) and whether it is a leaf; returning false
// stops the walk. Renderers use this to draw the subdivision grid.
func (t *Tree[T, E]) Walk(fn func(box geo.Box[T], depth int, leaf bool) bool) {
	t.root.walkNodes(0, fn)
}

func (n *node[T, E]) walkNodes(depth int, fn func(geo.Box[T], int, bool) bool) bool {
	if !fn(n.box, depth, n.leaf()) {
		return false
	}
	if n.leaf() {
		return true
	}
	for _, k := range n.kids {
		if !k.walkNodes(depth+1, fn) {
			return false
		}
	}
	return true
}
