package quadtree

import (
	"iter"

	"github.com/wesen/quadkit/pkg/geo"
)

// walk calls fn for every item in the subtree, leaves in SW, SE, NW, NE
// order and leaf items in storage order. It stops when fn returns false
// and reports whether the traversal ran to completion. Empty subtrees
// are skipped via the cached count.
func (n *node[T, E]) walk(fn func(E) bool) bool {
	if n.count == 0 {
		return true
	}
	if n.leaf() {
		for _, e := range n.items {
			if !fn(e) {
				return false
			}
		}
		return true
	}
	for _, k := range n.kids {
		if !k.walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first stored item satisfying pred, scanning in walk
// order. ok is false when nothing matches.
func (t *Tree[T, E]) Find(pred func(E) bool) (e E, ok bool) {
	t.root.walk(func(it E) bool {
		if pred(it) {
			e, ok = it, true
			return false
		}
		return true
	})
	return e, ok
}

// Has reports whether some stored item equals e. Placement is
// deterministic, so only the single leaf on e's position path needs
// scanning.
func (t *Tree[T, E]) Has(e E) bool {
	p := e.Position()
	if !t.domain.Contains(p) {
		return false
	}
	n := t.root
	for !n.leaf() {
		q := n.childFor(p)
		if q < 0 {
			return false
		}
		n = n.kids[q]
	}
	for _, it := range n.items {
		if it.Equal(e) {
			return true
		}
	}
	return false
}

// Each calls fn for every stored item in walk order. Returning false
// from fn stops the iteration.
func (t *Tree[T, E]) Each(fn func(E) bool) {
	t.root.walk(fn)
}

// All returns an iterator over every stored item in walk order. The
// iterator reads one immutable version, so building new versions while
// ranging does not disturb it.
func (t *Tree[T, E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		t.root.walk(yield)
	}
}

// Query returns the items whose positions lie within b, bounds
// inclusive. Subtrees whose boxes do not intersect b are skipped
// entirely; items in leaves that straddle b's edge are filtered by
// containment, so the result holds exactly the items inside b.
func (t *Tree[T, E]) Query(b geo.Box[T]) []E {
	var out []E
	t.root.query(b, &out)
	return out
}

func (n *node[T, E]) query(b geo.Box[T], out *[]E) {
	if n.count == 0 || !n.box.Intersects(b) {
		return
	}
	if n.leaf() {
		for _, e := range n.items {
			if b.Contains(e.Position()) {
				*out = append(*out, e)
			}
		}
		return
	}
	for _, k := range n.kids {
		k.query(b, out)
	}
}

// Nearest returns the stored item closest to p by Euclidean distance,
// or ok == false when the tree is empty. p itself may lie anywhere,
// inside the domain or out.
//
// Quadrants are visited closest first and pruned against the best
// squared distance found so far. Ties keep the earlier find, so the
// result is determined by the tree's contents alone; an item exactly at
// p is at distance zero and always wins.
func (t *Tree[T, E]) Nearest(p geo.Point[T]) (e E, ok bool) {
	var st nearest[T, E]
	t.root.nearest(p, &st)
	return st.best, st.found
}

// nearest carries the running best candidate through the search.
type nearest[T geo.Scalar, E any] struct {
	best  E
	dist  T
	found bool
}

func (n *node[T, E]) nearest(p geo.Point[T], st *nearest[T, E]) {
	if n.count == 0 {
		return
	}
	if st.found && n.box.DistSq(p) > st.dist {
		return
	}
	if n.leaf() {
		for _, it := range n.items {
			if d := it.Position().DistSq(p); !st.found || d < st.dist {
				st.best, st.dist, st.found = it, d, true
			}
		}
		return
	}

	// Order the quadrants by box distance so the likeliest child
	// tightens the bound before its siblings are considered.
	var order [4]int
	var dist [4]T
	for i, k := range n.kids {
		order[i] = i
		dist[i] = k.box.DistSq(p)
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && dist[order[j]] < dist[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	for _, q := range order {
		if st.found && dist[q] > st.dist {
			break
		}
		n.kids[q].nearest(p, st)
	}
}
