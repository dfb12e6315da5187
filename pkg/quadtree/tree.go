// Package quadtree implements a persistent point quadtree over generic
// scalar coordinates.
//
// A Tree is an immutable value: Insert, Remove, Map, Filter and
// FilterMap leave the receiver untouched and return a new version that
// shares every unchanged node with the old one. Readers therefore never
// need locks, any number of versions can be held at once, and a single
// handle can be advanced atomically with Shared.
//
// Positions are bucketed into leaves of at most Capacity items. A full
// leaf splits into four quadrants; a position on a splitting boundary
// goes to the first quadrant that contains it, in SW, SE, NW, NE order,
// so placement never depends on insertion history. Leaves are not
// collapsed on removal: a version that drops items keeps the structure
// its ancestor built.
package quadtree

import (
	"errors"
	"fmt"

	"github.com/wesen/quadkit/pkg/geo"
)

var (
	// ErrCapacity is returned by New when the per-leaf capacity is not
	// at least one.
	ErrCapacity = errors.New("quadtree: capacity must be positive")

	// ErrOutOfDomain is returned when an item's position lies outside
	// the tree's domain box.
	ErrOutOfDomain = errors.New("quadtree: position outside domain")

	// ErrMovedItem is returned by FilterMap when a replacement item's
	// position leaves the leaf box of the item it replaces.
	ErrMovedItem = errors.New("quadtree: replacement moved out of its leaf")
)

// Item is the constraint on stored elements. Position fixes where the
// element lives inside the domain and Equal decides identity for Remove
// and Has. Two items may share a position without being equal.
type Item[T geo.Scalar, E any] interface {
	Position() geo.Point[T]
	Equal(E) bool
}

// Tree is one immutable version of a quadtree. The zero value is not
// usable; build trees with New and advance them through the methods
// that return a new *Tree.
type Tree[T geo.Scalar, E Item[T, E]] struct {
	root     *node[T, E]
	domain   geo.Box[T]
	capacity int
}

// node is a quadrant of the domain. Leaves hold items; internal nodes
// hold exactly four children covering their box. count caches the
// number of items in the subtree so Len costs nothing.
type node[T geo.Scalar, E Item[T, E]] struct {
	box   geo.Box[T]
	count int
	items []E
	kids  [4]*node[T, E]
}

// leaf reports whether n holds items directly. Children are created all
// four at once, so checking one slot is enough.
func (n *node[T, E]) leaf() bool {
	return n.kids[0] == nil
}

// childFor returns the index of the first child whose box contains p,
// in SW, SE, NW, NE order. Positions on a splitting boundary fall into
// the earliest matching quadrant, which keeps placement deterministic.
// Returns -1 when p lies outside n entirely.
func (n *node[T, E]) childFor(p geo.Point[T]) int {
	for i, k := range n.kids {
		if k.box.Contains(p) {
			return i
		}
	}
	return -1
}

// splittable reports whether halving b still shrinks it. Once the
// midpoint coincides with a corner the quadrants stop getting smaller,
// so the leaf is allowed to exceed capacity instead; this bounds the
// depth even when many items share one position.
func splittable[T geo.Scalar](b geo.Box[T]) bool {
	m := b.Midpoint()
	return m != b.Min && m != b.Max
}

// New returns an empty tree over the given domain. Items whose
// positions fall outside domain are rejected by Insert. capacity is the
// maximum number of items a leaf holds before it splits; it must be at
// least one or New fails with ErrCapacity.
func New[T geo.Scalar, E Item[T, E]](domain geo.Box[T], capacity int) (*Tree[T, E], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCapacity, capacity)
	}
	return &Tree[T, E]{
		root:     &node[T, E]{box: domain},
		domain:   domain,
		capacity: capacity,
	}, nil
}

// Len returns the number of stored items. It reads the root's cached
// count, so it is constant time.
func (t *Tree[T, E]) Len() int {
	return t.root.count
}

// Domain returns the box the tree covers.
func (t *Tree[T, E]) Domain() geo.Box[T] {
	return t.domain
}

// Capacity returns the per-leaf split threshold the tree was built with.
func (t *Tree[T, E]) Capacity() int {
	return t.capacity
}

// Insert returns a new version of the tree containing e. Only the nodes
// on the path from the root to e's leaf are copied; everything else is
// shared with the receiver. Duplicates are not detected: inserting an
// item twice stores it twice.
//
// If e's position lies outside the domain, Insert returns nil and an
// error wrapping ErrOutOfDomain, and the receiver is unchanged.
func (t *Tree[T, E]) Insert(e E) (*Tree[T, E], error) {
	p := e.Position()
	if !t.domain.Contains(p) {
		return nil, fmt.Errorf("%w: %v not in %v", ErrOutOfDomain, p, t.domain)
	}
	nt := *t
	nt.root = t.root.insert(e, p, t.capacity)
	return &nt, nil
}

// Load returns a new version with every item in es inserted, in order.
// It fails on the first out-of-domain item and returns nil; the
// receiver is usable either way.
func (t *Tree[T, E]) Load(es []E) (*Tree[T, E], error) {
	nt := t
	for _, e := range es {
		next, err := nt.Insert(e)
		if err != nil {
			return nil, err
		}
		nt = next
	}
	return nt, nil
}

// insert returns a copy of the subtree rooted at n with e added. n is
// never mutated; p must lie inside n.box.
func (n *node[T, E]) insert(e E, p geo.Point[T], capacity int) *node[T, E] {
	if n.leaf() {
		if len(n.items) >= capacity && splittable(n.box) {
			return n.split().insert(e, p, capacity)
		}
		nn := &node[T, E]{box: n.box, count: n.count + 1}
		nn.items = make([]E, 0, len(n.items)+1)
		nn.items = append(nn.items, n.items...)
		nn.items = append(nn.items, e)
		return nn
	}
	nn := &node[T, E]{box: n.box, count: n.count + 1, kids: n.kids}
	q := n.childFor(p)
	nn.kids[q] = n.kids[q].insert(e, p, capacity)
	return nn
}

// split turns a full leaf into an internal node, redistributing its
// items into the first quadrant containing each position. The returned
// node is fresh, so it may be filled in place.
func (n *node[T, E]) split() *node[T, E] {
	quads := n.box.Split()
	nn := &node[T, E]{box: n.box, count: n.count}
	for i := range nn.kids {
		nn.kids[i] = &node[T, E]{box: quads[i]}
	}
	for _, e := range n.items {
		k := nn.kids[nn.childFor(e.Position())]
		k.items = append(k.items, e)
		k.count++
	}
	return nn
}

// Remove returns a version of the tree without the first stored item
// equal to e, plus whether such an item was found. When nothing
// matches, the receiver itself is returned. Removal never collapses
// nodes: a leaf left empty stays a leaf and split quadrants stay split.
func (t *Tree[T, E]) Remove(e E) (*Tree[T, E], bool) {
	nr, ok := t.root.remove(e, e.Position())
	if !ok {
		return t, false
	}
	nt := *t
	nt.root = nr
	return &nt, true
}

// remove descends the placement path for p and drops the first item
// equal to e. It returns the rebuilt subtree and whether a match was
// found; on a miss the original n may be discarded by the caller.
func (n *node[T, E]) remove(e E, p geo.Point[T]) (*node[T, E], bool) {
	if n.leaf() {
		for i, it := range n.items {
			if !it.Equal(e) {
				continue
			}
			nn := &node[T, E]{box: n.box, count: n.count - 1}
			if len(n.items) > 1 {
				nn.items = make([]E, 0, len(n.items)-1)
				nn.items = append(nn.items, n.items[:i]...)
				nn.items = append(nn.items, n.items[i+1:]...)
			}
			return nn, true
		}
		return nil, false
	}
	q := n.childFor(p)
	if q < 0 {
		return nil, false
	}
	nk, ok := n.kids[q].remove(e, p)
	if !ok {
		return nil, false
	}
	nn := &node[T, E]{box: n.box, count: n.count - 1, kids: n.kids}
	nn.kids[q] = nk
	return nn, true
}
