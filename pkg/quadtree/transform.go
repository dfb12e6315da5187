package quadtree

import "fmt"

// Map returns a tree with fn applied to every stored item. The results
// are loaded into a fresh tree over the same domain and capacity, so a
// transform that moves positions re-buckets its items instead of
// stranding them in leaves whose boxes no longer contain them. A result
// outside the domain fails the whole call with ErrOutOfDomain and no
// new version is produced.
func (t *Tree[T, E]) Map(fn func(E) E) (*Tree[T, E], error) {
	nt := &Tree[T, E]{
		root:     &node[T, E]{box: t.domain},
		domain:   t.domain,
		capacity: t.capacity,
	}
	var err error
	t.root.walk(func(e E) bool {
		var next *Tree[T, E]
		next, err = nt.Insert(fn(e))
		if err != nil {
			return false
		}
		nt = next
		return true
	})
	if err != nil {
		return nil, err
	}
	return nt, nil
}

// Filter returns a version keeping only the items pred accepts. The
// split structure is preserved: leaves emptied by the filter stay in
// place, and subtrees where every item survives are shared with the
// receiver rather than copied. When nothing is dropped the receiver
// itself is returned. pred is called exactly once per item.
func (t *Tree[T, E]) Filter(pred func(E) bool) *Tree[T, E] {
	nr := t.root.filter(pred)
	if nr == t.root {
		return t
	}
	nt := *t
	nt.root = nr
	return &nt
}

// filter returns n with rejected items dropped, or n itself when every
// item survives.
func (n *node[T, E]) filter(pred func(E) bool) *node[T, E] {
	if n.count == 0 {
		return n
	}
	if n.leaf() {
		drop := -1
		for i, e := range n.items {
			if !pred(e) {
				drop = i
				break
			}
		}
		if drop < 0 {
			return n
		}
		nn := &node[T, E]{box: n.box}
		nn.items = append(nn.items, n.items[:drop]...)
		for _, e := range n.items[drop+1:] {
			if pred(e) {
				nn.items = append(nn.items, e)
			}
		}
		nn.count = len(nn.items)
		return nn
	}
	kids := n.kids
	changed := false
	count := 0
	for i, k := range n.kids {
		nk := k.filter(pred)
		if nk != k {
			kids[i] = nk
			changed = true
		}
		count += nk.count
	}
	if !changed {
		return n
	}
	return &node[T, E]{box: n.box, count: count, kids: kids}
}

// FilterMap returns a version where each stored item is replaced by
// fn's result, or dropped when fn's second return is false. The node
// structure is kept as is, so a replacement must stay inside the leaf
// box of the item it replaces; one that escapes fails the whole call
// with ErrMovedItem and no new version is produced. Use Map when the
// transform needs to move items between leaves.
func (t *Tree[T, E]) FilterMap(fn func(E) (E, bool)) (*Tree[T, E], error) {
	nr, err := t.root.filterMap(fn)
	if err != nil {
		return nil, err
	}
	if nr == t.root {
		return t, nil
	}
	nt := *t
	nt.root = nr
	return &nt, nil
}

func (n *node[T, E]) filterMap(fn func(E) (E, bool)) (*node[T, E], error) {
	if n.count == 0 {
		return n, nil
	}
	if n.leaf() {
		nn := &node[T, E]{box: n.box}
		for _, e := range n.items {
			ne, keep := fn(e)
			if !keep {
				continue
			}
			if p := ne.Position(); !n.box.Contains(p) {
				return nil, fmt.Errorf("%w: %v left leaf %v", ErrMovedItem, p, n.box)
			}
			nn.items = append(nn.items, ne)
		}
		nn.count = len(nn.items)
		return nn, nil
	}
	nn := &node[T, E]{box: n.box}
	for i, k := range n.kids {
		nk, err := k.filterMap(fn)
		if err != nil {
			return nil, err
		}
		nn.kids[i] = nk
		nn.count += nk.count
	}
	return nn, nil
}
