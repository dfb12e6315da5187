package quadtree

import (
	"sync/atomic"

	"github.com/wesen/quadkit/pkg/geo"
)

// Shared is an atomically swappable handle to the current version of a
// tree. Readers Load a snapshot and use it without coordination, since
// versions never change once built; writers funnel through Update,
// which retries on contention.
type Shared[T geo.Scalar, E Item[T, E]] struct {
	cur atomic.Pointer[Tree[T, E]]
}

// NewShared returns a handle with t as the current version.
func NewShared[T geo.Scalar, E Item[T, E]](t *Tree[T, E]) *Shared[T, E] {
	s := &Shared[T, E]{}
	s.cur.Store(t)
	return s
}

// Load returns the current version. The caller may keep reading it for
// as long as it likes, regardless of later updates.
func (s *Shared[T, E]) Load() *Tree[T, E] {
	return s.cur.Load()
}

// Store publishes t as the current version, discarding whatever was
// there. Prefer Update when the new version derives from the old one.
func (s *Shared[T, E]) Store(t *Tree[T, E]) {
	s.cur.Store(t)
}

// Update applies fn to the current version and publishes the result.
// When another writer swaps the version in between, fn is retried on
// the fresh one, so fn must be pure: derive the new version from its
// argument and do nothing else. An error from fn aborts the update and
// leaves the handle unchanged.
func (s *Shared[T, E]) Update(fn func(*Tree[T, E]) (*Tree[T, E], error)) (*Tree[T, E], error) {
	for {
		old := s.cur.Load()
		nt, err := fn(old)
		if err != nil {
			return nil, err
		}
		if s.cur.CompareAndSwap(old, nt) {
			return nt, nil
		}
	}
}
