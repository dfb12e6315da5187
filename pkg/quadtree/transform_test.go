package quadtree

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/quadkit/pkg/geo"
)

func diagonalTree(t *testing.T, n int) *Tree[float64, site] {
	t.Helper()
	dom := geo.MustBox(geo.Pt(0.0, 0.0), geo.Pt(float64(n), float64(n)))
	tr, err := New[float64, site](dom, 8)
	require.NoError(t, err)
	return mustLoad(t, tr, gridSites(n))
}

// ── Map ──

func TestMapShiftsWholeGrid(t *testing.T) {
	tr := diagonalTree(t, 1000)

	nt, err := tr.Map(func(s site) site {
		s.X++
		s.Y++
		return s
	})
	require.NoError(t, err)
	assert.Equal(t, 1000, nt.Len())
	assert.True(t, nt.Has(at(1000, 1000)))
	assert.False(t, nt.Has(at(0, 0)))
	nt.Each(func(s site) bool {
		assert.Equal(t, s.X, s.Y)
		assert.GreaterOrEqual(t, s.X, 1.0)
		return true
	})

	assert.Equal(t, 1000, tr.Len())
	assert.True(t, tr.Has(at(0, 0)), "the source version is untouched")
}

func TestMapRebuckets(t *testing.T) {
	rng := rand.New(rand.NewPCG(51, 51))
	tr := mustLoad(t, mustTree(t, 1), randSites(rng, 200, 0, 100))

	nt, err := tr.Map(func(s site) site {
		s.X /= 10
		s.Y /= 10
		return s
	})
	require.NoError(t, err)
	got := nt.Query(geo.MustBox(geo.Pt(0.0, 0.0), geo.Pt(10.0, 10.0)))
	assert.Len(t, got, 200, "moved items must be findable at their new positions")
}

func TestMapOutOfDomainFails(t *testing.T) {
	tr := mustLoad(t, mustTree(t, 4), []site{at(10, 10), at(100, 100)})
	nt, err := tr.Map(func(s site) site {
		s.X++
		return s
	})
	assert.ErrorIs(t, err, ErrOutOfDomain)
	assert.Nil(t, nt)
	assert.Equal(t, 2, tr.Len())
}

func TestMapEmptyNeverCallsFn(t *testing.T) {
	tr := mustTree(t, 4)
	nt, err := tr.Map(func(s site) site {
		t.Fatal("fn must not run on an empty tree")
		return s
	})
	require.NoError(t, err)
	assert.Equal(t, 0, nt.Len())
}

// ── Filter ──

func TestFilterEvens(t *testing.T) {
	tr := diagonalTree(t, 1000)

	nt := tr.Filter(func(s site) bool { return int(s.X)%2 == 0 })
	assert.Equal(t, 500, nt.Len())
	nt.Each(func(s site) bool {
		assert.Zero(t, int(s.X)%2)
		return true
	})
	assert.Equal(t, 1000, tr.Len())
}

func TestFilterKeepAllReturnsReceiver(t *testing.T) {
	tr := mustLoad(t, mustTree(t, 2), gridSites(50))
	nt := tr.Filter(func(site) bool { return true })
	assert.Same(t, tr, nt)
}

func TestFilterDropAllKeepsStructure(t *testing.T) {
	rng := rand.New(rand.NewPCG(53, 53))
	tr := mustLoad(t, mustTree(t, 1), randSites(rng, 100, 0, 100))
	before := tr.Stats()

	nt := tr.Filter(func(site) bool { return false })
	assert.Equal(t, 0, nt.Len())
	after := nt.Stats()
	assert.Equal(t, before.Leaves, after.Leaves, "emptied leaves stay in place")
	assert.Equal(t, before.Internal, after.Internal)
}

func TestFilterCallsPredOncePerItem(t *testing.T) {
	rng := rand.New(rand.NewPCG(59, 59))
	tr := mustLoad(t, mustTree(t, 4), randSites(rng, 128, 0, 100))

	calls := map[string]int{}
	tr.Filter(func(s site) bool {
		calls[s.Label]++
		return len(s.Label) > 2 // drops s0 through s9
	})
	assert.Len(t, calls, 128)
	for label, n := range calls {
		assert.Equal(t, 1, n, "label %s", label)
	}
}

func TestFilterSharesSurvivingSubtrees(t *testing.T) {
	tr := mustLoad(t, mustTree(t, 1), []site{at(10, 10), at(90, 90), at(90, 10), at(10, 90)})
	nt := tr.Filter(func(s site) bool { return s.X < 50 })
	require.NotSame(t, tr, nt)
	sw, se := int(geo.QuadSW), int(geo.QuadSE)
	assert.Same(t, tr.root.kids[sw], nt.root.kids[sw], "fully surviving quadrant is shared")
	assert.NotSame(t, tr.root.kids[se], nt.root.kids[se], "filtered quadrant is rebuilt")
}

// ── FilterMap ──

func TestFilterMapRelabels(t *testing.T) {
	rng := rand.New(rand.NewPCG(61, 61))
	tr := mustLoad(t, mustTree(t, 2), randSites(rng, 64, 0, 100))

	nt, err := tr.FilterMap(func(s site) (site, bool) {
		s.Label = "v2:" + s.Label
		return s, true
	})
	require.NoError(t, err)
	assert.Equal(t, 64, nt.Len())
	nt.Each(func(s site) bool {
		assert.True(t, strings.HasPrefix(s.Label, "v2:"))
		return true
	})
	tr.Each(func(s site) bool {
		assert.False(t, strings.HasPrefix(s.Label, "v2:"))
		return true
	})
}

func TestFilterMapDrops(t *testing.T) {
	tr := diagonalTree(t, 100)
	nt, err := tr.FilterMap(func(s site) (site, bool) {
		return s, int(s.X)%2 == 0
	})
	require.NoError(t, err)
	assert.Equal(t, 50, nt.Len())
}

func TestFilterMapMoveWithinLeaf(t *testing.T) {
	// At this capacity the root never splits, so the single leaf spans
	// the whole domain and any in-domain move is legal.
	tr := mustLoad(t, mustTree(t, 16), gridSites(10))
	nt, err := tr.FilterMap(func(s site) (site, bool) {
		s.X = 99 - s.X
		return s, true
	})
	require.NoError(t, err)
	assert.True(t, nt.Has(at(99, 0)))
	assert.False(t, nt.Has(at(0, 0)))
}

func TestFilterMapMovedItemFails(t *testing.T) {
	tr := mustLoad(t, mustTree(t, 1), []site{at(25, 25), at(75, 75)})
	nt, err := tr.FilterMap(func(s site) (site, bool) {
		if s.X < 50 {
			s.X += 60
		}
		return s, true
	})
	assert.ErrorIs(t, err, ErrMovedItem)
	assert.Nil(t, nt)
	assert.Equal(t, 2, tr.Len())
}

func TestFilterMapEmptyReturnsReceiver(t *testing.T) {
	tr := mustTree(t, 4)
	nt, err := tr.FilterMap(func(s site) (site, bool) { return s, true })
	require.NoError(t, err)
	assert.Same(t, tr, nt)
}
