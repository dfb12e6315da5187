package quadtree

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/quadkit/pkg/geo"
)

// ── Stats ──

func TestStatsEmpty(t *testing.T) {
	tr := mustTree(t, 4)
	assert.Equal(t, Stats{Items: 0, Leaves: 1, Internal: 0, MaxDepth: 0, MaxLeaf: 0}, tr.Stats())
}

func TestStatsAfterOneSplit(t *testing.T) {
	tr := mustLoad(t, mustTree(t, 1), []site{at(10, 10), at(90, 90)})
	st := tr.Stats()
	assert.Equal(t, 2, st.Items)
	assert.Equal(t, 4, st.Leaves)
	assert.Equal(t, 1, st.Internal)
	assert.Equal(t, 1, st.MaxDepth)
	assert.Equal(t, 1, st.MaxLeaf)
}

func TestStatsMatchesWalk(t *testing.T) {
	rng := rand.New(rand.NewPCG(71, 71))
	tr := mustLoad(t, mustTree(t, 4), randSites(rng, 300, 0, 100))
	st := tr.Stats()

	leaves, internal, maxDepth := 0, 0, 0
	tr.Walk(func(_ geo.Box[float64], depth int, leaf bool) bool {
		if leaf {
			leaves++
		} else {
			internal++
		}
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	assert.Equal(t, st.Leaves, leaves)
	assert.Equal(t, st.Internal, internal)
	assert.Equal(t, st.MaxDepth, maxDepth)
}

// ── Walk ──

func TestWalkRootFirst(t *testing.T) {
	tr := mustLoad(t, mustTree(t, 1), []site{at(10, 10), at(90, 90)})
	var boxes []geo.Box[float64]
	var depths []int
	tr.Walk(func(b geo.Box[float64], depth int, _ bool) bool {
		boxes = append(boxes, b)
		depths = append(depths, depth)
		return true
	})
	require.NotEmpty(t, boxes)
	assert.Equal(t, domain100, boxes[0])
	assert.Equal(t, 0, depths[0])
	for i := 1; i < len(depths); i++ {
		assert.LessOrEqual(t, depths[i], depths[i-1]+1, "children must follow their parent")
	}
}

func TestWalkQuadrantOrder(t *testing.T) {
	tr := mustLoad(t, mustTree(t, 1), []site{at(10, 10), at(90, 90)})
	var kids []geo.Box[float64]
	tr.Walk(func(b geo.Box[float64], depth int, _ bool) bool {
		if depth == 1 {
			kids = append(kids, b)
		}
		return true
	})
	require.Len(t, kids, 4)
	want := tr.Domain().Split()
	for i, b := range kids {
		assert.Equal(t, want[i], b, "child %d", i)
	}
}

func TestWalkEarlyStop(t *testing.T) {
	tr := mustLoad(t, mustTree(t, 1), gridSites(20))
	visits := 0
	tr.Walk(func(geo.Box[float64], int, bool) bool {
		visits++
		return false
	})
	assert.Equal(t, 1, visits)
}
