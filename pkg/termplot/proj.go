package termplot

import (
	"math"

	"github.com/wesen/quadkit/pkg/geo"
)

// Proj maps a world-space box onto a cell rectangle. World y grows
// north while cell rows grow downward, so projection flips the vertical
// axis: the world box's top edge lands on row 0.
type Proj struct {
	World geo.Box[float64]
	W, H  int
}

// NewProj returns a projection of world onto a w×h grid.
func NewProj(world geo.Box[float64], w, h int) Proj {
	return Proj{World: world, W: w, H: h}
}

// Cell returns the cell holding world point p. Points on the world
// box's max edges land on the last row or column rather than one past
// it, so the whole closed box is drawable; points outside the box map
// outside the grid, where Grid.Set drops them.
func (pr Proj) Cell(p geo.Point[float64]) (cx, cy int) {
	cx = scaleToCells(p.X, pr.World.Min.X, pr.World.Max.X, pr.W)
	cy = scaleToCells(p.Y, pr.World.Min.Y, pr.World.Max.Y, pr.H)
	return cx, pr.H - 1 - cy
}

// Box returns the cell rectangle covering world box b as inclusive
// corner coordinates with x0 <= x1 and y0 <= y1.
func (pr Proj) Box(b geo.Box[float64]) (x0, y0, x1, y1 int) {
	x0, y1 = pr.Cell(b.Min)
	x1, y0 = pr.Cell(b.Max)
	return x0, y0, x1, y1
}

// WorldAt returns the world point at the center of cell (cx, cy), the
// inverse of Cell up to cell granularity. Mouse handling uses it to
// turn a click into a world position.
func (pr Proj) WorldAt(cx, cy int) geo.Point[float64] {
	if pr.W <= 0 || pr.H <= 0 {
		return pr.World.Min
	}
	wx := pr.World.Min.X + (float64(cx)+0.5)/float64(pr.W)*pr.World.Width()
	wy := pr.World.Min.Y + (float64(pr.H-1-cy)+0.5)/float64(pr.H)*pr.World.Height()
	return geo.Pt(wx, wy)
}

// scaleToCells maps v in [lo,hi] onto cell indices [0,n), with v == hi
// landing on n-1. Out-of-range values produce out-of-range indices.
func scaleToCells(v, lo, hi float64, n int) int {
	if hi <= lo || n <= 0 {
		return 0
	}
	c := int(math.Floor((v - lo) / (hi - lo) * float64(n)))
	if c == n && v <= hi {
		return n - 1
	}
	return c
}
