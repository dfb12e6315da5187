// Package termplot renders 2D world-coordinate scenes into a grid of
// styled terminal cells.
//
// A Grid holds a rune and a StyleKey per cell; Render turns it into a
// styled string with one lipgloss call per run of equally styled cells.
// Proj maps world-space positions and boxes onto cell coordinates so
// callers can plot spatial data without doing their own scaling; the y
// axis flips during projection so that world north points up on screen.
//
// All runes are assumed single-width. Double-width characters will
// misalign columns.
package termplot

// StyleKey identifies a visual style. The mapping from StyleKey to a
// concrete lipgloss.Style is supplied at render time, so grids stay
// decoupled from color schemes.
type StyleKey int

// Cell is a single styled character.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Grid is a W×H canvas of styled cells, stored row-major in one
// allocation.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid returns a w×h grid filled with spaces in the given style.
// Negative dimensions are treated as zero.
func NewGrid(w, h int, fill StyleKey) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{W: w, H: h, cells: make([]Cell, w*h)}
	g.Fill(fill)
	return g
}

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y). Out-of-bounds reads yield a zero Cell.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.cells[y*g.W+x]
}

// Set writes one character at (x, y). Out-of-bounds writes are
// silently dropped, so callers may draw shapes that overhang the grid.
func (g *Grid) Set(x, y int, ch rune, style StyleKey) {
	if g.InBounds(x, y) {
		g.cells[y*g.W+x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s starting at (x, y), one cell per rune. Runes that
// fall outside the grid are dropped.
func (g *Grid) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		g.Set(x+i, y, ch, style)
		i++
	}
}

// Fill resets every cell to a space in the given style.
func (g *Grid) Fill(style StyleKey) {
	for i := range g.cells {
		g.cells[i] = Cell{Ch: ' ', Style: style}
	}
}
