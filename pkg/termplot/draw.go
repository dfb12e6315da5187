package termplot

import "image"

// Bresenham returns the cells on the segment from (x0,y0) to (x1,y1),
// both endpoints included. The loop is capped at dx+dy+2 iterations as
// a guard against a runaway error term.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	pts := make([]image.Point, 0, dx+dy+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// LineChar returns the box-drawing character for a segment with
// direction vector (dx, dy).
func LineChar(dx, dy int) rune {
	if dx == 0 {
		return '│'
	}
	if dy == 0 {
		return '─'
	}
	if (dx > 0) == (dy > 0) {
		return '\\'
	}
	return '/'
}

// ArrowChar returns an arrowhead pointing in the dominant direction of
// (dx, dy).
func ArrowChar(dx, dy int) rune {
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return '▼'
		}
		return '▲'
	}
	if dx > 0 {
		return '►'
	}
	return '◄'
}

// pointChar picks the rune for pts[i] from its local segment direction,
// looking ahead when possible and back at the final point.
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// DrawLine draws a solid line in cell coordinates.
func DrawLine(g *Grid, x0, y0, x1, y1 int, style StyleKey) {
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		g.Set(p.X, p.Y, pointChar(pts, i), style)
	}
}

// DrawDashedLine draws a line with every third cell skipped, for
// transient overlays that should read as previews.
func DrawDashedLine(g *Grid, x0, y0, x1, y1 int, style StyleKey) {
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		if i%3 != 2 {
			g.Set(p.X, p.Y, pointChar(pts, i), style)
		}
	}
}

// DrawArrowLine draws a line whose final cell is an arrowhead. Body and
// head take separate styles so the head can be highlighted.
func DrawArrowLine(g *Grid, x0, y0, x1, y1 int, lineStyle, headStyle StyleKey) {
	pts := Bresenham(x0, y0, x1, y1)
	if len(pts) == 0 {
		return
	}
	for i, p := range pts[:len(pts)-1] {
		g.Set(p.X, p.Y, pointChar(pts, i), lineStyle)
	}
	last := pts[len(pts)-1]
	var dx, dy int
	if len(pts) >= 2 {
		dx = last.X - pts[len(pts)-2].X
		dy = last.Y - pts[len(pts)-2].Y
	}
	g.Set(last.X, last.Y, ArrowChar(dx, dy), headStyle)
}

// DrawRect outlines the inclusive cell rectangle (x0,y0)-(x1,y1) with
// box-drawing characters. Interior cells are left untouched so outlines
// can stack over plotted data. Rectangles collapsed to a line or a
// single cell still render.
func DrawRect(g *Grid, x0, y0, x1, y1 int, style StyleKey) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	switch {
	case x0 == x1 && y0 == y1:
		g.Set(x0, y0, '·', style)
	case x0 == x1:
		for y := y0; y <= y1; y++ {
			g.Set(x0, y, '│', style)
		}
	case y0 == y1:
		for x := x0; x <= x1; x++ {
			g.Set(x, y0, '─', style)
		}
	default:
		for x := x0 + 1; x < x1; x++ {
			g.Set(x, y0, '─', style)
			g.Set(x, y1, '─', style)
		}
		for y := y0 + 1; y < y1; y++ {
			g.Set(x0, y, '│', style)
			g.Set(x1, y, '│', style)
		}
		g.Set(x0, y0, '┌', style)
		g.Set(x1, y0, '┐', style)
		g.Set(x0, y1, '└', style)
		g.Set(x1, y1, '┘', style)
	}
}

// DrawDots stamps a dot every sx columns and sy rows, a background
// reference pattern to draw data over.
func DrawDots(g *Grid, sx, sy int, style StyleKey) {
	if sx < 1 || sy < 1 {
		return
	}
	for y := 0; y < g.H; y += sy {
		for x := 0; x < g.W; x += sx {
			g.Set(x, y, '·', style)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
