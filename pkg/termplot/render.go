package termplot

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the grid into a styled string, rows joined with "\n".
// Consecutive cells sharing a StyleKey are merged and rendered with one
// Style.Render call per run, which keeps the escape-sequence overhead
// proportional to the number of style changes rather than the cell
// count. Cells whose key is missing from styles render as plain text.
// An empty grid renders as "".
func (g *Grid) Render(styles map[StyleKey]lipgloss.Style) string {
	if g.W == 0 || g.H == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(g.W*g.H + g.H)
	chunk := make([]rune, 0, g.W)

	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := g.cells[y*g.W : (y+1)*g.W]

		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].Style == row[start].Style {
				continue
			}
			chunk = chunk[:0]
			for _, c := range row[start:x] {
				chunk = append(chunk, c.Ch)
			}
			if s, ok := styles[row[start].Style]; ok {
				sb.WriteString(s.Render(string(chunk)))
			} else {
				sb.WriteString(string(chunk))
			}
			start = x
		}
	}

	return sb.String()
}
