// termplot-demo renders a sample quadtree plot to the terminal to
// visually verify that termplot + lipgloss styling works correctly.
//
// Run: go run ./cmd/termplot-demo/
package main

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"

	"github.com/wesen/quadkit/pkg/geo"
	"github.com/wesen/quadkit/pkg/quadtree"
	"github.com/wesen/quadkit/pkg/termplot"
)

// Style keys
const (
	BG     termplot.StyleKey = 0
	Grid   termplot.StyleKey = 1
	Leaf   termplot.StyleKey = 2
	Domain termplot.StyleKey = 3
	Range  termplot.StyleKey = 4
	Site   termplot.StyleKey = 5
	Hit    termplot.StyleKey = 6
	Ray    termplot.StyleKey = 7
)

type pt struct {
	X, Y float64
	ID   int
}

func (p pt) Position() geo.Point[float64] { return geo.Pt(p.X, p.Y) }
func (p pt) Equal(o pt) bool              { return p.ID == o.ID }

func main() {
	styles := map[termplot.StyleKey]lipgloss.Style{
		BG:     lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")).Background(lipgloss.Color("#0a0a0a")),
		Grid:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1a3a1a")).Background(lipgloss.Color("#0a0a0a")),
		Leaf:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1a5a42")).Background(lipgloss.Color("#0a0a0a")),
		Domain: lipgloss.NewStyle().Foreground(lipgloss.Color("#00d4a0")).Background(lipgloss.Color("#0a0a0a")),
		Range:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ddaa44")).Background(lipgloss.Color("#0a0a0a")),
		Site:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffcc")).Background(lipgloss.Color("#0a0a0a")).Bold(true),
		Hit:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")).Background(lipgloss.Color("#0a0a0a")).Bold(true),
		Ray:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6600")).Background(lipgloss.Color("#0a0a0a")).Bold(true),
	}

	domain := geo.MustBox(geo.Pt(0.0, 0.0), geo.Pt(100.0, 100.0))
	pts := []pt{
		{10, 10, 0}, {15, 12, 1}, {12, 18, 2}, {30, 25, 3},
		{70, 15, 4}, {75, 20, 5}, {80, 30, 6}, {85, 25, 7},
		{90, 40, 8}, {60, 35, 9}, {25, 70, 10}, {20, 80, 11},
		{40, 60, 12}, {80, 85, 13}, {90, 90, 14}, {55, 75, 15},
	}

	tr, err := quadtree.New[float64, pt](domain, 2)
	if err == nil {
		tr, err = tr.Load(pts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g := termplot.NewGrid(60, 25, BG)
	pr := termplot.NewProj(domain, 60, 25)

	// Grid dots, then structure: leaf boxes under the domain outline
	termplot.DrawDots(g, 4, 2, Grid)
	tr.Walk(func(b geo.Box[float64], depth int, leaf bool) bool {
		if leaf {
			x0, y0, x1, y1 := pr.Box(b)
			termplot.DrawRect(g, x0, y0, x1, y1, Leaf)
		}
		return true
	})
	dx0, dy0, dx1, dy1 := pr.Box(domain)
	termplot.DrawRect(g, dx0, dy0, dx1, dy1, Domain)

	// A range query over the east cluster
	q := geo.MustBox(geo.Pt(55.0, 10.0), geo.Pt(95.0, 45.0))
	qx0, qy0, qx1, qy1 := pr.Box(q)
	termplot.DrawRect(g, qx0, qy0, qx1, qy1, Range)

	for _, p := range pts {
		cx, cy := pr.Cell(p.Position())
		g.Set(cx, cy, '•', Site)
	}
	for _, p := range tr.Query(q) {
		cx, cy := pr.Cell(p.Position())
		g.Set(cx, cy, '◆', Hit)
	}

	// Nearest probe with an arrow ray to its result
	probe := geo.Pt(45.0, 45.0)
	if n, ok := tr.Nearest(probe); ok {
		px, py := pr.Cell(probe)
		nx, ny := pr.Cell(n.Position())
		termplot.DrawArrowLine(g, px, py, nx, ny, Ray, Ray)
		g.Set(px, py, '+', Ray)
	}

	fmt.Println()
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ffcc")).
		Bold(true).
		Underline(true)
	fmt.Println(title.Render("  termplot visual demo — quadtree subdivisions"))
	fmt.Println()

	fmt.Println(g.Render(styles))

	fmt.Println()
	legend := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	fmt.Println(legend.Render("  Leaf=dim boxes  Domain=green outline  ◆=range hits  Ray=nearest probe"))
	fmt.Println()
}
