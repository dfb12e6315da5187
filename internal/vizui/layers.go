package vizui

import (
	"image"

	"charm.land/lipgloss/v2"

	"github.com/wesen/quadkit/pkg/geo"
	"github.com/wesen/quadkit/pkg/termplot"
)

// termplot style keys for the canvas layer.
const (
	plotBG termplot.StyleKey = iota
	plotGrid
	plotLeaf
	plotDomain
	plotRange
	plotSite
	plotHit
	plotSel
	plotRay
	plotFound
)

// plotStyles maps canvas StyleKeys to lipgloss styles for rendering.
var plotStyles = map[termplot.StyleKey]lipgloss.Style{
	plotBG:     lipgloss.NewStyle().Foreground(c("#1a3a2a")).Background(colorBG),
	plotGrid:   lipgloss.NewStyle().Foreground(gridColor).Background(colorBG),
	plotLeaf:   lipgloss.NewStyle().Foreground(leafColor).Background(colorBG),
	plotDomain: lipgloss.NewStyle().Foreground(domainColor).Background(colorBG),
	plotRange:  lipgloss.NewStyle().Foreground(rangeColor).Background(colorBG),
	plotSite:   lipgloss.NewStyle().Foreground(siteColor).Background(colorBG),
	plotHit:    lipgloss.NewStyle().Foreground(hitColor).Background(colorBG).Bold(true),
	plotSel:    lipgloss.NewStyle().Foreground(selColor).Background(colorBG).Bold(true),
	plotRay:    lipgloss.NewStyle().Foreground(rayColor).Background(colorBG),
	plotFound:  lipgloss.NewStyle().Foreground(foundColor).Background(colorBG).Bold(true),
}

// buildPlotLayer renders the domain, the live leaf subdivisions and the
// tool overlays into a termplot grid and returns it as one background
// Layer at Z=0.
func buildPlotLayer(m Model, rect image.Rectangle) *lipgloss.Layer {
	w := rect.Dx()
	h := rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(rect.Min.X).Y(rect.Min.Y).Z(0).ID("plot")
	}

	t := m.Tree()
	pr := canvasProj(t, rect)
	g := termplot.NewGrid(w, h, plotBG)

	termplot.DrawDots(g, 6, 3, plotGrid)

	// Leaf boxes first, domain outline on top of their shared edges
	t.Walk(func(b geo.Box[float64], depth int, leaf bool) bool {
		if leaf {
			x0, y0, x1, y1 := pr.Box(b)
			termplot.DrawRect(g, x0, y0, x1, y1, plotLeaf)
		}
		return true
	})
	dx0, dy0, dx1, dy1 := pr.Box(t.Domain())
	termplot.DrawRect(g, dx0, dy0, dx1, dy1, plotDomain)

	if m.RangeBox != nil {
		rx0, ry0, rx1, ry1 := pr.Box(*m.RangeBox)
		termplot.DrawRect(g, rx0, ry0, rx1, ry1, plotRange)
	}

	// Markers over the structure
	for s := range t.All() {
		cx, cy := pr.Cell(s.Position())
		g.Set(cx, cy, '•', plotSite)
	}
	for _, s := range m.RangeHits {
		cx, cy := pr.Cell(s.Position())
		g.Set(cx, cy, '◆', plotHit)
	}
	if m.Probe != nil {
		px, py := pr.Cell(*m.Probe)
		if m.Found != nil {
			fx, fy := pr.Cell(m.Found.Position())
			termplot.DrawDashedLine(g, px, py, fx, fy, plotRay)
			g.Set(fx, fy, '★', plotFound)
		}
		g.Set(px, py, '+', plotRay)
	}
	if m.Selected != nil {
		cx, cy := pr.Cell(m.Selected.Position())
		g.Set(cx, cy, '◉', plotSel)
	}

	rendered := g.Render(plotStyles)
	return lipgloss.NewLayer(rendered).X(rect.Min.X).Y(rect.Min.Y).Z(0).ID("plot")
}
