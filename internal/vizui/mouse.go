package vizui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/quadkit/pkg/geo"
	"github.com/wesen/quadkit/pkg/termplot"
)

// canvasProj maps the current domain onto the canvas rectangle.
func canvasProj(t *SiteTree, rect image.Rectangle) termplot.Proj {
	return termplot.NewProj(t.Domain(), rect.Dx(), rect.Dy())
}

// pickDistSq is the squared click tolerance in world units: sites
// within one and a half cells of the cursor count as hit.
func pickDistSq(pr termplot.Proj) float64 {
	cw := pr.World.Width() / float64(max(pr.W, 1))
	ch := pr.World.Height() / float64(max(pr.H, 1))
	r := 1.5 * max(cw, ch)
	return r * r
}

// handleMouse processes mouse events and returns the updated model.
func handleMouse(m Model, msg tea.MouseMsg, canvasRect image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	if !image.Pt(mouse.X, mouse.Y).In(canvasRect) {
		// A drag released off-canvas still has to end
		if _, ok := msg.(tea.MouseReleaseMsg); ok && m.Dragging {
			m.Dragging = false
		}
		return m, nil
	}

	pr := canvasProj(m.Tree(), canvasRect)
	world := pr.WorldAt(mouse.X-canvasRect.Min.X, mouse.Y-canvasRect.Min.Y)
	m.WorldX = world.X
	m.WorldY = world.Y

	switch msg.(type) {
	case tea.MouseMotionMsg:
		if m.CurrentTool == ToolRange && m.Dragging {
			m = m.setRange(m.DragFrom, world)
		}
		if m.CurrentTool == ToolNearest {
			m = m.setProbe(world)
		}

	case tea.MouseClickMsg:
		if mouse.Button == tea.MouseLeft {
			m = handleLeftClick(m, world, pr)
		}

	case tea.MouseReleaseMsg:
		if m.Dragging {
			m.Dragging = false
			if m.RangeBox != nil {
				m.Status = fmt.Sprintf("query %v: %d hits", *m.RangeBox, len(m.RangeHits))
			}
		}
	}

	return m, nil
}

// handleLeftClick dispatches based on the current tool.
func handleLeftClick(m Model, world geo.Point[float64], pr termplot.Proj) Model {
	t := m.Tree()

	switch m.CurrentTool {
	case ToolInspect:
		if s, ok := t.Nearest(world); ok && s.Position().DistSq(world) <= pickDistSq(pr) {
			m.Selected = &s
			m.Status = "inspect " + s.Label
		} else {
			m.Selected = nil
		}

	case ToolInsert:
		s := NewSite(fmt.Sprintf("p%d", m.nextID), world.X, world.Y)
		next, err := t.Insert(s)
		if err != nil {
			m.Status = err.Error()
			return m
		}
		m.nextID++
		m = m.push(next, "insert "+s.Label)
		m.Selected = &s

	case ToolRemove:
		s, ok := t.Nearest(world)
		if !ok || s.Position().DistSq(world) > pickDistSq(pr) {
			m.Status = "nothing near click"
			return m
		}
		if next, removed := t.Remove(s); removed {
			m = m.push(next, "remove "+s.Label)
		}

	case ToolRange:
		m.Dragging = true
		m.DragFrom = world
		m = m.setRange(world, world)

	case ToolNearest:
		m = m.setProbe(world)
	}

	return m
}

// setRange recomputes the query box from two drag corners and its hits.
func (m Model) setRange(a, b geo.Point[float64]) Model {
	box := geo.MustBox(
		geo.Pt(min(a.X, b.X), min(a.Y, b.Y)),
		geo.Pt(max(a.X, b.X), max(a.Y, b.Y)),
	)
	m.RangeBox = &box
	m.RangeHits = m.Tree().Query(box)
	return m
}

// setProbe moves the nearest-probe and refreshes its result.
func (m Model) setProbe(p geo.Point[float64]) Model {
	m.Probe = &p
	if s, ok := m.Tree().Nearest(p); ok {
		m.Found = &s
	} else {
		m.Found = nil
	}
	return m
}
