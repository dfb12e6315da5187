package vizui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		if m.FilterOpen {
			return m.handleFilterKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.FilterOpen {
			return m, nil
		}
		return handleMouse(m, msg, m.canvasRect())
	}

	return m, nil
}

// handleKeys processes keyboard input outside the filter console.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Tool selection
	case "s":
		m = m.setTool(ToolInspect)
	case "a":
		m = m.setTool(ToolInsert)
	case "x":
		m = m.setTool(ToolRemove)
	case "r":
		m = m.setTool(ToolRange)
	case "n":
		m = m.setTool(ToolNearest)

	// Filter console
	case "f":
		return m.openFilter()

	// Undo
	case "u":
		if _, ok := m.Hist.Undo(); ok {
			m.Status = fmt.Sprintf("undid, back to %q", m.Hist.Label())
			m = m.refreshDerived()
		} else {
			m.Status = "nothing to undo"
		}

	// Delete the inspected site
	case "d", "delete", "backspace":
		if m.Selected != nil {
			if next, ok := m.Tree().Remove(*m.Selected); ok {
				m = m.push(next, "remove "+m.Selected.Label)
			}
		}

	// Drop all overlays, back to inspect
	case "esc", "escape":
		m.Selected = nil
		m.RangeBox = nil
		m.RangeHits = nil
		m.Probe = nil
		m.Found = nil
		m.Dragging = false
		m.Status = ""
		m.CurrentTool = ToolInspect
	}

	return m, nil
}

// setTool switches the interaction mode, abandoning any drag.
func (m Model) setTool(t Tool) Model {
	m.CurrentTool = t
	m.Dragging = false
	return m
}

// canvasRect computes the canvas region rectangle for coordinate transforms.
func (m Model) canvasRect() image.Rectangle {
	// Must match the layout in View
	topH := 1
	bottomH := 1
	rightW := panelWidth
	return image.Rect(0, topH, m.Width-rightW, m.Height-bottomH)
}
