package vizui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("#0a1510")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)
)

// toolNames maps Tool to display name.
var toolNames = map[Tool]string{
	ToolInspect: "INSPECT",
	ToolInsert:  "INSERT",
	ToolRemove:  "REMOVE",
	ToolRange:   "RANGE",
	ToolNearest: "NEAREST",
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	// Layout: toolbar(1) + footer(1) + panel(panelWidth) + canvas(remaining)
	layout := NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", panelWidth).
		Remaining("canvas").
		Build()

	canvasRegion := layout.Get("canvas")
	panelRegion := layout.Get("panel")

	// Layers
	var layers []*lipgloss.Layer

	// Background
	layers = append(layers,
		FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", 0),
		FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		FillLayer(layout.Get("footer"), ftStyle, "footer-bg", 0),
	)

	// Toolbar content
	tbContent := fmt.Sprintf(
		" QUADKIT  │  [s]inspect [a]dd [x]remove [r]ange [n]earest [f]ilter  │  %s  │  [u]ndo [q]uit",
		toolNames[m.CurrentTool],
	)
	layers = append(layers, ToolbarLayer(tbContent, m.Width, tbStyle))

	// Footer content
	ftContent := fmt.Sprintf(
		" Mouse: (%d,%d)  World: (%.1f,%.1f)  Sites: %d  Version: %d",
		m.MouseX, m.MouseY, m.WorldX, m.WorldY, m.Tree().Len(), m.Hist.Depth(),
	)
	if m.Status != "" {
		ftContent += "  │  " + m.Status
	}
	layers = append(layers, FooterLayer(ftContent, m.Width, m.Height-1, ftStyle))

	// Plot canvas (domain, subdivisions, sites, overlays at Z=0)
	layers = append(layers, buildPlotLayer(m, canvasRegion.Rect))

	// Side panel
	pr := panelRegion.Rect
	pw := pr.Dx()
	ph := pr.Dy()
	if pw > 0 && ph > 0 {
		treeH := 9
		helpH := 9
		resultH := ph - treeH - helpH
		if resultH < 3 {
			resultH = 3
		}

		// Separator
		layers = append(layers, buildSeparatorLayer(pr.Min.X-1, pr.Min.Y, ph))

		// Panel background
		layers = append(layers, FillLayer(panelRegion, bgStyle, "panel-bg", 0))

		layers = append(layers, buildTreePanelLayer(m, pr.Min.X+1, pr.Min.Y, pw-2, treeH))
		layers = append(layers, buildResultPanelLayer(m, pr.Min.X+1, pr.Min.Y+treeH, pw-2, resultH))
		layers = append(layers, buildHelpPanelLayer(pr.Min.X+1, pr.Min.Y+treeH+resultH, pw-2, helpH))
	}

	// Filter console overlay
	if m.FilterOpen {
		layers = append(layers, buildFilterModalLayer(m, m.Width, m.Height))
	}

	// Compose
	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}
