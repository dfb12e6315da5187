package vizui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const panelWidth = 34

// panelBG is slightly lighter than the canvas so the split reads.
var panelBG = c("#101d16")

// Panel styles — all share the same background for consistency.
var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(panelBG)

	panelNameStyle = lipgloss.NewStyle().
			Foreground(c("#ddaa44")).
			Background(panelBG)

	panelValStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG)

	panelErrStyle = lipgloss.NewStyle().
			Foreground(errColor).
			Background(panelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(panelBG)

	// panelLineStyle wraps padding with consistent background.
	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads and renders a line with consistent background to the given width.
func padLine(s string, width int) string {
	vis := lipgloss.Width(s)
	pad := width - vis
	if pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// truncate cuts s to at most n cells, rune-safe, with an ellipsis.
func truncate(s string, n int) string {
	if n < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// kv renders one name/value panel line.
func kv(name, val string) string {
	return panelNameStyle.Render(fmt.Sprintf("  %-9s", name)) + panelValStyle.Render(val)
}

// finishPanel pads the section to its height and full width.
func finishPanel(lines []string, width, height int) string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return strings.Join(lines, "\n")
}

// buildTreePanelLayer renders the structure section.
func buildTreePanelLayer(m Model, x, y, width, height int) *lipgloss.Layer {
	t := m.Tree()
	st := t.Stats()

	lines := []string{
		panelTitleStyle.Render("📊 TREE"),
		panelDimStyle.Render(strings.Repeat("─", width-2)),
		kv("items", fmt.Sprintf("%d", st.Items)),
		kv("leaves", fmt.Sprintf("%d  (fullest %d)", st.Leaves, st.MaxLeaf)),
		kv("internal", fmt.Sprintf("%d  depth %d", st.Internal, st.MaxDepth)),
		kv("capacity", fmt.Sprintf("%d", t.Capacity())),
		kv("domain", t.Domain().String()),
		kv("version", fmt.Sprintf("%d  %s", m.Hist.Depth(), truncate(m.Hist.Label(), width-15))),
	}

	return lipgloss.NewLayer(finishPanel(lines, width, height)).
		X(x).Y(y).Z(1).ID("panel-tree")
}

// buildResultPanelLayer renders whatever the active tool produced.
func buildResultPanelLayer(m Model, x, y, width, height int) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render("🎯 RESULT"),
		panelDimStyle.Render(strings.Repeat("─", width-2)),
	}

	const maxHitLines = 6

	switch {
	case m.Selected != nil:
		s := *m.Selected
		lines = append(lines,
			kv("site", s.Label),
			kv("at", fmt.Sprintf("(%.1f, %.1f)", s.X, s.Y)),
			kv("id", s.ID.String()[:8]),
		)

	case m.RangeBox != nil:
		lines = append(lines,
			kv("box", m.RangeBox.String()),
			kv("hits", fmt.Sprintf("%d", len(m.RangeHits))),
		)
		for i, s := range m.RangeHits {
			if i == maxHitLines {
				lines = append(lines, panelDimStyle.Render(
					fmt.Sprintf("  … %d more", len(m.RangeHits)-maxHitLines)))
				break
			}
			lines = append(lines, panelTextStyle.Render(
				fmt.Sprintf("  %s (%.1f, %.1f)", s.Label, s.X, s.Y)))
		}

	case m.Probe != nil:
		lines = append(lines, kv("probe", fmt.Sprintf("(%.1f, %.1f)", m.Probe.X, m.Probe.Y)))
		if m.Found != nil {
			lines = append(lines,
				kv("nearest", m.Found.Label),
				kv("at", fmt.Sprintf("(%.1f, %.1f)", m.Found.X, m.Found.Y)),
				kv("dist", fmt.Sprintf("%.2f", m.Found.Position().Dist(*m.Probe))),
			)
		} else {
			lines = append(lines, panelDimStyle.Render("  (tree is empty)"))
		}

	default:
		lines = append(lines, panelDimStyle.Render("  (click the canvas)"))
	}

	if m.FilterSrc != "" {
		lines = append(lines, "", kv("filter", truncate(m.FilterSrc, width-13)))
	}
	if m.FilterErr != "" {
		lines = append(lines, panelErrStyle.Render("  "+truncate(m.FilterErr, width-4)))
	}

	return lipgloss.NewLayer(finishPanel(lines, width, height)).
		X(x).Y(y).Z(1).ID("panel-result")
}

// buildHelpPanelLayer renders the static help section.
func buildHelpPanelLayer(x, y, width, height int) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render("❓ HELP"),
		panelDimStyle.Render(strings.Repeat("─", width-2)),
		panelTextStyle.Render("  [s]inspect [a]dd [x]remove"),
		panelTextStyle.Render("  [r]ange: drag a box"),
		panelTextStyle.Render("  [n]earest: move the mouse"),
		panelTextStyle.Render("  [f]ilter console"),
		panelTextStyle.Render("  [u]ndo  [d]elete selected"),
		panelTextStyle.Render("  [esc] clear  [q]uit"),
	}

	return lipgloss.NewLayer(finishPanel(lines, width, height)).
		X(x).Y(y).Z(1).ID("panel-help")
}

// buildSeparatorLayer creates a vertical separator line.
func buildSeparatorLayer(x, y, height int) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = panelSepStyle.Render("│")
	}
	content := strings.Join(lines, "\n")
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("separator")
}
