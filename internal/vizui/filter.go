package vizui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/quadkit/internal/filterexpr"
)

// openFilter opens the filter console primed with the last expression.
func (m Model) openFilter() (tea.Model, tea.Cmd) {
	m.FilterOpen = true
	m.FilterErr = ""

	m.FilterInput = textinput.New()
	m.FilterInput.Prompt = "» "
	m.FilterInput.Placeholder = `x > 50 && label.startsWith("s")`
	m.FilterInput.CharLimit = 120
	m.FilterInput.SetValue(m.FilterSrc)

	cmd := m.FilterInput.Focus()
	return m, cmd
}

// handleFilterKeys processes keys while the console is open.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.FilterOpen = false
		return m, nil

	case "enter":
		return m.applyFilter(strings.TrimSpace(m.FilterInput.Value()))

	default:
		var cmd tea.Cmd
		m.FilterInput, cmd = m.FilterInput.Update(msg)
		return m, cmd
	}
}

// applyFilter compiles src and pushes the filtered version. A compile
// error keeps the console open for another try; an eval error drops the
// failing site and surfaces the first message in the panel.
func (m Model) applyFilter(src string) (tea.Model, tea.Cmd) {
	if src == "" {
		m.FilterOpen = false
		return m, nil
	}

	pred, err := filterexpr.Compile(src)
	if err != nil {
		m.FilterErr = err.Error()
		return m, nil
	}

	t := m.Tree()
	var evalErr error
	next := t.Filter(func(s Site) bool {
		keep, err := pred.Eval(s.X, s.Y, s.Label)
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}
			return false
		}
		return keep
	})

	m.FilterOpen = false
	m.FilterSrc = src
	m.FilterErr = ""
	if evalErr != nil {
		m.FilterErr = evalErr.Error()
	}

	if next == t {
		m.Status = fmt.Sprintf("filter kept all %d sites", t.Len())
		return m, nil
	}
	m = m.push(next, fmt.Sprintf("filter %q (%d → %d)", src, t.Len(), next.Len()))
	return m, nil
}

// buildFilterModalLayer renders the filter console as a centered overlay.
func buildFilterModalLayer(m Model, screenW, screenH int) *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().
		Foreground(c("#00ffc8")).
		Background(c("#0a1510")).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(c("#336655")).
		Background(c("#0a1510")).
		Italic(true)

	errStyle := lipgloss.NewStyle().
		Foreground(errColor).
		Background(c("#0a1510"))

	lines := []string{
		titleStyle.Render("  🔍 FILTER — keep sites where"),
		"",
		"  " + m.FilterInput.View(),
		"",
		hintStyle.Render("  x, y, label bound; dist(x1,y1,x2,y2) helper"),
		hintStyle.Render("  [enter] apply  [esc] cancel"),
	}
	if m.FilterErr != "" {
		lines = append(lines, "", errStyle.Render("  "+m.FilterErr))
	}

	content := strings.Join(lines, "\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c("#00d4a0")).
		Background(c("#0a1510")).
		Width(56).
		Padding(1, 2)

	return ModalLayer(content, screenW, screenH, boxStyle)
}
