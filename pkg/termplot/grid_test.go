package termplot

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

const (
	styBG StyleKey = iota
	styRed
	styBlue
)

func testStyles() map[StyleKey]lipgloss.Style {
	return map[StyleKey]lipgloss.Style{
		styBG:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		styRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		styBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("#0000ff")),
	}
}

// ── Grid ──

func TestNewGridFilled(t *testing.T) {
	g := NewGrid(10, 5, styBG)
	assert.Equal(t, 10, g.W)
	assert.Equal(t, 5, g.H)
	for y := range 5 {
		for x := range 10 {
			assert.Equal(t, Cell{Ch: ' ', Style: styBG}, g.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestNewGridClampsNegative(t *testing.T) {
	g := NewGrid(-5, -3, styBG)
	assert.Equal(t, 0, g.W)
	assert.Equal(t, 0, g.H)
	assert.Equal(t, "", g.Render(testStyles()))
}

func TestInBounds(t *testing.T) {
	g := NewGrid(10, 5, styBG)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {9, 4, true}, {5, 2, true},
		{-1, 0, false}, {0, -1, false}, {10, 0, false}, {0, 5, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, g.InBounds(tc.x, tc.y), "(%d,%d)", tc.x, tc.y)
	}
}

func TestSetAndAt(t *testing.T) {
	g := NewGrid(10, 5, styBG)
	g.Set(3, 2, 'X', styRed)
	assert.Equal(t, Cell{Ch: 'X', Style: styRed}, g.At(3, 2))
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	g := NewGrid(10, 5, styBG)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 5}, {100, 100}} {
		g.Set(p[0], p[1], 'X', styRed)
	}
	for y := range 5 {
		for x := range 10 {
			assert.Equal(t, ' ', g.At(x, y).Ch, "cell (%d,%d)", x, y)
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3, styRed)
	assert.Equal(t, Cell{}, g.At(-1, 0))
	assert.Equal(t, Cell{}, g.At(3, 0))
	assert.Equal(t, Cell{}, g.At(0, 3))
}

func TestSetString(t *testing.T) {
	g := NewGrid(10, 5, styBG)
	g.SetString(2, 1, "Hello", styBlue)
	for i, ch := range "Hello" {
		assert.Equal(t, Cell{Ch: ch, Style: styBlue}, g.At(2+i, 1))
	}
	assert.Equal(t, ' ', g.At(1, 1).Ch)
	assert.Equal(t, ' ', g.At(7, 1).Ch)
}

func TestSetStringAdvancesPerRune(t *testing.T) {
	g := NewGrid(5, 1, styBG)
	g.SetString(0, 0, "a·b", styRed)
	assert.Equal(t, 'a', g.At(0, 0).Ch)
	assert.Equal(t, '·', g.At(1, 0).Ch)
	assert.Equal(t, 'b', g.At(2, 0).Ch)
}

func TestSetStringClipsAtEdge(t *testing.T) {
	g := NewGrid(5, 1, styBG)
	g.SetString(3, 0, "Hello", styRed)
	assert.Equal(t, 'H', g.At(3, 0).Ch)
	assert.Equal(t, 'e', g.At(4, 0).Ch)
}

func TestFillResets(t *testing.T) {
	g := NewGrid(5, 3, styBG)
	g.Set(2, 1, 'X', styRed)
	g.Fill(styBlue)
	for y := range 3 {
		for x := range 5 {
			assert.Equal(t, Cell{Ch: ' ', Style: styBlue}, g.At(x, y))
		}
	}
}

// ── Render ──

func TestRenderLineCount(t *testing.T) {
	g := NewGrid(20, 5, styBG)
	lines := strings.Split(g.Render(testStyles()), "\n")
	assert.Len(t, lines, 5)
}

func TestRenderContent(t *testing.T) {
	g := NewGrid(10, 1, styBG)
	g.SetString(2, 0, "Hi", styRed)
	assert.Contains(t, g.Render(testStyles()), "Hi")
}

func TestRenderMergesRuns(t *testing.T) {
	uniform := NewGrid(50, 1, styBG).Render(testStyles())

	g := NewGrid(50, 1, styBG)
	for x := range 50 {
		if x%2 == 0 {
			g.Set(x, 0, '.', styRed)
		} else {
			g.Set(x, 0, '.', styBlue)
		}
	}
	alternating := g.Render(testStyles())

	assert.Less(t, len(uniform), len(alternating),
		"a single run must render with fewer escape sequences than fifty")
}

func TestRenderMissingStyleIsPlain(t *testing.T) {
	g := NewGrid(5, 1, StyleKey(99))
	g.SetString(0, 0, "plain", StyleKey(99))
	assert.Contains(t, g.Render(testStyles()), "plain")
}
