package vizui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/quadkit/pkg/geo"
	"github.com/wesen/quadkit/pkg/quadtree"
)

// Tool is the current interaction mode.
type Tool int

const (
	ToolInspect Tool = iota
	ToolInsert
	ToolRemove
	ToolRange
	ToolNearest
)

const defaultCapacity = 4

// Model is the main application state. The tree itself lives in Hist;
// everything else here is view and interaction state derived from the
// current version.
type Model struct {
	Width, Height  int
	MouseX, MouseY int
	WorldX, WorldY float64 // cursor in domain coordinates

	Hist        *History
	CurrentTool Tool

	// Inspect state
	Selected *Site

	// Range drag state
	Dragging  bool
	DragFrom  geo.Point[float64]
	RangeBox  *geo.Box[float64]
	RangeHits []Site

	// Nearest state
	Probe *geo.Point[float64]
	Found *Site

	// Filter console state
	FilterOpen  bool
	FilterInput textinput.Model
	FilterSrc   string // last applied expression
	FilterErr   string // last compile/eval failure, shown in the panel

	Status string // one-line message in the footer

	nextID int // suffix for labels minted by the insert tool
}

// NewModel creates the initial model with the demo site cloud loaded.
func NewModel() (Model, error) {
	domain := geo.MustBox(geo.Pt(0.0, 0.0), geo.Pt(100.0, 100.0))
	tr, err := quadtree.New[float64, Site](domain, defaultCapacity)
	if err != nil {
		return Model{}, err
	}
	tr, err = tr.Load(seedSites(domain))
	if err != nil {
		return Model{}, err
	}
	return Model{
		Hist:   NewHistory(tr),
		Status: "click to inspect",
	}, nil
}

// Tree returns the current version.
func (m Model) Tree() *SiteTree {
	return m.Hist.Current()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// push records a new version and refreshes everything derived from it.
func (m Model) push(t *SiteTree, op string) Model {
	m.Hist.Push(t, op)
	m.Status = op
	return m.refreshDerived()
}

// refreshDerived recomputes overlays against the current version. Run
// after every version change (push or undo) so highlights never show
// stale contents.
func (m Model) refreshDerived() Model {
	t := m.Tree()
	if m.RangeBox != nil {
		m.RangeHits = t.Query(*m.RangeBox)
	}
	if m.Probe != nil {
		if s, ok := t.Nearest(*m.Probe); ok {
			m.Found = &s
		} else {
			m.Found = nil
		}
	}
	if m.Selected != nil && !t.Has(*m.Selected) {
		m.Selected = nil
	}
	return m
}
