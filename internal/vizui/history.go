package vizui

// History is the undo stack of tree versions. Versions share structure,
// so retaining all of them costs only the paths the mutations copied;
// undo is a pointer move, never a rebuild.
type History struct {
	versions []*SiteTree
	labels   []string
}

// NewHistory starts a history at the given root version.
func NewHistory(root *SiteTree) *History {
	return &History{
		versions: []*SiteTree{root},
		labels:   []string{"seed"},
	}
}

// Current returns the newest version.
func (h *History) Current() *SiteTree {
	return h.versions[len(h.versions)-1]
}

// Push appends the version produced by op.
func (h *History) Push(t *SiteTree, op string) {
	h.versions = append(h.versions, t)
	h.labels = append(h.labels, op)
}

// Undo drops the newest version and returns the one before it. The
// seed version is never dropped; at the bottom Undo reports false.
func (h *History) Undo() (*SiteTree, bool) {
	if len(h.versions) == 1 {
		return h.Current(), false
	}
	h.versions = h.versions[:len(h.versions)-1]
	h.labels = h.labels[:len(h.labels)-1]
	return h.Current(), true
}

// Depth is the number of versions retained, the seed included.
func (h *History) Depth() int {
	return len(h.versions)
}

// Label returns the op that produced the current version.
func (h *History) Label() string {
	return h.labels[len(h.labels)-1]
}
