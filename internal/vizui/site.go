package vizui

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/wesen/quadkit/pkg/geo"
	"github.com/wesen/quadkit/pkg/quadtree"
)

// Site is the element the explorer indexes: a labeled point with a
// stable identity, so coincident sites stay distinguishable and
// Remove targets exactly the clicked one.
type Site struct {
	ID    uuid.UUID
	Label string
	X, Y  float64
}

// Position implements quadtree.Item.
func (s Site) Position() geo.Point[float64] { return geo.Pt(s.X, s.Y) }

// Equal implements quadtree.Item; identity, not coordinates.
func (s Site) Equal(o Site) bool { return s.ID == o.ID }

// SiteTree is the concrete tree type the explorer works with.
type SiteTree = quadtree.Tree[float64, Site]

// NewSite mints a labeled site at (x, y).
func NewSite(label string, x, y float64) Site {
	return Site{ID: uuid.New(), Label: label, X: x, Y: y}
}

// seedSites builds the startup data: three clusters plus scattered
// strays, dense enough that the subdivisions show immediately.
func seedSites(domain geo.Box[float64]) []Site {
	rng := rand.New(rand.NewPCG(2, 7))
	clampX := func(v float64) float64 { return min(max(v, domain.Min.X), domain.Max.X) }
	clampY := func(v float64) float64 { return min(max(v, domain.Min.Y), domain.Max.Y) }

	centers := []geo.Point[float64]{
		geo.Pt(25.0, 25.0),
		geo.Pt(70.0, 30.0),
		geo.Pt(40.0, 75.0),
	}

	var sites []Site
	n := 0
	for _, c := range centers {
		for range 12 {
			sites = append(sites, NewSite(fmt.Sprintf("s%d", n),
				clampX(c.X+rng.NormFloat64()*6),
				clampY(c.Y+rng.NormFloat64()*6)))
			n++
		}
	}
	for range 14 {
		sites = append(sites, NewSite(fmt.Sprintf("s%d", n),
			domain.Min.X+rng.Float64()*domain.Width(),
			domain.Min.Y+rng.Float64()*domain.Height()))
		n++
	}
	return sites
}
