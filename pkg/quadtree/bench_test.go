package quadtree

import (
	"math/rand/v2"
	"testing"

	"github.com/wesen/quadkit/pkg/geo"
)

func benchTree(b *testing.B, n, capacity int) (*Tree[float64, site], []site) {
	b.Helper()
	rng := rand.New(rand.NewPCG(101, 101))
	es := randSites(rng, n, 0, 100)
	tr, err := New[float64, site](domain100, capacity)
	if err != nil {
		b.Fatal(err)
	}
	tr, err = tr.Load(es)
	if err != nil {
		b.Fatal(err)
	}
	return tr, es
}

func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewPCG(103, 103))
	const mask = 1<<16 - 1
	pool := randSites(rng, mask+1, 0, 100)
	tr, err := New[float64, site](domain100, 16)
	if err != nil {
		b.Fatal(err)
	}
	i := 0
	for b.Loop() {
		nt, err := tr.Insert(pool[i&mask])
		if err != nil {
			b.Fatal(err)
		}
		tr = nt
		i++
	}
}

func BenchmarkQuery(b *testing.B) {
	tr, _ := benchTree(b, 100_000, 16)
	rng := rand.New(rand.NewPCG(107, 107))
	boxes := make([]geo.Box[float64], 256)
	for i := range boxes {
		x, y := rng.Float64()*90, rng.Float64()*90
		boxes[i] = geo.MustBox(geo.Pt(x, y), geo.Pt(x+10, y+10))
	}
	i := 0
	for b.Loop() {
		_ = tr.Query(boxes[i&255])
		i++
	}
}

func BenchmarkNearest(b *testing.B) {
	tr, _ := benchTree(b, 100_000, 16)
	rng := rand.New(rand.NewPCG(109, 109))
	probes := make([]geo.Point[float64], 256)
	for i := range probes {
		probes[i] = geo.Pt(rng.Float64()*100, rng.Float64()*100)
	}
	i := 0
	for b.Loop() {
		_, _ = tr.Nearest(probes[i&255])
		i++
	}
}

func BenchmarkRemove(b *testing.B) {
	tr, es := benchTree(b, 100_000, 16)
	i := 0
	for b.Loop() {
		_, _ = tr.Remove(es[i%len(es)])
		i++
	}
}

func BenchmarkSharedUpdate(b *testing.B) {
	tr, _ := benchTree(b, 10_000, 16)
	s := NewShared(tr)
	rng := rand.New(rand.NewPCG(113, 113))
	const mask = 1<<14 - 1
	pool := randSites(rng, mask+1, 0, 100)
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			e := pool[i&mask]
			i++
			_, _ = s.Update(func(cur *Tree[float64, site]) (*Tree[float64, site], error) {
				return cur.Insert(e)
			})
		}
	})
}
