package benchrun

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/wesen/quadkit/pkg/geo"
	"github.com/wesen/quadkit/pkg/quadtree"
)

// mark is the element the benchmark stores: a position plus a sequence
// number for identity.
type mark struct {
	X, Y float64
	Seq  int
}

func (m mark) Position() geo.Point[float64] { return geo.Pt(m.X, m.Y) }
func (m mark) Equal(o mark) bool            { return m == o }

// Result holds the timings of one phase. Churn reports throughput
// only, so its quantiles stay zero.
type Result struct {
	Phase string
	N     int
	Total time.Duration
	Mean  time.Duration
	P50   time.Duration
	P99   time.Duration
}

// String formats the result as one report line.
func (res Result) String() string {
	if res.N == 0 {
		return fmt.Sprintf("%-8s skipped", res.Phase)
	}
	return fmt.Sprintf("%-8s n=%-8d total=%-12s mean=%-10s p50=%-10s p99=%s",
		res.Phase, res.N, res.Total.Round(time.Microsecond), res.Mean, res.P50, res.P99)
}

// Runner executes the configured phases in order against one tree.
type Runner struct {
	cfg Config
	log *log.Logger
	rng *rand.Rand
	id  uuid.UUID

	domain geo.Box[float64]
	tree   *quadtree.Tree[float64, mark]
}

// NewRunner returns a runner for cfg that reports through logger.
func NewRunner(cfg Config, logger *log.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		log:    logger,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
		id:     uuid.New(),
		domain: geo.MustBox(geo.Pt(0.0, 0.0), geo.Pt(1000.0, 1000.0)),
	}
}

// ID returns the run's identifier, one fresh UUID per Runner.
func (r *Runner) ID() uuid.UUID {
	return r.id
}

// Run executes load, query, nearest and churn and returns the per-phase
// results. The context bounds the whole run.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	r.log.Info("starting run",
		"id", r.id, "sites", r.cfg.Sites, "capacity", r.cfg.Capacity, "seed", r.cfg.Seed)

	var results []Result
	for _, phase := range []func(context.Context) (Result, error){
		r.loadPhase,
		r.queryPhase,
		r.nearestPhase,
		r.churnPhase,
	} {
		res, err := phase(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
		r.log.Info("phase done",
			"phase", res.Phase, "n", res.N, "total", res.Total,
			"mean", res.Mean, "p50", res.P50, "p99", res.P99)
	}
	return results, nil
}

func (r *Runner) randMark(seq int) mark {
	return mark{
		X:   r.domain.Min.X + r.rng.Float64()*r.domain.Width(),
		Y:   r.domain.Min.Y + r.rng.Float64()*r.domain.Height(),
		Seq: seq,
	}
}

func (r *Runner) loadPhase(ctx context.Context) (Result, error) {
	tr, err := quadtree.New[float64, mark](r.domain, r.cfg.Capacity)
	if err != nil {
		return Result{}, err
	}
	lat := make([]float64, 0, r.cfg.Sites)
	start := time.Now()
	for i := range r.cfg.Sites {
		if i&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		m := r.randMark(i)
		t0 := time.Now()
		nt, err := tr.Insert(m)
		if err != nil {
			return Result{}, fmt.Errorf("benchrun: load: %w", err)
		}
		lat = append(lat, time.Since(t0).Seconds())
		tr = nt
	}
	r.tree = tr
	if r.cfg.Verbose {
		st := tr.Stats()
		r.log.Debug("tree shape",
			"leaves", st.Leaves, "internal", st.Internal,
			"max_depth", st.MaxDepth, "max_leaf", st.MaxLeaf)
	}
	return summarize("load", lat, time.Since(start)), nil
}

func (r *Runner) queryPhase(ctx context.Context) (Result, error) {
	edge := r.domain.Width() * r.cfg.BoxFrac
	lat := make([]float64, 0, r.cfg.Queries)
	hits := 0
	start := time.Now()
	for i := range r.cfg.Queries {
		if i&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		x := r.domain.Min.X + r.rng.Float64()*(r.domain.Width()-edge)
		y := r.domain.Min.Y + r.rng.Float64()*(r.domain.Height()-edge)
		b := geo.MustBox(geo.Pt(x, y), geo.Pt(x+edge, y+edge))
		t0 := time.Now()
		hits += len(r.tree.Query(b))
		lat = append(lat, time.Since(t0).Seconds())
	}
	if r.cfg.Verbose {
		r.log.Debug("query hits", "total", hits)
	}
	return summarize("query", lat, time.Since(start)), nil
}

func (r *Runner) nearestPhase(ctx context.Context) (Result, error) {
	lat := make([]float64, 0, r.cfg.Queries)
	start := time.Now()
	for i := range r.cfg.Queries {
		if i&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		p := geo.Pt(
			r.domain.Min.X+r.rng.Float64()*r.domain.Width(),
			r.domain.Min.Y+r.rng.Float64()*r.domain.Height(),
		)
		t0 := time.Now()
		r.tree.Nearest(p)
		lat = append(lat, time.Since(t0).Seconds())
	}
	return summarize("nearest", lat, time.Since(start)), nil
}

// churnPhase races writers inserting through a Shared handle against
// readers probing whatever version is current. It measures throughput;
// correctness holes would show up as lost inserts in the final count.
func (r *Runner) churnPhase(ctx context.Context) (Result, error) {
	if r.cfg.Churn <= 0 || r.cfg.Writers+r.cfg.Readers == 0 {
		return Result{Phase: "churn"}, nil
	}
	shared := quadtree.NewShared(r.tree)
	before := r.tree.Len()

	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Churn)
	defer cancel()
	start := time.Now()

	var writes, reads atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for w := range r.cfg.Writers {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(r.cfg.Seed+uint64(w)+1, 17))
			seq := (w + 1) << 28
			for gctx.Err() == nil {
				m := mark{
					X:   r.domain.Min.X + rng.Float64()*r.domain.Width(),
					Y:   r.domain.Min.Y + rng.Float64()*r.domain.Height(),
					Seq: seq,
				}
				seq++
				if _, err := shared.Update(func(cur *quadtree.Tree[float64, mark]) (*quadtree.Tree[float64, mark], error) {
					return cur.Insert(m)
				}); err != nil {
					return err
				}
				writes.Add(1)
			}
			return nil
		})
	}
	for rd := range r.cfg.Readers {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(r.cfg.Seed+uint64(rd)+101, 29))
			for gctx.Err() == nil {
				p := geo.Pt(
					r.domain.Min.X+rng.Float64()*r.domain.Width(),
					r.domain.Min.Y+rng.Float64()*r.domain.Height(),
				)
				shared.Load().Nearest(p)
				reads.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("benchrun: churn: %w", err)
	}
	if err := parent.Err(); err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)

	final := shared.Load()
	if got := final.Len(); got != before+int(writes.Load()) {
		return Result{}, fmt.Errorf("benchrun: churn lost updates: %d items, want %d",
			got, before+int(writes.Load()))
	}
	r.log.Info("churn finished",
		"writes", writes.Load(), "reads", reads.Load(), "items", final.Len())

	n := int(writes.Load() + reads.Load())
	res := Result{Phase: "churn", N: n, Total: elapsed}
	if n > 0 {
		res.Mean = elapsed / time.Duration(n)
	}
	return res, nil
}

// summarize reduces per-op latencies to a Result. Quantiles are read
// off the empirical distribution of the sorted samples.
func summarize(phase string, lat []float64, total time.Duration) Result {
	res := Result{Phase: phase, N: len(lat), Total: total}
	if len(lat) == 0 {
		return res
	}
	sort.Float64s(lat)
	res.Mean = seconds(stat.Mean(lat, nil))
	res.P50 = seconds(stat.Quantile(0.5, stat.Empirical, lat, nil))
	res.P99 = seconds(stat.Quantile(0.99, stat.Empirical, lat, nil))
	return res
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
