package powgo

import (
	"context"
	"time"

	"github.com/hupe1980/powgo/combin"
	"github.com/hupe1980/powgo/improve"
	"github.com/hupe1980/powgo/internal/resource"
	"github.com/hupe1980/powgo/numberset"
	"github.com/hupe1980/powgo/power"
)

// Engine runs power-of-two pair searches. It is safe for concurrent use;
// concurrent searches are bounded by the resource controller.
type Engine struct {
	opts     options
	table    *power.Table
	resource *resource.Controller
}

// New creates an Engine.
func New(optFns ...Option) (*Engine, error) {
	opts := applyOptions(optFns)

	if opts.tripletCount < 0 {
		return nil, ErrInvalidTripletCount
	}
	if opts.levels < 0 {
		return nil, ErrInvalidLevels
	}
	if opts.progressInterval <= 0 {
		opts.progressInterval = 100 * time.Millisecond
	}

	table, err := power.NewTable(opts.maxExponent)
	if err != nil {
		return nil, err
	}

	return &Engine{
		opts:  opts,
		table: table,
		resource: resource.NewController(resource.Config{
			MaxConcurrentSearches: opts.maxConcurrentSearches,
			ProgressInterval:      opts.progressInterval,
		}),
	}, nil
}

// Table returns the engine's power-of-two table.
func (e *Engine) Table() *power.Table {
	return e.table
}

// Result is the outcome of one search.
type Result struct {
	// SetSize is the requested (desired) set size. The found set may hold
	// fewer members when the triplet pool is too small to fill it.
	SetSize int

	// Numbers are the members of the best set, ascending.
	Numbers []int64

	// Pairs are the power pairs of the best set, each rendered from the
	// ascending member order.
	Pairs []power.Pair

	// PairCount is len(Pairs).
	PairCount int

	// TripletCount is the size of the generated triplet pool. Zero in
	// simplified mode.
	TripletCount int

	// Combinations is the total number of subsets tried across all work
	// units. Zero in simplified mode.
	Combinations int64

	// Improvements is the number of accepted improving moves on the
	// winning set's lineage.
	Improvements int

	// CombinerCount is the number of work units. Zero in simplified mode.
	CombinerCount int

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Search runs the full search: generate the triplet pool, partition the
// subset enumeration into work units, improve every seeded candidate, and
// reduce to the best set. The search is total: it always terminates and
// always produces a result, degenerate (empty or partially filled) when the
// pool is too small for the requested size.
func (e *Engine) Search(ctx context.Context, setSize int) (*Result, error) {
	if setSize < 0 {
		return nil, ErrInvalidSetSize
	}

	if err := e.resource.AcquireSearch(ctx); err != nil {
		return nil, err
	}
	defer e.resource.ReleaseSearch()

	start := time.Now()

	genStart := time.Now()
	pool := power.Generate(e.table, e.opts.tripletCount)
	e.opts.logger.LogGenerate(len(pool), time.Since(genStart))
	e.opts.metricsCollector.RecordGenerate(len(pool), time.Since(genStart))

	combiners := e.buildCombiners(pool, setSize)
	e.opts.logger.LogCombiners(len(combiners))

	best := e.runCombiners(combiners, setSize)

	var combinations int64
	for _, c := range combiners {
		combinations += c.Combinations()
	}

	result := e.newResult(best, setSize, start)
	result.TripletCount = len(pool)
	result.Combinations = combinations
	result.CombinerCount = len(combiners)

	e.opts.logger.LogSearch(setSize, result.PairCount, combinations, result.Improvements, result.Elapsed)
	e.opts.metricsCollector.RecordSearch(setSize, combinations, result.Elapsed, nil)

	return result, nil
}

// buildCombiners creates one work unit per valid enumeration prefix. The
// prefix length is clamped to the set size; length zero yields a single
// unpartitioned work unit.
func (e *Engine) buildCombiners(pool []power.Triplet, setSize int) []*Combiner {
	levels := min(e.opts.levels, setSize)

	prefixes := combin.Prefixes(len(pool), setSize, levels)

	combiners := make([]*Combiner, 0, len(prefixes))
	for _, prefix := range prefixes {
		combiners = append(combiners, NewCombiner(e.table, pool, setSize, prefix, e.improverOptions()...))
	}
	return combiners
}

func (e *Engine) improverOptions() []func(o *improve.Options) {
	if e.opts.moveRule == nil {
		return nil
	}
	return []func(o *improve.Options){improve.WithRule(e.opts.moveRule)}
}

// Simple runs the simplified search: seed an odd-number ladder, pick the
// best of a small family of ladders, and refine it with the improver. No
// triplet pool and no parallelism.
func (e *Engine) Simple(ctx context.Context, setSize int) (*Result, error) {
	if setSize < 0 {
		return nil, ErrInvalidSetSize
	}

	if err := e.resource.AcquireSearch(ctx); err != nil {
		return nil, err
	}
	defer e.resource.ReleaseSearch()

	start := time.Now()

	seed := e.bestLadder(setSize)

	improver := improve.New(e.table, setSize, e.improverOptions()...)
	improver.Improve(seed)

	result := e.newResult(improver.Best(), setSize, start)

	e.opts.logger.LogSearch(setSize, result.PairCount, 0, result.Improvements, result.Elapsed)
	e.opts.metricsCollector.RecordSimple(setSize, result.Elapsed, nil)

	return result, nil
}

// bestLadder seeds number sets from ascending odd values, mixing in
// negatives past a swept threshold, and returns the seed with the most power
// pairs. Odd members skip the all-even halving of Simplify and pair easily:
// two odds always sum to an even value, candidate for a power of two.
func (e *Engine) bestLadder(setSize int) *numberset.Set {
	var best *numberset.Set

	for minDeltaForNegative := int64(0); minDeltaForNegative < 20; minDeltaForNegative += 2 {
		set := numberset.New(setSize)
		for delta := int64(1); !set.Filled(); delta += 2 {
			set.Add(delta)
			if delta > minDeltaForNegative {
				set.Add(-delta + 2)
			}
		}

		if best == nil || set.CountPairs() > best.CountPairs() {
			best = set
		}
	}

	return best
}

func (e *Engine) newResult(best *numberset.Set, setSize int, start time.Time) *Result {
	return &Result{
		SetSize:      setSize,
		Numbers:      best.Sorted(),
		Pairs:        best.Pairs(),
		PairCount:    best.CountPairs(),
		Improvements: best.Improvements(),
		Elapsed:      time.Since(start),
	}
}
