package powgo

import (
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/powgo/numberset"
)

// runCombiners distributes the work units across worker goroutines and
// reduces their results to a single best number set.
//
// Workers claim the next unclaimed combiner index from a shared atomic
// counter and run it to completion; there is no work stealing or rebalancing
// beyond that. A monitor goroutine polls the counter and logs progress. The
// errgroup guarantees every goroutine is joined before reduction on all
// paths.
//
// The reduction is single-threaded and strictly ordered: combiners are
// scanned in index order and the first one attaining the maximum pair count
// wins, which makes the result independent of scheduling for a fixed
// partitioning and pool.
func (e *Engine) runCombiners(combiners []*Combiner, setSize int) *numberset.Set {
	if len(combiners) == 0 {
		return numberset.New(setSize)
	}

	workers := e.workerCount()

	var next atomic.Int64
	var g errgroup.Group

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				which := next.Add(1) - 1
				if which >= int64(len(combiners)) {
					return nil
				}
				combiners[which].Combine()
			}
		})
	}

	g.Go(func() error {
		e.monitor(&next, combiners, workers)
		return nil
	})

	_ = g.Wait()

	best := numberset.New(setSize)
	bestPairs := int64(0)
	for _, c := range combiners {
		if c.BestPairCount() > bestPairs {
			best = c.Best()
			bestPairs = c.BestPairCount()
		}
	}

	result := best.Clone()
	result.Simplify()
	return result
}

func (e *Engine) workerCount() int {
	workers := e.opts.workers
	if workers <= 0 {
		workers = runtime.NumCPU() - 1
	}
	return max(workers, 1)
}

// monitor polls the claim counter until every work unit has been claimed,
// logging percent complete along with the best pair and improvement counts
// sampled from the most recently claimed batch of combiners. The samples are
// display-only telemetry read from atomic counters; they never feed back
// into the search.
func (e *Engine) monitor(next *atomic.Int64, combiners []*Combiner, workers int) {
	total := int64(len(combiners))
	start := time.Now()

	var bestPairs, improvements int64
	sample := func(lo, hi int64) {
		for i := max(lo, 0); i < min(hi, total); i++ {
			bestPairs = max(bestPairs, combiners[i].BestPairCount())
			improvements = max(improvements, combiners[i].Improvements())
		}
	}

	ticker := time.NewTicker(e.opts.progressInterval)
	defer ticker.Stop()

	currentPercent := -1
	for range ticker.C {
		claimed := next.Load()
		if claimed >= total {
			break
		}

		percent := int(100 * claimed / total)
		if percent == currentPercent {
			continue
		}
		currentPercent = percent

		sample(claimed-int64(workers), claimed)
		if e.resource.AllowProgress() {
			e.opts.logger.LogProgress(percent, time.Since(start), bestPairs, improvements)
		}
	}

	sample(0, total)
	e.opts.logger.LogProgress(100, time.Since(start), bestPairs, improvements)
}
