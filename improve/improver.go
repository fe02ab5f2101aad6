// Package improve implements the local-search engine that refines a number
// set to increase its power-of-two pair count.
//
// The search is a worklist loop over single-member swaps: pop a candidate,
// record it if it beats the best seen, then let the move rule derive
// neighbors that strictly improve on it. Pair count is bounded above by
// C(desiredSize, 2) and every accepted move strictly increases it, so the
// search always terminates.
package improve

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/cespare/xxhash/v2"

	"github.com/hupe1980/powgo/numberset"
	"github.com/hupe1980/powgo/power"
)

// Options configures an Improver.
type Options struct {
	// Rule is the move rule deriving neighbor candidates.
	Rule MoveRule
}

// Improver holds the best-known number set, a LIFO worklist of candidates
// awaiting evaluation, and a visited-fingerprint bitmap pruning exact
// duplicate candidates.
//
// BestPairCount and Improvements are atomically readable so a monitor can
// sample them while Improve runs on another goroutine; all other state is
// owned by the improving goroutine.
type Improver struct {
	table *power.Table
	rule  MoveRule

	best         *numberset.Set
	bestPairs    atomic.Int64
	improvements atomic.Int64

	stack []*numberset.Set
	seen  *roaring64.Bitmap
	fpBuf []byte
}

// New creates an Improver for number sets of the given size.
func New(table *power.Table, setSize int, optFns ...func(o *Options)) *Improver {
	opts := Options{
		Rule: SingleSwapRule,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Improver{
		table: table,
		rule:  opts.Rule,
		best:  numberset.New(setSize),
		seen:  roaring64.New(),
		fpBuf: make([]byte, 0, setSize*8),
	}
}

// Improve runs the worklist search from seed. The seed is copied; the caller
// may reuse it afterwards. Results are read via Best and BestPairCount.
func (imp *Improver) Improve(seed *numberset.Set) {
	if imp.markSeen(seed) {
		imp.stack = append(imp.stack, seed.Clone())
	}

	for len(imp.stack) > 0 {
		set := imp.stack[len(imp.stack)-1]
		imp.stack = imp.stack[:len(imp.stack)-1]

		pairs := set.CountPairs()
		if int64(pairs) > imp.bestPairs.Load() {
			imp.best = set
			imp.bestPairs.Store(int64(pairs))
		}

		imp.rule(imp.table, set, func(candidate *numberset.Set) {
			candidate.MarkImproved()
			imp.improvements.Add(1)
			if imp.markSeen(candidate) {
				imp.stack = append(imp.stack, candidate)
			}
		})
	}
}

// Best returns the best number set found so far. Never nil; empty until the
// first Improve call.
func (imp *Improver) Best() *numberset.Set {
	return imp.best
}

// BestPairCount returns the pair count of the best set. Safe to call
// concurrently with Improve.
func (imp *Improver) BestPairCount() int64 {
	return imp.bestPairs.Load()
}

// Improvements returns the number of accepted improving moves. Safe to call
// concurrently with Improve.
func (imp *Improver) Improvements() int64 {
	return imp.improvements.Load()
}

// markSeen fingerprints the set's membership and records it, reporting
// whether it was new. Duplicate candidates reached through different move
// sequences would re-explore identical subtrees; pruning them cannot change
// the best result. A 64-bit fingerprint collision could prune a distinct
// set, which the heuristic search tolerates.
func (imp *Improver) markSeen(set *numberset.Set) bool {
	fp := imp.fingerprint(set)
	if imp.seen.Contains(fp) {
		return false
	}
	imp.seen.Add(fp)
	return true
}

func (imp *Improver) fingerprint(set *numberset.Set) uint64 {
	imp.fpBuf = imp.fpBuf[:0]
	for _, n := range set.Sorted() {
		imp.fpBuf = binary.LittleEndian.AppendUint64(imp.fpBuf, uint64(n))
	}
	return xxhash.Sum64(imp.fpBuf)
}
