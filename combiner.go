package powgo

import (
	"sync/atomic"

	"github.com/hupe1980/powgo/combin"
	"github.com/hupe1980/powgo/improve"
	"github.com/hupe1980/powgo/numberset"
	"github.com/hupe1980/powgo/power"
)

// Combiner is one parallel work unit of the search. It owns a contiguous
// partition of the k-subset enumeration over the triplet pool (an optional
// fixed index prefix plus a varying suffix), a reusable number set buffer,
// and its own improver.
//
// Combine runs to completion once claimed; the combinations counter and the
// improver's best counters are atomically readable by the monitor while it
// runs. Everything else is private to the claiming goroutine.
type Combiner struct {
	pool    []power.Triplet
	setSize int
	prefix  []int

	improver     *improve.Improver
	combinations atomic.Int64

	set *numberset.Set
}

// NewCombiner creates a work unit over pool for subsets of size setSize,
// pinned to the given enumeration prefix. A nil prefix covers the whole
// enumeration.
func NewCombiner(table *power.Table, pool []power.Triplet, setSize int, prefix []int, optFns ...func(o *improve.Options)) *Combiner {
	return &Combiner{
		pool:     pool,
		setSize:  setSize,
		prefix:   prefix,
		improver: improve.New(table, setSize, optFns...),
		set:      numberset.New(setSize),
	}
}

// Combine enumerates every subset of its partition, seeds the reusable
// number set from the subset's triplets, and runs the improver on it.
// Results are read via Best and BestPairCount after Combine returns.
func (c *Combiner) Combine() {
	if c.setSize <= 0 {
		return
	}

	enum := combin.NewPartitionedEnumerator(len(c.pool), c.setSize, c.prefix)
	for enum.Next() {
		c.combinations.Add(1)

		c.set.Reset()
		for _, idx := range enum.Indices() {
			c.set.AddTriplet(c.pool[idx])
		}

		c.improver.Improve(c.set)
	}
}

// Combinations returns how many subsets this work unit has tried. Safe to
// call concurrently with Combine.
func (c *Combiner) Combinations() int64 {
	return c.combinations.Load()
}

// Best returns the best number set this work unit has found.
func (c *Combiner) Best() *numberset.Set {
	return c.improver.Best()
}

// BestPairCount returns the pair count of the best set. Safe to call
// concurrently with Combine.
func (c *Combiner) BestPairCount() int64 {
	return c.improver.BestPairCount()
}

// Improvements returns the number of accepted improving moves. Safe to call
// concurrently with Combine.
func (c *Combiner) Improvements() int64 {
	return c.improver.Improvements()
}
