package powgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/powgo/combin"
	"github.com/hupe1980/powgo/numberset"
	"github.com/hupe1980/powgo/power"
)

func TestNewValidation(t *testing.T) {
	_, err := New(WithTripletCount(-1))
	require.ErrorIs(t, err, ErrInvalidTripletCount)

	_, err = New(WithLevels(-1))
	require.ErrorIs(t, err, ErrInvalidLevels)

	_, err = New(WithMaxExponent(power.MaxExponent + 1))
	var invalid *power.ErrInvalidExponent
	require.ErrorAs(t, err, &invalid)

	engine, err := New()
	require.NoError(t, err)
	require.NotNil(t, engine.Table())

	_, err = engine.Search(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvalidSetSize)

	_, err = engine.Simple(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvalidSetSize)
}

func TestSearchCoversFullEnumeration(t *testing.T) {
	engine, err := New(
		WithTripletCount(12),
		WithLevels(1),
		WithWorkers(2),
	)
	require.NoError(t, err)

	result, err := engine.Search(context.Background(), 3)
	require.NoError(t, err)

	// The partitioned work units together try every subset exactly once.
	assert.Equal(t, int64(combin.Binomial(result.TripletCount, 3)), result.Combinations)
	assert.GreaterOrEqual(t, result.TripletCount, 12)
	assert.Greater(t, result.CombinerCount, 1)
}

func TestSearchDeterministicAcrossWorkerCounts(t *testing.T) {
	run := func(workers int) *Result {
		engine, err := New(
			WithTripletCount(12),
			WithLevels(1),
			WithWorkers(workers),
		)
		require.NoError(t, err)

		result, err := engine.Search(context.Background(), 3)
		require.NoError(t, err)
		return result
	}

	first := run(1)
	second := run(4)

	assert.Equal(t, first.Numbers, second.Numbers)
	assert.Equal(t, first.Pairs, second.Pairs)
	assert.Equal(t, first.PairCount, second.PairCount)
	assert.Equal(t, first.Combinations, second.Combinations)
}

func TestSearchResultPairsValid(t *testing.T) {
	engine, err := New(WithTripletCount(10), WithLevels(0), WithWorkers(1))
	require.NoError(t, err)

	result, err := engine.Search(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 1, result.CombinerCount)
	assert.Equal(t, len(result.Pairs), result.PairCount)

	members := make(map[int64]struct{}, len(result.Numbers))
	for _, n := range result.Numbers {
		members[n] = struct{}{}
	}
	require.Len(t, members, len(result.Numbers), "members are distinct")

	for _, p := range result.Pairs {
		assert.True(t, power.IsPowerOfTwo(p.Sum()), "%d+%d", p.A, p.B)
		assert.Contains(t, members, p.A)
		assert.Contains(t, members, p.B)
	}
}

func TestSimpleScenario(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	result, err := engine.Simple(context.Background(), 4)
	require.NoError(t, err)

	require.Len(t, result.Numbers, 4)

	distinct := make(map[int64]struct{}, 4)
	for _, n := range result.Numbers {
		distinct[n] = struct{}{}
	}
	assert.Len(t, distinct, 4)

	// C(4,2) bounds the pair count.
	assert.GreaterOrEqual(t, result.PairCount, 0)
	assert.LessOrEqual(t, result.PairCount, 6)

	for _, p := range result.Pairs {
		assert.True(t, power.IsPowerOfTwo(p.Sum()))
	}
}

func TestSimpleDegenerateSize(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	result, err := engine.Simple(context.Background(), 0)
	require.NoError(t, err)

	assert.Empty(t, result.Numbers)
	assert.Zero(t, result.PairCount)
}

func TestCombinerSingleUnitScenario(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	pool := power.Generate(engine.Table(), 5)[:5]

	c := NewCombiner(engine.Table(), pool, 3, nil)
	c.Combine()

	// One unpartitioned work unit visits C(5,3) = 10 subsets.
	assert.Equal(t, int64(10), c.Combinations())
	assert.LessOrEqual(t, c.BestPairCount(), int64(3))
}

func TestRunCombinersReduction(t *testing.T) {
	engine, err := New(WithWorkers(2))
	require.NoError(t, err)

	// Combiners with an empty pool never enumerate, so pre-improved state
	// survives runCombiners untouched; all three tie at one pair.
	seedCombiner := func(members ...int64) *Combiner {
		c := NewCombiner(engine.Table(), nil, 3, nil)
		seed := numberset.New(len(members))
		for _, n := range members {
			seed.Add(n)
		}
		c.improver.Improve(seed)
		return c
	}

	combiners := []*Combiner{
		seedCombiner(2, 6),  // 2+6=8
		seedCombiner(2, 14), // 2+14=16
		seedCombiner(0, 2),  // 0+2=2
	}

	best := engine.runCombiners(combiners, 2)

	// Earliest index wins the tie, and the winner is simplified.
	assert.Equal(t, []int64{1, 3}, best.Sorted())
}

func TestRunCombinersEmpty(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	best := engine.runCombiners(nil, 4)
	assert.Equal(t, 0, best.Size())
	assert.Equal(t, 4, best.Desired())
}
