package combin

import (
	"fmt"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(e *Enumerator) [][]int {
	var all [][]int
	for e.Next() {
		cp := make([]int, len(e.Indices()))
		copy(cp, e.Indices())
		all = append(all, cp)
	}
	return all
}

func TestEnumeratorFiveChooseThree(t *testing.T) {
	all := collect(NewEnumerator(5, 3))

	assert.Equal(t, [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4},
		{0, 2, 3}, {0, 2, 4}, {0, 3, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 3, 4},
		{2, 3, 4},
	}, all)
}

func TestEnumeratorEdgeCases(t *testing.T) {
	assert.Empty(t, collect(NewEnumerator(2, 3)), "k > n yields nothing")
	assert.Empty(t, collect(NewEnumerator(5, 0)), "k = 0 yields nothing")
	assert.Equal(t, [][]int{{0, 1, 2}}, collect(NewEnumerator(3, 3)), "k = n yields one combination")
}

func TestEnumeratorRanksAreSequential(t *testing.T) {
	const n, k = 7, 4

	e := NewEnumerator(n, k)
	rank := uint64(0)
	for e.Next() {
		require.Equal(t, rank, Rank(e.Indices(), n))
		rank++
	}

	assert.Equal(t, Binomial(n, k), rank)
}

func TestPartitionsCoverEnumerationExactlyOnce(t *testing.T) {
	const n, k = 6, 3

	for levels := 0; levels <= k; levels++ {
		t.Run(fmt.Sprintf("levels=%d", levels), func(t *testing.T) {
			visited := bitset.New(uint(Binomial(n, k)))

			for _, prefix := range Prefixes(n, k, levels) {
				e := NewPartitionedEnumerator(n, k, prefix)
				for e.Next() {
					rank := uint(Rank(e.Indices(), n))
					require.False(t, visited.Test(rank), "combination %v visited twice", e.Indices())
					visited.Set(rank)
				}
			}

			assert.Equal(t, uint(Binomial(n, k)), visited.Count())
		})
	}
}

func TestPrefixes(t *testing.T) {
	// Prefix values leave room for the suffix: c0 <= n-k.
	assert.Equal(t, [][]int{{0}, {1}, {2}}, Prefixes(5, 3, 1))

	// Length zero yields a single unpartitioned work unit.
	assert.Equal(t, [][]int{nil}, Prefixes(5, 3, 0))

	// Length is clamped to k.
	assert.Len(t, Prefixes(5, 3, 7), int(Binomial(5, 3)))

	// Too small a pool yields no partitions.
	assert.Empty(t, Prefixes(2, 3, 1))
}

func TestPartitionedEnumeratorOutOfRoomPrefix(t *testing.T) {
	// A prefix leaving no room for the suffix enumerates nothing.
	assert.Empty(t, collect(NewPartitionedEnumerator(5, 3, []int{3})))
}

func TestIndicesViewRequiresCopy(t *testing.T) {
	e := NewEnumerator(4, 2)
	require.True(t, e.Next())

	first := e.Indices()
	require.True(t, e.Next())

	// The view is reused between steps.
	assert.Equal(t, e.Indices(), first)
}
