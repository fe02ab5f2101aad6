package numberset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/powgo/power"
)

func TestCapacity(t *testing.T) {
	s := New(3)
	assert.False(t, s.Filled())

	s.Add(1)
	s.Add(2)
	s.Add(2) // duplicate, no-op
	assert.Equal(t, 2, s.Size())

	s.Add(3)
	require.True(t, s.Filled())

	// Past capacity Add is a no-op.
	s.Add(4)
	assert.Equal(t, 3, s.Size())
	assert.False(t, s.Contains(4))
	assert.Equal(t, []int64{1, 2, 3}, s.Members())
}

func TestAddTriplet(t *testing.T) {
	s := New(2)
	s.AddTriplet(power.NewTriplet(1, 3, 5))

	// Capacity cuts off the third member.
	assert.Equal(t, []int64{1, 3}, s.Members())

	s = New(9)
	s.AddTriplet(power.NewTriplet(1, 3, 5))
	s.AddTriplet(power.NewTriplet(3, 5, 11))
	assert.Equal(t, []int64{1, 3, 5, 11}, s.Members())
}

func TestReset(t *testing.T) {
	s := New(3)
	s.Add(1)
	s.Add(2)
	s.MarkImproved()

	s.Reset()
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, 0, s.Improvements())
	assert.False(t, s.Contains(1))
	assert.Equal(t, 3, s.Desired())
}

func TestCountPairs(t *testing.T) {
	s := New(4)
	for _, n := range []int64{1, 3, 5, 7} {
		s.Add(n)
	}

	// 1+3=4, 1+7=8, 3+5=8.
	assert.Equal(t, 3, s.CountPairs())
}

func TestPairs(t *testing.T) {
	s := New(4)
	// Insertion order differs from sorted order; Pairs scans ascending.
	for _, n := range []int64{7, 1, 5, 3} {
		s.Add(n)
	}

	assert.Equal(t, []power.Pair{
		power.NewPair(1, 3),
		power.NewPair(1, 7),
		power.NewPair(3, 5),
	}, s.Pairs())

	for _, p := range s.Pairs() {
		assert.True(t, power.IsPowerOfTwo(p.Sum()))
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name    string
		members []int64
		want    []int64
	}{
		{name: "all even halves until odd", members: []int64{2, 6, 10, 14}, want: []int64{1, 3, 5, 7}},
		{name: "repeated halving", members: []int64{4, 12}, want: []int64{1, 3}},
		{name: "odd member stops immediately", members: []int64{2, 3}, want: []int64{2, 3}},
		{name: "singleton unchanged", members: []int64{4}, want: []int64{4}},
		{name: "empty unchanged", members: nil, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(len(tt.members))
			for _, n := range tt.members {
				s.Add(n)
			}

			before := s.CountPairs()
			s.Simplify()

			assert.Equal(t, tt.want, s.Sorted())
			assert.Equal(t, len(tt.want), s.Size())

			// Halving an all-even set preserves the pair count.
			assert.Equal(t, before, s.CountPairs())
		})
	}
}

func TestClone(t *testing.T) {
	s := New(3)
	s.Add(1)
	s.Add(3)
	s.MarkImproved()

	c := s.Clone()
	assert.Equal(t, s.Members(), c.Members())
	assert.Equal(t, 1, c.Improvements())

	c.Add(5)
	assert.False(t, s.Contains(5))
	assert.Equal(t, 2, s.Size())
}

func TestCloneReplace(t *testing.T) {
	s := New(3)
	for _, n := range []int64{1, 3, 5} {
		s.Add(n)
	}

	c := s.CloneReplace(3, 9)

	// The inserted value takes the removed member's position.
	assert.Equal(t, []int64{1, 9, 5}, c.Members())
	assert.False(t, c.Contains(3))
	assert.True(t, c.Contains(9))

	// The receiver is unchanged.
	assert.Equal(t, []int64{1, 3, 5}, s.Members())
}

func TestSortedReturnsCopy(t *testing.T) {
	s := New(3)
	s.Add(5)
	s.Add(1)

	sorted := s.Sorted()
	assert.Equal(t, []int64{1, 5}, sorted)

	sorted[0] = 99
	assert.Equal(t, []int64{5, 1}, s.Members())
}
