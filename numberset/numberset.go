// Package numberset provides the bounded candidate solution of the search: a
// set of at most desired-size distinct integers, with pair counting against
// the power-of-two predicate and a scale-reduction operation.
package numberset

import (
	"sort"

	"github.com/hupe1980/powgo/power"
)

// Set is a bounded set of distinct int64 values.
//
// A Set is filled incrementally; once it holds its desired size, further
// insertions are no-ops. Members keep insertion order, which keeps every scan
// over them deterministic. A Set is not safe for concurrent use.
type Set struct {
	desired      int
	improvements int
	members      []int64
	index        map[int64]struct{}
}

// New creates an empty Set with the given desired size.
func New(desiredSize int) *Set {
	if desiredSize < 0 {
		desiredSize = 0
	}
	return &Set{
		desired: desiredSize,
		members: make([]int64, 0, desiredSize),
		index:   make(map[int64]struct{}, desiredSize),
	}
}

// Reset clears members and the improvement counter, keeping allocations for
// reuse across enumeration iterations.
func (s *Set) Reset() {
	s.improvements = 0
	s.members = s.members[:0]
	clear(s.index)
}

// Desired returns the desired size.
func (s *Set) Desired() int {
	return s.desired
}

// Size returns the current member count.
func (s *Set) Size() int {
	return len(s.members)
}

// Filled reports whether the set holds its desired size.
func (s *Set) Filled() bool {
	return len(s.members) == s.desired
}

// Contains reports membership of n.
func (s *Set) Contains(n int64) bool {
	_, ok := s.index[n]
	return ok
}

// Add inserts n if it is not already present and the set is not at capacity.
// Past capacity Add is a no-op.
func (s *Set) Add(n int64) {
	if s.Filled() {
		return
	}
	if _, ok := s.index[n]; ok {
		return
	}

	s.members = append(s.members, n)
	s.index[n] = struct{}{}
}

// AddTriplet adds the three members of tri in canonical order, each subject
// to the capacity check.
func (s *Set) AddTriplet(tri power.Triplet) {
	s.Add(tri.A)
	s.Add(tri.B)
	s.Add(tri.C)
}

// Members returns the members in insertion order. The returned slice is
// shared; callers must not modify it.
func (s *Set) Members() []int64 {
	return s.members
}

// Sorted returns the members in ascending order as a new slice.
func (s *Set) Sorted() []int64 {
	sorted := make([]int64, len(s.members))
	copy(sorted, s.members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// CountPairs returns the number of unordered member pairs whose sum is a
// power of two.
func (s *Set) CountPairs() int {
	count := 0
	for i := 0; i < len(s.members); i++ {
		for j := i + 1; j < len(s.members); j++ {
			if power.IsPowerOfTwo(s.members[i] + s.members[j]) {
				count++
			}
		}
	}
	return count
}

// Pairs materializes the power pairs of the set, scanning members in
// ascending order so the result is deterministic for a given membership.
func (s *Set) Pairs() []power.Pair {
	sorted := s.Sorted()

	pairs := make([]power.Pair, 0, s.desired*3)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if power.IsPowerOfTwo(sorted[i] + sorted[j]) {
				pairs = append(pairs, power.NewPair(sorted[i], sorted[j]))
			}
		}
	}
	return pairs
}

// Simplify halves every member while all members are even and the set has at
// least two members. Halving an all-even set preserves which pairs sum to a
// power of two, so the pair count is unchanged.
func (s *Set) Simplify() {
	for len(s.members) > 1 && s.allEven() {
		clear(s.index)
		for i, n := range s.members {
			s.members[i] = n / 2
			s.index[n/2] = struct{}{}
		}
	}
}

func (s *Set) allEven() bool {
	for _, n := range s.members {
		if n%2 != 0 {
			return false
		}
	}
	return true
}

// Improvements returns how many accepted improving moves produced this set.
func (s *Set) Improvements() int {
	return s.improvements
}

// MarkImproved records one accepted improving move on this set's lineage.
func (s *Set) MarkImproved() {
	s.improvements++
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	c := &Set{
		desired:      s.desired,
		improvements: s.improvements,
		members:      make([]int64, len(s.members), cap(s.members)),
		index:        make(map[int64]struct{}, len(s.index)),
	}
	copy(c.members, s.members)
	for n := range s.index {
		c.index[n] = struct{}{}
	}
	return c
}

// CloneReplace returns a copy of the set with remove swapped for insert, the
// inserted value taking the removed member's position. The receiver is
// unchanged.
func (s *Set) CloneReplace(remove, insert int64) *Set {
	c := s.Clone()
	for i, n := range c.members {
		if n == remove {
			c.members[i] = insert
			break
		}
	}
	delete(c.index, remove)
	c.index[insert] = struct{}{}
	return c
}
