// Package combin provides lexicographic enumeration of k-subsets of
// {0..n-1}, with optional fixed-prefix partitioning so that independent
// workers can cover the full enumeration exactly once between them.
package combin

// Enumerator steps through the strictly increasing index tuples of size k
// drawn from {0..n-1}, in lexicographic order.
//
// With a fixed prefix, only the positions at or beyond the prefix length
// vary; the union of the enumerations over all valid prefixes of a given
// length equals the unpartitioned enumeration with no overlap.
//
//	e := combin.NewEnumerator(5, 3)
//	for e.Next() {
//	    use(e.Indices())
//	}
type Enumerator struct {
	n, k    int
	fixed   int
	indices []int
	started bool
	done    bool
}

// NewEnumerator creates an unpartitioned enumerator over n choose k.
func NewEnumerator(n, k int) *Enumerator {
	return NewPartitionedEnumerator(n, k, nil)
}

// NewPartitionedEnumerator creates an enumerator whose leading positions are
// pinned to prefix; only the remaining k-len(prefix) positions vary. A nil or
// empty prefix yields the unpartitioned enumeration.
func NewPartitionedEnumerator(n, k int, prefix []int) *Enumerator {
	e := &Enumerator{
		n:       n,
		k:       k,
		fixed:   len(prefix),
		indices: make([]int, 0, k),
	}

	if k <= 0 || k > n || e.fixed > k {
		e.done = true
		return e
	}

	e.indices = append(e.indices, prefix...)
	if len(e.indices) == 0 {
		e.indices = append(e.indices, 0)
	}
	for i := len(e.indices); i < k; i++ {
		e.indices = append(e.indices, e.indices[i-1]+1)
	}

	// A prefix too close to the end of the pool leaves no room for the
	// suffix; such a partition is empty.
	if e.indices[k-1] >= n {
		e.done = true
	}

	return e
}

// Next advances to the next combination, returning false when the
// enumeration is exhausted. The first call positions the enumerator at its
// initial combination.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}

	if !e.started {
		e.started = true
		return true
	}

	for i := e.k - 1; i >= e.fixed; i-- {
		if e.indices[i]+1 < e.n-(e.k-i-1) {
			e.indices[i]++
			for j := i + 1; j < e.k; j++ {
				e.indices[j] = e.indices[j-1] + 1
			}
			return true
		}
	}

	e.done = true
	return false
}

// Indices returns the current combination. The returned slice is only valid
// until the next call to Next; callers that retain it must copy.
func (e *Enumerator) Indices() []int {
	return e.indices
}

// Prefixes enumerates every valid fixed prefix of the given length for an
// n choose k enumeration, using the same stepping rule restricted to the
// leading positions. Each prefix bounds its values so that a full k-tuple can
// still complete to the right.
//
// A non-positive length yields a single nil prefix: one unpartitioned work
// unit covering the whole enumeration.
func Prefixes(n, k, length int) [][]int {
	length = min(length, k)

	if length <= 0 {
		return [][]int{nil}
	}
	if k > n {
		return nil
	}

	prefix := make([]int, length)
	for i := range prefix {
		prefix[i] = i
	}

	var prefixes [][]int
	for {
		cp := make([]int, length)
		copy(cp, prefix)
		prefixes = append(prefixes, cp)

		advanced := false
		for i := length - 1; i >= 0; i-- {
			if prefix[i]+1 < n-(k-i-1) {
				prefix[i]++
				for j := i + 1; j < length; j++ {
					prefix[j] = prefix[j-1] + 1
				}
				advanced = true
				break
			}
		}
		if !advanced {
			return prefixes
		}
	}
}
