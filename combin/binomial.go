package combin

// Binomial returns C(n, k), the number of k-subsets of an n-element pool.
// Returns 0 when k < 0 or k > n.
func Binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	result := uint64(1)
	for i := 0; i < k; i++ {
		// Multiply before dividing; the running product is always an
		// integer multiple of i+1.
		result = result * uint64(n-i) / uint64(i+1)
	}
	return result
}

// Rank returns the lexicographic rank of a strictly increasing combination
// drawn from {0..n-1}. The first combination (0,1,..,k-1) has rank 0 and the
// last has rank C(n,k)-1.
func Rank(indices []int, n int) uint64 {
	k := len(indices)

	rank := uint64(0)
	prev := -1
	for i, c := range indices {
		for v := prev + 1; v < c; v++ {
			rank += Binomial(n-1-v, k-1-i)
		}
		prev = c
	}
	return rank
}
