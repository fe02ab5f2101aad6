// Package powgo searches for a fixed-size set of integers maximizing the
// number of member pairs whose sum is a power of two.
//
// The engine generates a pool of power triplets (integers whose pairwise
// sums are all powers of two), enumerates k-subsets of that pool, seeds a
// candidate number set from each subset, and refines every candidate with a
// stack-driven local search. The subset enumeration is partitioned by fixed
// index prefixes into independent work units that a pool of workers claims
// from a shared atomic counter, while a monitor goroutine reports progress.
//
// # Quick Start
//
//	engine, _ := powgo.New(
//	    powgo.WithTripletCount(35),
//	    powgo.WithLevels(1),
//	)
//
//	result, _ := engine.Search(ctx, 10)
//	fmt.Println(result.Numbers, result.PairCount)
//	for _, p := range result.Pairs {
//	    fmt.Printf("%d+%d=%d\n", p.A, p.B, p.Sum())
//	}
//
// The simplified mode skips triplet enumeration and refines an odd-number
// ladder instead:
//
//	result, _ := engine.Simple(ctx, 10)
//
// # Determinism
//
// For fixed options and set size, Search returns the same result regardless
// of worker count or timing: work units are independent, and the final
// reduction scans them in index order.
package powgo
