package improve

import (
	"sort"

	"github.com/hupe1980/powgo/numberset"
	"github.com/hupe1980/powgo/power"
)

// MoveRule derives neighbor candidates from parent and hands each one to
// accept. Rules must only produce candidates whose pair count strictly
// exceeds the parent's; that invariant is what bounds the search.
type MoveRule func(table *power.Table, parent *numberset.Set, accept func(candidate *numberset.Set))

// WithRule selects the move rule.
func WithRule(rule MoveRule) func(o *Options) {
	return func(o *Options) {
		o.Rule = rule
	}
}

// SingleSwapRule is the default move rule: replace one of the worst-degree
// members with a power complement, accepting the first strict improvement.
//
// Every member's pair degree (power pairs with other members) is computed;
// the members attaining the minimum are the swap victims. Candidate
// replacements are p - m for every power p and member m, skipping values
// already in the set. The first replacement whose degree against the
// remaining members strictly exceeds the worst degree is accepted, and the
// rule stops: one accepted move per invocation. Repeated invocations via the
// worklist drive further moves.
func SingleSwapRule(table *power.Table, parent *numberset.Set, accept func(candidate *numberset.Set)) {
	members := parent.Members()
	if len(members) == 0 {
		return
	}

	worst, worstDegree := worstMembers(members)

	for _, p := range table.Powers() {
		for _, m := range members {
			candidate := p - m
			if parent.Contains(candidate) {
				continue
			}

			for _, w := range worst {
				if degreeWithout(members, candidate, w) > worstDegree {
					accept(parent.CloneReplace(w, candidate))
					return
				}
			}
		}
	}
}

// ExhaustiveRule is an alternate, wider move rule: it crosses the most
// promising replacement values with every worst-degree member and pushes all
// strict improvements instead of stopping at the first.
func ExhaustiveRule(table *power.Table, parent *numberset.Set, accept func(candidate *numberset.Set)) {
	members := parent.Members()
	if len(members) == 0 {
		return
	}

	better, betterDegree := bestCandidates(table, parent)
	worst, worstDegree := worstMembers(members)

	if betterDegree <= worstDegree {
		return
	}

	parentPairs := parent.CountPairs()
	for _, b := range better {
		for _, w := range worst {
			improved := parent.CloneReplace(w, b)
			if improved.CountPairs() > parentPairs {
				accept(improved)
			}
		}
	}
}

// worstMembers returns the members with the minimum pair degree, in member
// order, along with that degree.
func worstMembers(members []int64) ([]int64, int) {
	worst := make([]int64, 0, len(members))
	worstDegree := -1

	for _, m := range members {
		degree := 0
		for _, n := range members {
			if n != m && power.IsPowerOfTwo(m+n) {
				degree++
			}
		}

		switch {
		case worstDegree < 0 || degree < worstDegree:
			worst = append(worst[:0], m)
			worstDegree = degree
		case degree == worstDegree:
			worst = append(worst, m)
		}
	}

	return worst, worstDegree
}

// bestCandidates returns the non-member values that would pair with the most
// members, in ascending value order, along with that count.
func bestCandidates(table *power.Table, parent *numberset.Set) ([]int64, int) {
	counts := make(map[int64]int)
	for _, p := range table.Powers() {
		for _, m := range parent.Members() {
			counts[p-m]++
		}
	}

	values := make([]int64, 0, len(counts))
	for v := range counts {
		if parent.Contains(v) {
			continue
		}
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	var better []int64
	betterDegree := 0
	for _, v := range values {
		switch count := counts[v]; {
		case count > betterDegree:
			better = append(better[:0], v)
			betterDegree = count
		case count == betterDegree:
			better = append(better, v)
		}
	}

	return better, betterDegree
}

// degreeWithout counts the power pairs candidate would form with members,
// ignoring the member excluded by the swap.
func degreeWithout(members []int64, candidate, excluded int64) int {
	degree := 0
	for _, n := range members {
		if n != excluded && power.IsPowerOfTwo(n+candidate) {
			degree++
		}
	}
	return degree
}
