package power

// Pair is an unordered pair of distinct integers whose sum is a power of two,
// canonicalized so that A <= B. Pairs are comparable and usable as map keys.
type Pair struct {
	A, B int64
}

// NewPair canonicalizes (i, j) into a Pair.
func NewPair(i, j int64) Pair {
	if i > j {
		i, j = j, i
	}
	return Pair{A: i, B: j}
}

// Sum returns A + B.
func (p Pair) Sum() int64 {
	return p.A + p.B
}

// Triplet is an unordered triple of integers whose three pairwise sums are
// all powers of two, canonicalized so that A <= B <= C. Triplets are
// comparable and usable as map keys.
type Triplet struct {
	A, B, C int64
}

// NewTriplet canonicalizes (i, j, k) into a Triplet.
func NewTriplet(i, j, k int64) Triplet {
	a := min(i, j, k)
	c := max(i, j, k)
	return Triplet{A: a, B: i + j + k - a - c, C: c}
}

// Overlaps reports whether t and other share at least one member. Identical
// triplets do not count as overlapping.
func (t Triplet) Overlaps(other Triplet) bool {
	if t == other {
		return false
	}

	return t.A == other.A || t.A == other.B || t.A == other.C ||
		t.B == other.A || t.B == other.B || t.B == other.C ||
		t.C == other.A || t.C == other.B || t.C == other.C
}

// SharedMembers returns how many members t shares with other. A full
// three-member match collapses to zero: identical triplets never count as
// overlapping.
func (t Triplet) SharedMembers(other Triplet) int {
	count := b2i(t.A == other.A) + b2i(t.A == other.B) + b2i(t.A == other.C) +
		b2i(t.B == other.A) + b2i(t.B == other.B) + b2i(t.B == other.C) +
		b2i(t.C == other.A) + b2i(t.C == other.B) + b2i(t.C == other.C)

	if count == 3 {
		return 0
	}
	return count
}

// Less orders triplets lexicographically by (A, B, C).
func (t Triplet) Less(other Triplet) bool {
	if t.A != other.A {
		return t.A < other.A
	}
	if t.B != other.B {
		return t.B < other.B
	}
	return t.C < other.C
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
