// Package power provides the power-of-two predicate, the canonical pair and
// triplet value types, and the triplet generator that seeds the search.
//
// A "power pair" is two distinct integers whose sum is a power of two. A
// "power triplet" is three integers whose three pairwise sums are all powers
// of two. Triplets are the raw material of the search: any subset of triplets
// seeds a candidate number set with members that already carry several power
// pairs.
package power

import "fmt"

// MaxExponent is the largest exponent a Table can carry without overflowing
// int64 arithmetic on pairwise sums.
const MaxExponent = 62

// DefaultExponent is the default table size. It covers every magnitude the
// generator produces at practical search radii.
const DefaultExponent = 20

// ErrInvalidExponent indicates a table exponent outside [0, MaxExponent].
type ErrInvalidExponent struct {
	Exponent int
}

func (e *ErrInvalidExponent) Error() string {
	return fmt.Sprintf("invalid table exponent: %d (must be in [0, %d])", e.Exponent, MaxExponent)
}

// Table is an immutable, ascending list of the powers of two 2^0 .. 2^maxExp.
//
// Build one Table at startup and pass it by reference to every component that
// scans powers (generator, improver, simplified search). Membership checks
// never consult the table; they use the bitwise predicate IsPowerOfTwo, so
// correctness does not depend on table coverage.
type Table struct {
	powers []int64
}

// NewTable builds a table of the powers 2^0 .. 2^maxExp.
func NewTable(maxExp int) (*Table, error) {
	if maxExp < 0 || maxExp > MaxExponent {
		return nil, &ErrInvalidExponent{Exponent: maxExp}
	}

	powers := make([]int64, 0, maxExp+1)
	for exp := 0; exp <= maxExp; exp++ {
		powers = append(powers, int64(1)<<exp)
	}

	return &Table{powers: powers}, nil
}

// MustTable is NewTable panicking on error. Use for compile-time-constant
// exponents.
func MustTable(maxExp int) *Table {
	t, err := NewTable(maxExp)
	if err != nil {
		panic(err)
	}
	return t
}

// Powers returns the ascending powers of two. The returned slice is shared;
// callers must not modify it.
func (t *Table) Powers() []int64 {
	return t.powers
}

// Max returns the largest power in the table.
func (t *Table) Max() int64 {
	return t.powers[len(t.powers)-1]
}

// Len returns the number of powers in the table.
func (t *Table) Len() int {
	return len(t.powers)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int64) bool {
	return n > 0 && n&(n-1) == 0
}
