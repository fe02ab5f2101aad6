package combin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want uint64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
		{5, 1, 5},
		{5, 3, 10},
		{6, 3, 20},
		{10, 4, 210},
		{52, 5, 2598960},
		{5, 6, 0},
		{5, -1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Binomial(tt.n, tt.k), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestRank(t *testing.T) {
	assert.Equal(t, uint64(0), Rank([]int{0, 1, 2}, 5))
	assert.Equal(t, uint64(9), Rank([]int{2, 3, 4}, 5))
	assert.Equal(t, uint64(1), Rank([]int{0, 1, 3}, 5))
}
