package doc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEytzingerPermutation_Known(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{}},
		{1, []int{0}},
		{2, []int{1, 0}},
		{3, []int{1, 0, 2}},
		// In-order walk of the 7-node complete tree visits nodes
		// 4,2,5,1,6,3,7; the permutation records each node's rank.
		{7, []int{3, 1, 5, 0, 2, 4, 6}},
		{10, []int{6, 3, 8, 1, 5, 7, 9, 0, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			require.Equal(t, tt.want, eytzingerPermutation(tt.n))
		})
	}
}

func TestEytzingerPermutation_IsPermutation(t *testing.T) {
	for _, n := range []int{1, 2, 15, 16, 17, 63, 64, 65, 1000} {
		perm := eytzingerPermutation(n)
		require.Len(t, perm, n)

		seen := make([]bool, n)
		for _, rank := range perm {
			require.GreaterOrEqual(t, rank, 0)
			require.Less(t, rank, n)
			require.False(t, seen[rank], "rank %d appears twice for n=%d", rank, n)
			seen[rank] = true
		}
	}
}

func TestEytzingerInorder_VisitsRanksAscending(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 10, 100, 1000} {
		perm := eytzingerPermutation(n)

		next := 0
		eytzingerInorder(n, func(pos int) bool {
			require.Equal(t, next, perm[pos], "n=%d", n)
			next++

			return true
		})
		require.Equal(t, n, next, "in-order walk covers all %d nodes", n)
	}
}

func TestEytzingerInorder_EarlyStop(t *testing.T) {
	visited := 0
	eytzingerInorder(100, func(pos int) bool {
		visited++
		return visited < 5
	})
	require.Equal(t, 5, visited)
}
