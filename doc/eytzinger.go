package doc

// Eytzinger layout places a complete binary search tree in level order. The
// convention is 1-based heap arithmetic: physical position p (0-based) holds
// heap node k = p+1, whose children are nodes 2k and 2k+1 and whose in-order
// traversal visits keys in ascending order. Lookup descent and the builder's
// permutation below share this convention.

// eytzingerPermutation returns perm where perm[p] is the in-order rank of
// the heap node stored at physical position p. The builder places the
// sorted descriptor with rank perm[p] at position p.
//
// Iterative in-order walk with an explicit stack; the permutation is pure
// index arithmetic and needs no comparisons.
func eytzingerPermutation(n int) []int {
	perm := make([]int, n)
	stack := make([]int, 0, 64)
	rank := 0
	k := 1

	for k <= n || len(stack) > 0 {
		for k <= n {
			stack = append(stack, k)
			k *= 2
		}

		k = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		perm[k-1] = rank
		rank++

		k = 2*k + 1
	}

	return perm
}

// eytzingerInorder walks the physical positions of an n-node Eytzinger
// layout in ascending key order, calling yield for each position until it
// returns false.
func eytzingerInorder(n int, yield func(pos int) bool) {
	stack := make([]int, 0, 64)
	k := 1

	for k <= n || len(stack) > 0 {
		for k <= n {
			stack = append(stack, k)
			k *= 2
		}

		k = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !yield(k - 1) {
			return
		}

		k = 2*k + 1
	}
}
