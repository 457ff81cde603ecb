package order

// SelectKth returns the k-th smallest element of nums (1-based) by
// quickselect: partition around a pivot, then recurse into the single side
// holding rank k. nums is permuted in place; callers needing the original
// order must pass a copy. Returns ErrBadRank when k is outside 1..len(nums).
//
// Complexity: expected O(n) time with median-of-three pivots, O(1) memory.
// Adversarial input (or long runs of equal values) degrades to O(n²).
func SelectKth(nums []int, k int) (int, error) {
	if k < 1 || k > len(nums) {
		return 0, ErrBadRank
	}

	lo, hi, idx := 0, len(nums)-1, k-1
	for lo < hi {
		p := partition(nums, lo, hi)
		switch {
		case idx == p:
			return nums[p], nil
		case idx < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}

	return nums[idx], nil
}

// partition applies Lomuto's scheme around a median-of-three pivot swapped
// into hi, returning the pivot's final position. Elements below the pivot
// end up left of it, the rest right of it.
func partition(nums []int, lo, hi int) int {
	if hi-lo > 2 {
		if m := median3(nums, lo, lo+(hi-lo)/2, hi); m != hi {
			nums[m], nums[hi] = nums[hi], nums[m]
		}
	}

	pivot := nums[hi]
	w := lo
	for r := lo; r < hi; r++ {
		if nums[r] < pivot {
			nums[r], nums[w] = nums[w], nums[r]
			w++
		}
	}
	nums[w], nums[hi] = nums[hi], nums[w]

	return w
}

// median3 returns the index holding the median of nums[a], nums[b], nums[c].
func median3(nums []int, a, b, c int) int {
	ab, bc, ac := nums[a] < nums[b], nums[b] < nums[c], nums[a] < nums[c]
	switch {
	case ab == bc:
		return b
	case ab == ac:
		return c
	default:
		return a
	}
}
