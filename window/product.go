package window

import "github.com/katalvlaran/lvlseq/scan"

// CountProductBelow returns how many contiguous windows of nums have a
// product strictly below bound. Every emitted window [lo, hi] is maximal,
// so it alone accounts for the hi-lo+1 valid windows ending at hi.
//
// nums must be strictly positive: a zero or negative element makes the
// product non-monotonic in window size and returns ErrNonPositiveElement.
// A bound of 1 or less can never be satisfied (products of positive ints
// are at least 1), so the count is 0 without scanning.
// Complexity: O(n) time, O(1) memory.
func CountProductBelow(nums []int, bound int) (int, error) {
	for _, v := range nums {
		if v <= 0 {
			return 0, ErrNonPositiveElement
		}
	}
	if bound <= 1 {
		return 0, nil
	}

	count, prod := 0, 1
	_, err := scan.Window(len(nums), scan.WindowHooks{
		Add:    func(i int) { prod *= nums[i] },
		Remove: func(lo, _ int) { prod /= nums[lo] },
		Within: func() bool { return prod < bound },
		Emit: func(lo, hi int) {
			if lo <= hi {
				count += hi - lo + 1
			}
		},
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
