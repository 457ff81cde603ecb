package window

import "github.com/katalvlaran/lvlseq/scan"

// MinLenAtLeast returns the length of the shortest window of nums whose sum
// is at least target, 0 when no window reaches it. nums must be
// non-negative; a negative element breaks the shrink-restores-the-bound
// property and returns ErrNegativeElement.
//
// The window grows until the sum reaches target, then candidate lengths are
// recorded while it shrinks back below. A target below 1 is met by the
// empty window, so the result is 0 without scanning.
// Complexity: O(n) time, O(1) memory.
func MinLenAtLeast(nums []int, target int) (int, error) {
	for _, v := range nums {
		if v < 0 {
			return 0, ErrNegativeElement
		}
	}
	if target < 1 {
		return 0, nil
	}

	sum, best := 0, 0
	_, err := scan.Window(len(nums), scan.WindowHooks{
		Add: func(i int) { sum += nums[i] },
		Remove: func(lo, hi int) {
			// The departing window [lo, hi] still has sum >= target.
			if w := hi - lo + 1; best == 0 || w < best {
				best = w
			}
			sum -= nums[lo]
		},
		Within: func() bool { return sum < target },
	})
	if err != nil {
		return 0, err
	}

	return best, nil
}

// MaxSumFixed returns the largest sum among windows of exactly k elements.
// Negative elements are fine here: the aggregate kept monotonic is the
// window size, not the sum. Returns ErrBadWindowSize when k is outside
// 1..len(nums).
// Complexity: O(n) time, O(1) memory.
func MaxSumFixed(nums []int, k int) (int, error) {
	if k < 1 || k > len(nums) {
		return 0, ErrBadWindowSize
	}

	sum, size, best := 0, 0, 0
	first := true
	_, err := scan.Window(len(nums), scan.WindowHooks{
		Add: func(i int) { sum += nums[i]; size++ },
		Remove: func(lo, _ int) {
			sum -= nums[lo]
			size--
		},
		Within: func() bool { return size <= k },
		Emit: func(lo, hi int) {
			if hi-lo+1 == k && (first || sum > best) {
				best, first = sum, false
			}
		},
	})
	if err != nil {
		return 0, err
	}

	return best, nil
}
