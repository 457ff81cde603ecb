package subseq

// MaxSum returns the largest sum over all non-empty contiguous subarrays of
// nums, together with the inclusive index range [lo, hi] achieving it. When
// several ranges tie, the earliest one wins. Returns ErrEmptyInput for an
// empty slice: feeding the scan nothing is misuse, not a zero optimum.
//
// A single running sum is kept; once it drops below zero it can only hurt
// any window extended from it, so the run restarts at the current element.
// Complexity: O(n) time, O(1) memory.
func MaxSum(nums []int) (sum, lo, hi int, err error) {
	if len(nums) == 0 {
		return 0, 0, 0, ErrEmptyInput
	}

	sum, lo, hi = nums[0], 0, 0
	run, start := nums[0], 0
	for i := 1; i < len(nums); i++ {
		if run < 0 {
			run, start = nums[i], i
		} else {
			run += nums[i]
		}
		if run > sum {
			sum, lo, hi = run, start, i
		}
	}

	return sum, lo, hi, nil
}
