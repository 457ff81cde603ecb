package subseq

import "github.com/katalvlaran/lvlseq/search"

// LongestIncreasing — patience longest increasing subsequence
//
// Description:
//
//	Each element lands on the leftmost pile whose tail does not precede it,
//	replacing that tail; a new pile opens when no pile qualifies. The pile
//	count equals the optimal subsequence length, and recording which tail
//	each element landed behind allows one optimal subsequence to be rebuilt
//	backwards.
//
// Algorithm outline:
//  1. tails[p] holds the index of the smallest tail among increasing
//     subsequences of length p+1; tails is ordered by value, so the pile
//     for each element is found by bisection (search.FirstTrue).
//  2. Strict mode bisects for the first tail >= v, non-decreasing mode for
//     the first tail > v.
//  3. With TrackPredecessors on, prev[i] remembers the tail one pile to the
//     left when i landed, -1 for the first pile.
//  4. With ReturnSequence on, walk prev from the last pile's tail to rebuild
//     one optimal subsequence.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n) tracking, O(k) piles otherwise
//
// Errors:
//   - ErrEmptyInput          — empty nums.
//   - ErrSequenceNeedsTrack  — ReturnSequence without TrackPredecessors.
//
// nil opts means DefaultLISOptions. The returned slice is nil unless
// ReturnSequence is set.
func LongestIncreasing(nums []int, opts *LISOptions) (int, []int, error) {
	if len(nums) == 0 {
		return 0, nil, ErrEmptyInput
	}

	o := DefaultLISOptions()
	if opts != nil {
		o = *opts
	}
	if o.ReturnSequence && !o.TrackPredecessors {
		return 0, nil, ErrSequenceNeedsTrack
	}

	tails := make([]int, 0, len(nums))
	var prev []int
	if o.TrackPredecessors {
		prev = make([]int, len(nums))
	}

	for i, v := range nums {
		p := search.FirstTrue(len(tails), func(k int) bool {
			if o.Strict {
				return nums[tails[k]] >= v
			}
			return nums[tails[k]] > v
		})
		if o.TrackPredecessors {
			if p > 0 {
				prev[i] = tails[p-1]
			} else {
				prev[i] = -1
			}
		}
		if p == len(tails) {
			tails = append(tails, i)
		} else {
			tails[p] = i
		}
	}

	length := len(tails)
	if !o.ReturnSequence {
		return length, nil, nil
	}

	lis := make([]int, length)
	at := tails[length-1]
	for i := length - 1; i >= 0; i-- {
		lis[i] = nums[at]
		at = prev[at]
	}

	return length, lis, nil
}
