package collide

import (
	"errors"
	"slices"

	"github.com/katalvlaran/lvlseq/scan"
)

// ErrUnsorted indicates a descending neighbor pair was observed in input
// documented as ascending. Detection is best-effort: only positions the
// cursors actually travelled are inspected, so a violation hidden in the
// untravelled middle may go unnoticed.
var ErrUnsorted = errors.New("collide: input slice is not sorted ascending")

// PairSum returns the indices i < j of two elements of sorted summing to
// target. sorted must be ascending.
//
// The collision rule compares the outermost untried pair: a sum below target
// can only be fixed by a larger left element, a sum above only by a smaller
// right one, so each step discards one index for good.
//
// Returns (-1, -1, nil) when no pair sums to target and ErrUnsorted when a
// descent is observed among the travelled elements.
// Complexity: O(n) time, O(1) memory.
func PairSum(sorted []int, target int) (int, int, error) {
	i, j := -1, -1
	var scanErr error
	_, err := scan.Collision(len(sorted), func(lo, hi int) scan.Verdict {
		switch sum := sorted[lo] + sorted[hi]; {
		case sum == target:
			i, j = lo, hi
			return scan.Stop
		case sum < target:
			if sorted[lo] > sorted[lo+1] {
				scanErr = ErrUnsorted
				return scan.Stop
			}
			return scan.AdvanceLeft
		default:
			if sorted[hi-1] > sorted[hi] {
				scanErr = ErrUnsorted
				return scan.Stop
			}
			return scan.AdvanceRight
		}
	})
	if err != nil {
		return -1, -1, err
	}
	if scanErr != nil {
		return -1, -1, scanErr
	}

	return i, j, nil
}

// TripletSum returns all unique value triplets of nums summing to target,
// each ascending, in lexicographic order. The input is not modified: the
// scan sorts a copy, anchors the smallest element, and runs a collision
// scan over the suffix for the remaining pair.
//
// Returns nil when no triplet sums to target.
// Complexity: O(n²) time, O(n) memory for the sorted copy.
func TripletSum(nums []int, target int) [][3]int {
	if len(nums) < 3 {
		return nil
	}
	sorted := make([]int, len(nums))
	copy(sorted, nums)
	slices.Sort(sorted)

	var out [][3]int
	for a := 0; a+2 < len(sorted); a++ {
		if a > 0 && sorted[a] == sorted[a-1] {
			continue // same anchor value already exhausted
		}
		rest := target - sorted[a]
		base := a + 1
		_, _ = scan.Collision(len(sorted)-base, func(lo, hi int) scan.Verdict {
			l, r := sorted[base+lo], sorted[base+hi]
			switch sum := l + r; {
			case sum == rest:
				t := [3]int{sorted[a], l, r}
				if len(out) == 0 || out[len(out)-1] != t {
					out = append(out, t)
				}
				return scan.AdvanceBoth
			case sum < rest:
				return scan.AdvanceLeft
			default:
				return scan.AdvanceRight
			}
		})
	}

	return out
}

// MaxArea returns the largest rectangle area formed by two of the heights
// and the x-distance between them (container-with-most-water). heights are
// vertical line heights at x = 0..n-1 and must be non-negative.
//
// The rule always advances the shorter side: keeping it can never beat the
// current area, because any narrower container is capped by the same height.
//
// Returns 0 for fewer than two heights.
// Complexity: O(n) time, O(1) memory.
func MaxArea(heights []int) int {
	best := 0
	_, _ = scan.Collision(len(heights), func(lo, hi int) scan.Verdict {
		h := min(heights[lo], heights[hi])
		if area := h * (hi - lo); area > best {
			best = area
		}
		if heights[lo] <= heights[hi] {
			return scan.AdvanceLeft
		}
		return scan.AdvanceRight
	})

	return best
}
