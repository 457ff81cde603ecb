package collide

import "github.com/katalvlaran/lvlseq/scan"

// Partition3 rearranges nums around pivot in one pass (Dutch national flag)
// and returns the zone boundaries lt and gt:
//
//	nums[:lt]   < pivot
//	nums[lt:gt] == pivot
//	nums[gt:]   > pivot
//
// The equal zone may be empty (lt == gt) when pivot is absent. Order within
// the zones is not preserved.
// Complexity: O(n) time, O(1) memory.
func Partition3(nums []int, pivot int) (lt, gt int) {
	lt, gt = 0, len(nums)
	for i := 0; i < gt; {
		switch {
		case nums[i] < pivot:
			nums[i], nums[lt] = nums[lt], nums[i]
			lt++
			i++
		case nums[i] > pivot:
			gt--
			nums[i], nums[gt] = nums[gt], nums[i]
		default:
			i++
		}
	}

	return lt, gt
}

// Reverse reverses s in place by swapping symmetric positions until the
// cursors meet.
// Complexity: O(n) time, O(1) memory.
func Reverse[S ~[]E, E any](s S) {
	_, _ = scan.Collision(len(s), func(lo, hi int) scan.Verdict {
		s[lo], s[hi] = s[hi], s[lo]
		return scan.AdvanceBoth
	})
}
