// Package window solves bounded-aggregate problems over int slices and
// strings with a sliding cursor pair: the right cursor grows the window and
// feeds an aggregate, the left cursor shrinks it whenever the aggregate
// breaks its bound.
//
// What:
//
//   - MinLenAtLeast: shortest window whose sum reaches a target.
//   - MaxSumFixed: largest sum among windows of exactly k elements.
//   - CountProductBelow: how many windows keep their product under a bound.
//   - LongestDistinct / LongestDistinctString: widest window of pairwise
//     distinct elements (longest substring without repeating characters).
//   - LongestAtMostK: widest window with at most k distinct values.
//   - Anagrams: start indices of every window of s that is an anagram of a
//     pattern.
//
// The technique is sound only while the aggregate is monotonic in window
// size, so the preconditions are enforced, not assumed: a negative element
// under a sum bound is ErrNegativeElement, a non-positive element under a
// product bound is ErrNonPositiveElement. Absence of a result is a plain
// sentinel value (0 or nil), never an error.
//
// Every element enters the window exactly once and leaves at most once, so
// all scans are O(n) time; memory is O(1) except for the distinct-counting
// scans, which carry a frequency table of the window's contents.
//
// Errors:
//
//   - ErrNegativeElement     sum scan over negative input
//   - ErrNonPositiveElement  product scan over input ≤ 0
//   - ErrBadLimit            negative distinct limit
//   - ErrBadWindowSize       fixed window size outside 1..len(nums)
package window
