// Package search implements the corpus's bounded bisection scans: two
// cursors converging by halving the interval instead of stepping through it.
//
// What:
//
//   - FirstTrue: least index in [0, n) satisfying a monotonic predicate.
//   - FirstBad: the 1-based first-bad-version wrapper over FirstTrue.
//   - Index / Range: classic binary search and first/last occurrence over an
//     ascending int slice.
//
// The predicate must be monotonic: false on every index below some boundary,
// true from the boundary on. The scans then finish in O(log n) predicate
// calls with O(1) memory.
//
// Absence of a result is a sentinel value, never an error: FirstTrue yields
// n, FirstBad and Index yield -1, Range yields (-1, -1).
package search
