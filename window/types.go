// Package window - sentinel errors shared by the sliding-window scans.
package window

import "errors"

// Sentinel errors for precondition violations. Each names the monotonicity
// assumption it guards; a violated assumption is reported, never silently
// worked around.
var (
	// ErrNegativeElement indicates a sum-bounded scan received a negative
	// element; sums are monotonic in window size only for non-negatives.
	ErrNegativeElement = errors.New("window: sum scans require non-negative elements")

	// ErrNonPositiveElement indicates a product-bounded scan received an
	// element ≤ 0; products are monotonic only for strictly positive input.
	ErrNonPositiveElement = errors.New("window: product scans require strictly positive elements")

	// ErrBadLimit indicates a negative distinct-value limit.
	ErrBadLimit = errors.New("window: distinct limit must not be negative")

	// ErrBadWindowSize indicates a fixed window size outside 1..len(nums).
	ErrBadWindowSize = errors.New("window: fixed window size must be within 1..len(nums)")
)
