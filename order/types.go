// Package order - sentinel errors for the ordering scans.
package order

import "errors"

var (
	// ErrBadRank indicates a selection rank outside 1..len(nums).
	ErrBadRank = errors.New("order: rank must be within 1..len(nums)")

	// ErrBadCount indicates a merge element count outside its slice bounds.
	ErrBadCount = errors.New("order: element counts must be within the slice bounds")

	// ErrShortBuffer indicates the merge destination cannot hold m+n
	// elements.
	ErrShortBuffer = errors.New("order: destination must hold m+n elements")
)
