// Package subseq defines options and sentinel errors for the sequence scans.
package subseq

import "errors"

var (
	// ErrEmptyInput indicates the input slice holds no elements; the
	// queried optimum does not exist.
	ErrEmptyInput = errors.New("subseq: input must be non-empty")

	// ErrSequenceNeedsTrack indicates ReturnSequence was requested with
	// predecessor tracking disabled.
	ErrSequenceNeedsTrack = errors.New("subseq: ReturnSequence requires TrackPredecessors")
)

// LISOptions configures LongestIncreasing.
//
// Fields:
//   - Strict            — require strictly increasing values. When false,
//     equal neighbours may extend a subsequence (non-decreasing mode).
//   - TrackPredecessors — record each element's predecessor pile, the O(n)
//     side table that makes reconstruction possible.
//   - ReturnSequence    — backtrack and return one optimal subsequence.
//     Requires TrackPredecessors.
//
// Example:
//
//	opts := DefaultLISOptions()
//	opts.ReturnSequence = true // we need the values, not just the length
//
//	n, lis, err := LongestIncreasing(nums, &opts)
//	if err != nil {
//	  // handle ErrEmptyInput or ErrSequenceNeedsTrack
//	}
//	fmt.Println("length:", n, "subsequence:", lis)
type LISOptions struct {
	Strict            bool
	TrackPredecessors bool
	ReturnSequence    bool
}

// DefaultLISOptions returns the classic configuration: strict increase with
// predecessor tracking on, reconstruction off.
func DefaultLISOptions() LISOptions {
	return LISOptions{
		Strict:            true,
		TrackPredecessors: true,
		ReturnSequence:    false,
	}
}
