// Package subseq holds the corpus's dynamic-programming scans over numeric
// sequences. The DP state is single-use scratch owned by the call; nothing
// is cached between invocations.
//
// What:
//
//   - MaxSum: maximum-sum contiguous subarray (Kadane) with the achieving
//     index range.
//   - LongestIncreasing: patience LIS in O(n log n), strict or
//     non-decreasing, with optional reconstruction of one optimal
//     subsequence.
//
// Why it matters: both are linear scans in disguise. Kadane is a running
// aggregate with a restart rule; patience LIS is a scanning cursor whose
// per-element decision is itself a bounded bisection (search.FirstTrue over
// the pile tails).
//
// Reconstruction needs the predecessor table, so requesting a sequence with
// tracking disabled is refused with ErrSequenceNeedsTrack rather than
// silently re-enabling the memory.
//
// Errors:
//
//   - ErrEmptyInput          empty input slice
//   - ErrSequenceNeedsTrack  ReturnSequence without TrackPredecessors
package subseq
