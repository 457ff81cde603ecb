// Package order covers the corpus's ordering problems that run on cursor
// pairs rather than a full sort: merging ascending sequences and selecting
// order statistics.
//
// What:
//
//   - Merge: stable parallel-advance merge of two ascending slices into a
//     fresh one.
//   - MergeInto: the in-place corpus form; merges backwards from the last
//     slot so the buffer needs no copy.
//   - SelectKth: k-th smallest via quickselect partitioning, expected O(n).
//
// Structural misuse (ranks or counts outside their slices, a destination too
// short to merge into) is a sentinel error; see types.go.
//
// Errors:
//
//   - ErrBadRank      selection rank outside 1..len(nums)
//   - ErrBadCount     merge count outside its slice
//   - ErrShortBuffer  merge destination shorter than m+n
package order
