// Package compact rewrites slices in place with a read/write cursor pair:
// the read cursor visits every element once, the write cursor trails behind
// and receives the keepers, so a sequence is filtered without allocating.
//
// What:
//
//   - Filter: keep the elements satisfying a predicate.
//   - Remove: drop every occurrence of one value.
//   - Dedup: collapse adjacent duplicate runs to a single element.
//   - DedupN: cap adjacent duplicate runs at n elements.
//   - MoveZeros: migrate zeros to the tail, keeping the rest in order.
//
// All operations preserve the relative order of kept elements, run in O(n)
// time with O(1) auxiliary memory, and are idempotent: compacting an
// already-compacted slice changes nothing. Results alias the input's
// backing array; the tail beyond the returned length is unspecified except
// for MoveZeros, which defines it as zeros.
package compact
