package order

import "cmp"

// Merge returns the ascending merge of two ascending slices. Both cursors
// advance in parallel, each step consuming the smaller head. The merge is
// stable: on ties elements of a precede elements of b.
// Complexity: O(len(a)+len(b)) time, output allocation only.
func Merge[S ~[]E, E cmp.Ordered](a, b S) S {
	out := make(S, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

// MergeInto merges the first n elements of src into dst, whose first m
// elements are ascending and whose length accommodates m+n. The scan runs
// backwards from the last write slot, so no unread element of dst is ever
// overwritten and no extra buffer is needed.
//
// Returns ErrBadCount when m or n lies outside its slice, ErrShortBuffer
// when dst cannot hold m+n elements.
// Complexity: O(m+n) time, O(1) memory.
func MergeInto(dst []int, m int, src []int, n int) error {
	if m < 0 || n < 0 || m > len(dst) || n > len(src) {
		return ErrBadCount
	}
	if len(dst) < m+n {
		return ErrShortBuffer
	}

	r1, r2 := m-1, n-1
	for w := m + n - 1; r2 >= 0; w-- {
		if r1 >= 0 && dst[r1] > src[r2] {
			dst[w] = dst[r1]
			r1--
		} else {
			dst[w] = src[r2]
			r2--
		}
	}

	return nil
}
