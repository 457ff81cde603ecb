package scan

// ReadWrite runs a read/write compaction scan over s.
//
// The read cursor visits every element once; the write cursor trails behind
// and only advances when keep answers true, overwriting the prefix of s with
// the kept elements in their original order. The returned slice shares s's
// backing array and holds exactly the kept elements; the tail beyond it is
// left as-is.
//
// The write cursor never passes the read cursor, so the scan is idempotent:
// running it again over its own result is a no-op. keep must be non-nil.
//
// Complexity: O(n) time, O(1) memory.
func ReadWrite[S ~[]E, E any](s S, keep func(i int, v E) bool) S {
	w := 0
	for i, v := range s {
		if keep(i, v) {
			s[w] = v
			w++
		}
	}

	return s[:w]
}
