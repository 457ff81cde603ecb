package scan

// Window runs a sliding-window scan over a sequence of length n.
//
// The right cursor expands the window one element at a time, calling
// hooks.Add for each entrant. After every expansion the left cursor
// contracts the window while hooks.Within reports a violated bound, calling
// hooks.Remove for each departure; Remove still sees the departing index
// inside the window, so "shrink while valid" problems can record candidates
// there. Once the bound holds, hooks.Emit receives the maximal valid window
// ending at the current right cursor.
//
// The aggregate must be monotonic in window size: an empty window must
// satisfy the bound. If contraction empties the window without restoring
// it, the scan aborts with ErrNoProgress rather than guessing - see
// lvlseq/window for the precondition errors built on this behavior.
//
// Complexity: O(n) time; each element is added exactly once and removed at
// most once.
func Window(n int, hooks WindowHooks) (WindowStats, error) {
	if n < 0 {
		return WindowStats{}, ErrNegativeLength
	}
	if hooks.Add == nil || hooks.Remove == nil || hooks.Within == nil {
		return WindowStats{}, ErrNilHook
	}
	if hooks.Emit == nil {
		hooks.Emit = func(int, int) {}
	}

	var st WindowStats
	lo := 0
	for hi := 0; hi < n; hi++ {
		hooks.Add(hi)
		st.Expansions++
		for !hooks.Within() {
			if lo > hi {
				return st, ErrNoProgress
			}
			hooks.Remove(lo, hi)
			lo++
			st.Contractions++
		}
		hooks.Emit(lo, hi)
	}

	return st, nil
}
