package scan

// FastSlow runs Floyd's two-rate scan over a link-traversable structure.
//
// Both cursors start at start; per iteration the fast cursor advances two
// steps and the slow cursor one. next must be non-nil and is never invoked
// on terminal. The cursors coincide if and only if a cycle is reachable
// from start:
//
//   - cyclic:  returns (meeting point, true). The meeting point lies on the
//     cycle, within one traversal of the cycle length.
//   - acyclic: returns (terminal, false) once the fast cursor reaches
//     terminal, within ⌈n/2⌉ iterations for n reachable elements.
//
// Complexity: O(n) time, O(1) memory.
func FastSlow[T comparable](start, terminal T, next func(T) T) (T, bool) {
	if start == terminal {
		return terminal, false
	}

	slow, fast := start, start
	for {
		fast = next(fast)
		if fast == terminal {
			return terminal, false
		}
		fast = next(fast)
		if fast == terminal {
			return terminal, false
		}
		slow = next(slow)
		if slow == fast {
			return slow, true
		}
	}
}
