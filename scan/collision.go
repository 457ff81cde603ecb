package scan

// Collision runs a collision-mode scan over a sequence of length n.
//
// Two cursors start at the opposite ends (lo=0, hi=n-1) and move toward
// each other; rule is consulted once per step and decides which cursor
// advances. The loop body never sees lo >= hi, so all elements outside
// [lo, hi] have already been classified by earlier verdicts.
//
// Sequences of length 0 or 1 terminate without invoking the rule.
//
// Complexity: O(n) time, O(1) memory. Iterations ≤ n−1; a rule that always
// answers AdvanceBoth finishes within ⌈n/2⌉ iterations.
func Collision(n int, rule CollisionRule) (CollisionStats, error) {
	if n < 0 {
		return CollisionStats{}, ErrNegativeLength
	}
	if rule == nil {
		return CollisionStats{}, ErrNilRule
	}

	st := CollisionStats{Left: 0, Right: n - 1}
	for st.Left < st.Right {
		st.Iterations++
		switch rule(st.Left, st.Right) {
		case AdvanceLeft:
			st.Left++
		case AdvanceRight:
			st.Right--
		case AdvanceBoth:
			st.Left++
			st.Right--
		case Stop:
			return st, nil
		default:
			return st, ErrBadVerdict
		}
	}

	return st, nil
}
