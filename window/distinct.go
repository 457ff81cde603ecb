package window

import "github.com/katalvlaran/lvlseq/scan"

// LongestDistinct returns the length of the widest window of s whose
// elements are pairwise distinct. The aggregate is the number of values
// occurring more than once; shrinking always restores it to zero.
// Complexity: O(n) time, O(min(n, distinct values)) memory.
func LongestDistinct[E comparable](s []E) int {
	counts := make(map[E]int, len(s))
	dups, best := 0, 0
	_, _ = scan.Window(len(s), scan.WindowHooks{
		Add: func(i int) {
			counts[s[i]]++
			if counts[s[i]] == 2 {
				dups++
			}
		},
		Remove: func(lo, _ int) {
			counts[s[lo]]--
			if counts[s[lo]] == 1 {
				dups--
			}
		},
		Within: func() bool { return dups == 0 },
		Emit: func(lo, hi int) {
			if w := hi - lo + 1; w > best {
				best = w
			}
		},
	})

	return best
}

// LongestDistinctString returns the length of the longest substring of s
// without repeating bytes — the string form of LongestDistinct with a flat
// 256-entry table instead of a map.
// Complexity: O(n) time, O(1) memory.
func LongestDistinctString(s string) int {
	var counts [256]int
	dups, best := 0, 0
	_, _ = scan.Window(len(s), scan.WindowHooks{
		Add: func(i int) {
			counts[s[i]]++
			if counts[s[i]] == 2 {
				dups++
			}
		},
		Remove: func(lo, _ int) {
			counts[s[lo]]--
			if counts[s[lo]] == 1 {
				dups--
			}
		},
		Within: func() bool { return dups == 0 },
		Emit: func(lo, hi int) {
			if w := hi - lo + 1; w > best {
				best = w
			}
		},
	})

	return best
}

// LongestAtMostK returns the length of the widest window of s holding at
// most k distinct values (the fruit-basket problem for k = 2). k = 0 yields
// 0: only the empty window qualifies. Returns ErrBadLimit for negative k.
// Complexity: O(n) time, O(min(n, k+1)) memory.
func LongestAtMostK[E comparable](s []E, k int) (int, error) {
	if k < 0 {
		return 0, ErrBadLimit
	}

	counts := make(map[E]int, k+1)
	distinct, best := 0, 0
	_, err := scan.Window(len(s), scan.WindowHooks{
		Add: func(i int) {
			if counts[s[i]] == 0 {
				distinct++
			}
			counts[s[i]]++
		},
		Remove: func(lo, _ int) {
			counts[s[lo]]--
			if counts[s[lo]] == 0 {
				distinct--
			}
		},
		Within: func() bool { return distinct <= k },
		Emit: func(lo, hi int) {
			if w := hi - lo + 1; w > best {
				best = w
			}
		},
	})
	if err != nil {
		return 0, err
	}

	return best, nil
}
