package window

import "github.com/katalvlaran/lvlseq/scan"

// Anagrams returns the start indices of every substring of s that is a
// permutation of pattern, in ascending order. Matching is byte-wise and
// case-sensitive. An empty pattern, or one longer than s, matches nothing
// and yields nil.
//
// The window is held at len(pattern) bytes by the size aggregate; a
// mismatch counter over the 256 byte frequencies tells in O(1) whether the
// current window is a permutation.
// Complexity: O(n) time, O(1) memory.
func Anagrams(s, pattern string) []int {
	m := len(pattern)
	if m == 0 || m > len(s) {
		return nil
	}

	var need, have [256]int
	for i := 0; i < m; i++ {
		need[pattern[i]]++
	}
	mismatched := 0
	for c := 0; c < 256; c++ {
		if need[c] != 0 {
			mismatched++
		}
	}

	// shift moves byte c's window count by d and keeps the number of
	// bytes whose counts disagree with pattern's in sync.
	shift := func(c byte, d int) {
		if have[c] == need[c] {
			mismatched++
		}
		have[c] += d
		if have[c] == need[c] {
			mismatched--
		}
	}

	size := 0
	var starts []int
	_, _ = scan.Window(len(s), scan.WindowHooks{
		Add: func(i int) {
			shift(s[i], 1)
			size++
		},
		Remove: func(lo, _ int) {
			shift(s[lo], -1)
			size--
		},
		Within: func() bool { return size <= m },
		Emit: func(lo, hi int) {
			if hi-lo+1 == m && mismatched == 0 {
				starts = append(starts, lo)
			}
		},
	})

	return starts
}
