package collide

import "github.com/katalvlaran/lvlseq/scan"

// IsPalindrome reports whether s reads the same forwards and backwards,
// byte for byte. The empty string is a palindrome.
// Complexity: O(n) time, O(1) memory.
func IsPalindrome(s string) bool {
	st, _ := scan.Collision(len(s), func(lo, hi int) scan.Verdict {
		if s[lo] != s[hi] {
			return scan.Stop
		}
		return scan.AdvanceBoth
	})

	return st.Exhausted()
}

// IsPalindromeFold reports whether s is a palindrome over its ASCII
// alphanumeric bytes only, ignoring case. Cursors skip punctuation and
// spaces independently, so "A man, a plan, a canal: Panama" qualifies.
// A string with no alphanumeric bytes is a palindrome.
// Complexity: O(n) time, O(1) memory.
func IsPalindromeFold(s string) bool {
	st, _ := scan.Collision(len(s), func(lo, hi int) scan.Verdict {
		switch {
		case !isAlnum(s[lo]):
			return scan.AdvanceLeft
		case !isAlnum(s[hi]):
			return scan.AdvanceRight
		case fold(s[lo]) != fold(s[hi]):
			return scan.Stop
		default:
			return scan.AdvanceBoth
		}
	})

	return st.Exhausted()
}

// isAlnum reports whether b is an ASCII letter or digit.
func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// fold lowercases an ASCII letter; other bytes pass through unchanged.
func fold(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}

	return b
}
