package search

// FirstTrue returns the least index in [0, n) where pred holds, or n when
// pred holds nowhere. pred must be monotonic: once true at some index, true
// at every index above it. Negative n is treated as 0.
//
// The midpoint is computed through uint so lo+hi cannot wrap negative.
func FirstTrue(n int, pred func(int) bool) int {
	if n < 0 {
		n = 0
	}

	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if pred(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// FirstBad returns the first bad version in 1..n, or -1 when every version
// is good. isBad must be monotonic: versions stay bad once broken.
func FirstBad(n int, isBad func(int) bool) int {
	if n < 1 {
		return -1
	}
	if v := FirstTrue(n, func(i int) bool { return isBad(i + 1) }); v < n {
		return v + 1
	}

	return -1
}

// Index returns the position of target in an ascending slice, -1 when
// absent. With duplicates it lands on the first occurrence, since it bisects
// for the lower bound.
func Index(sorted []int, target int) int {
	i := FirstTrue(len(sorted), func(k int) bool { return sorted[k] >= target })
	if i == len(sorted) || sorted[i] != target {
		return -1
	}

	return i
}

// Range returns the first and last positions of target in an ascending
// slice, (-1, -1) when absent.
func Range(sorted []int, target int) (int, int) {
	first := Index(sorted, target)
	if first == -1 {
		return -1, -1
	}
	last := FirstTrue(len(sorted), func(k int) bool { return sorted[k] > target }) - 1

	return first, last
}
