package compact

import (
	"errors"

	"github.com/katalvlaran/lvlseq/scan"
)

// ErrBadKeepCount indicates DedupN was asked to keep fewer than one element
// per run.
var ErrBadKeepCount = errors.New("compact: keep count must be at least 1")

// Filter compacts s in place to the elements satisfying keep, preserving
// their order, and returns the shortened slice aliasing s.
// Complexity: O(n) time, O(1) memory.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	return scan.ReadWrite(s, func(_ int, v E) bool { return keep(v) })
}

// Remove compacts s in place, dropping every element equal to v.
// Complexity: O(n) time, O(1) memory.
func Remove[S ~[]E, E comparable](s S, v E) S {
	return Filter(s, func(e E) bool { return e != v })
}

// Dedup compacts s in place, collapsing each run of adjacent equal elements
// to its first element. On ascending input this removes all duplicates.
// Complexity: O(n) time, O(1) memory.
func Dedup[S ~[]E, E comparable](s S) S {
	var last E
	kept := false

	return scan.ReadWrite(s, func(_ int, v E) bool {
		if kept && v == last {
			return false
		}
		last, kept = v, true

		return true
	})
}

// DedupN compacts s in place, keeping at most n elements of each run of
// adjacent equal values. Returns ErrBadKeepCount when n < 1.
// Complexity: O(n) time, O(1) memory.
func DedupN[S ~[]E, E comparable](s S, n int) (S, error) {
	if n < 1 {
		return nil, ErrBadKeepCount
	}

	var last E
	run := 0
	out := scan.ReadWrite(s, func(_ int, v E) bool {
		if run > 0 && v == last {
			if run == n {
				return false
			}
			run++

			return true
		}
		last, run = v, 1

		return true
	})

	return out, nil
}

// MoveZeros migrates every zero of nums to the tail in place, preserving
// the order of the non-zero elements.
// Complexity: O(n) time, O(1) memory.
func MoveZeros(nums []int) {
	kept := scan.ReadWrite(nums, func(_ int, v int) bool { return v != 0 })
	for i := len(kept); i < len(nums); i++ {
		nums[i] = 0
	}
}
