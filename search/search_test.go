package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlseq/search"
)

// TestFirstTrue covers boundaries at both ends, in the middle, and the n
// sentinel when the predicate never holds.
func TestFirstTrue(t *testing.T) {
	cases := []struct {
		name     string
		n        int
		boundary int // pred(i) == i >= boundary
		want     int
	}{
		{"middle", 10, 6, 6},
		{"first", 10, 0, 0},
		{"last", 10, 9, 9},
		{"never", 10, 10, 10},
		{"empty domain", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := search.FirstTrue(tc.n, func(i int) bool { return i >= tc.boundary })
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestFirstTrue_NegativeDomain verifies a negative n collapses to the empty
// domain instead of misbehaving.
func TestFirstTrue_NegativeDomain(t *testing.T) {
	assert.Zero(t, search.FirstTrue(-5, func(int) bool { return true }))
}

// TestFirstTrue_CallCount checks the bisection stays logarithmic, the whole
// point of the mode.
func TestFirstTrue_CallCount(t *testing.T) {
	calls := 0
	got := search.FirstTrue(1_000_000, func(i int) bool {
		calls++
		return i >= 765_432
	})
	assert.Equal(t, 765_432, got)
	assert.LessOrEqual(t, calls, 20)
}

// TestFirstBad covers the classic scenario, an all-good history, and the
// degenerate zero-version case.
func TestFirstBad(t *testing.T) {
	isBadFrom := func(bad int) func(int) bool {
		return func(v int) bool { return v >= bad }
	}

	assert.Equal(t, 4, search.FirstBad(5, isBadFrom(4)))
	assert.Equal(t, 1, search.FirstBad(5, isBadFrom(1)))
	assert.Equal(t, 5, search.FirstBad(5, isBadFrom(5)))
	assert.Equal(t, -1, search.FirstBad(5, isBadFrom(6)), "no bad version")
	assert.Equal(t, -1, search.FirstBad(0, isBadFrom(1)))
	assert.Equal(t, -1, search.FirstBad(-2, isBadFrom(1)))
}

// TestIndex covers hits at every region of the slice, the -1 sentinel, and
// the first-occurrence policy on duplicates.
func TestIndex(t *testing.T) {
	sorted := []int{-3, 0, 4, 4, 4, 9, 12}

	assert.Equal(t, 0, search.Index(sorted, -3))
	assert.Equal(t, 6, search.Index(sorted, 12))
	assert.Equal(t, 2, search.Index(sorted, 4), "first of the run")
	assert.Equal(t, -1, search.Index(sorted, 5))
	assert.Equal(t, -1, search.Index(nil, 1))
}

// TestRange covers runs of duplicates, single occurrences, and the (-1, -1)
// sentinel.
func TestRange(t *testing.T) {
	cases := []struct {
		name        string
		sorted      []int
		target      int
		first, last int
	}{
		{"run", []int{5, 7, 7, 8, 8, 10}, 8, 3, 4},
		{"single", []int{5, 7, 7, 8, 8, 10}, 5, 0, 0},
		{"absent", []int{5, 7, 7, 8, 8, 10}, 6, -1, -1},
		{"whole slice", []int{2, 2, 2}, 2, 0, 2},
		{"empty", nil, 0, -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := search.Range(tc.sorted, tc.target)
			assert.Equal(t, tc.first, first)
			assert.Equal(t, tc.last, last)
		})
	}
}
