package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/window"
)

// TestLongestDistinctString covers the classic substring scenarios,
// including the late-duplicate "dvdf" case that trips one-shrink
// implementations.
func TestLongestDistinctString(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"abcabcbb", 3},
		{"bbbbb", 1},
		{"pwwkew", 3},
		{"dvdf", 3},
		{"au", 2},
		{"", 0},
	}
	for _, tc := range cases {
		t.Run(tc.s, func(t *testing.T) {
			assert.Equal(t, tc.want, window.LongestDistinctString(tc.s))
		})
	}
}

// TestLongestDistinct verifies the generic form agrees with the string form
// and handles non-byte element types.
func TestLongestDistinct(t *testing.T) {
	assert.Equal(t, 3, window.LongestDistinct([]int{1, 2, 1, 3, 2}))
	assert.Equal(t, 1, window.LongestDistinct([]int{7}))
	assert.Equal(t, 0, window.LongestDistinct[int](nil))
	assert.Equal(t, 2, window.LongestDistinct([]string{"a", "b", "a"}))
}

// TestLongestAtMostK covers the fruit-basket scenario, limits above the
// distinct count, and the empty-window answer for k = 0.
func TestLongestAtMostK(t *testing.T) {
	cases := []struct {
		name string
		s    []int
		k    int
		want int
	}{
		{"fruit basket", []int{1, 2, 1, 2, 3}, 2, 4},
		{"tail run", []int{0, 1, 2, 2}, 2, 3},
		{"limit above distinct", []int{1, 2, 3}, 5, 3},
		{"zero limit", []int{1, 2, 3}, 0, 0},
		{"empty input", nil, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := window.LongestAtMostK(tc.s, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLongestAtMostK_BadLimit verifies a negative limit is a precondition
// error, not an empty result.
func TestLongestAtMostK_BadLimit(t *testing.T) {
	_, err := window.LongestAtMostK([]int{1, 2}, -1)
	assert.ErrorIs(t, err, window.ErrBadLimit)
}
