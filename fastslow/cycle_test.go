package fastslow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/fastslow"
	"github.com/katalvlaran/lvlseq/seq"
)

// TestHasCycle covers nil heads, straight chains, and cycles linked back to
// every possible entry index.
func TestHasCycle(t *testing.T) {
	assert.False(t, fastslow.HasCycle[int](nil))
	assert.False(t, fastslow.HasCycle(seq.FromSlice([]int{1})))
	assert.False(t, fastslow.HasCycle(seq.FromSlice([]int{1, 2, 3, 4, 5})))

	vals := []int{0, 1, 2, 3, 4, 5, 6}
	for at := range vals {
		head, err := seq.WithCycle(vals, at)
		require.NoError(t, err)
		assert.True(t, fastslow.HasCycle(head), "cycle back to index %d", at)
	}
}

// TestCycleStart checks the identified entry node for several geometries,
// including the documented 4-node scenario and the full self-loop.
func TestCycleStart(t *testing.T) {
	assert.Nil(t, fastslow.CycleStart(seq.FromSlice([]int{1, 2, 3})))

	// Tail of [1 2 3 4] links back to index 1: the cycle starts at value 2.
	head, err := seq.WithCycle([]int{1, 2, 3, 4}, 1)
	require.NoError(t, err)
	start := fastslow.CycleStart(head)
	require.NotNil(t, start)
	assert.Equal(t, 2, start.Val)

	// Entire chain is the cycle: the start is the head itself.
	ring, err := seq.WithCycle([]int{7, 8, 9}, 0)
	require.NoError(t, err)
	assert.Same(t, ring, fastslow.CycleStart(ring))

	// Single-node self-loop.
	loop, err := seq.WithCycle([]int{5}, 0)
	require.NoError(t, err)
	assert.Same(t, loop, fastslow.CycleStart(loop))
}

// TestCycleStart_EveryEntry cross-checks CycleStart against the known entry
// index for every back-link position of a longer chain.
func TestCycleStart_EveryEntry(t *testing.T) {
	vals := []int{10, 11, 12, 13, 14, 15, 16, 17}
	for at := range vals {
		head, err := seq.WithCycle(vals, at)
		require.NoError(t, err)
		want, err := seq.At(head, at)
		require.NoError(t, err)
		assert.Same(t, want, fastslow.CycleStart(head), "entry index %d", at)
	}
}

// TestCycleLen verifies the lap count for acyclic chains, partial cycles,
// and full rings.
func TestCycleLen(t *testing.T) {
	assert.Zero(t, fastslow.CycleLen(seq.FromSlice([]int{1, 2, 3})))
	assert.Zero(t, fastslow.CycleLen[int](nil))

	head, err := seq.WithCycle([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, fastslow.CycleLen(head), "nodes 3,4,5 form the cycle")

	ring, err := seq.WithCycle([]int{1, 2, 3, 4}, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, fastslow.CycleLen(ring))

	loop, err := seq.WithCycle([]int{9}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, fastslow.CycleLen(loop))
}
