// Package scan_test verifies the engines are safe under concurrent use:
// every engine is a pure loop over caller-owned state, so simultaneous
// scans must never interfere.
package scan_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/scan"
)

// TestConcurrentCollision runs many collision scans at once, each with its
// own rule state, and checks every one sees the full cursor travel.
func TestConcurrentCollision(t *testing.T) {
	const workers = 100
	const n = 101

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			st, err := scan.Collision(n, func(lo, hi int) scan.Verdict {
				return scan.AdvanceBoth
			})
			require.NoError(t, err)
			require.Equal(t, 50, st.Iterations)
			require.True(t, st.Exhausted())
		}()
	}
	wg.Wait()
}

// TestConcurrentWindow lets many goroutines scan the same read-only slice
// with private aggregates and checks they all find the same answer.
func TestConcurrentWindow(t *testing.T) {
	nums := []int{2, 3, 1, 2, 4, 3}
	const target = 7
	const workers = 100

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			sum, best := 0, 0
			_, err := scan.Window(len(nums), scan.WindowHooks{
				Add: func(i int) { sum += nums[i] },
				Remove: func(lo, hi int) {
					if w := hi - lo + 1; best == 0 || w < best {
						best = w
					}
					sum -= nums[lo]
				},
				Within: func() bool { return sum < target },
			})
			require.NoError(t, err)
			require.Equal(t, 2, best)
		}()
	}
	wg.Wait()
}

// TestConcurrentFastSlow mixes cyclic and acyclic traversals over shared
// immutable step functions.
func TestConcurrentFastSlow(t *testing.T) {
	const workers = 100

	chain := func(i int) int { return i + 1 }       // reaches the terminal
	ring := func(i int) int { return (i + 1) % 97 } // never does

	var wg sync.WaitGroup
	wg.Add(2 * workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			meet, cyclic := scan.FastSlow(0, 1000, chain)
			require.False(t, cyclic)
			require.Equal(t, 1000, meet)
		}()

		go func() {
			defer wg.Done()
			_, cyclic := scan.FastSlow(0, -1, ring)
			require.True(t, cyclic)
		}()
	}
	wg.Wait()
}
