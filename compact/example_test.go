package compact_test

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/compact"
)

// ExampleDedup collapses repeated readings from an already-sorted feed.
func ExampleDedup() {
	readings := []int{1, 1, 2, 3, 3, 3, 4}
	fmt.Println(compact.Dedup(readings))
	// Output:
	// [1 2 3 4]
}

// ExampleDedupN keeps at most two samples per plateau.
func ExampleDedupN() {
	readings := []int{7, 7, 7, 7, 8, 9, 9, 9}
	out, err := compact.DedupN(readings, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output:
	// [7 7 8 9 9]
}

// ExampleMoveZeros pushes dropped samples (zeros) behind the real ones
// without disturbing their order.
func ExampleMoveZeros() {
	samples := []int{0, 1, 0, 3, 12}
	compact.MoveZeros(samples)
	fmt.Println(samples)
	// Output:
	// [1 3 12 0 0]
}
