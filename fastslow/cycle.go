package fastslow

import (
	"github.com/katalvlaran/lvlseq/scan"
	"github.com/katalvlaran/lvlseq/seq"
)

// probe runs the fast/slow engine over the chain, returning the meeting
// node and whether a cycle was found.
func probe[V any](head *seq.Node[V]) (*seq.Node[V], bool) {
	return scan.FastSlow(head, nil, func(n *seq.Node[V]) *seq.Node[V] { return n.Next })
}

// HasCycle reports whether a cycle is reachable from head. A nil head has
// no cycle.
// Complexity: O(n) time, O(1) memory.
func HasCycle[V any](head *seq.Node[V]) bool {
	_, cyclic := probe(head)

	return cyclic
}

// CycleStart returns the first node of the cycle reachable from head, nil
// when the chain is acyclic.
//
// After the cursors meet, the head and the meeting point are equidistant
// from the cycle entry, so two rate-1 cursors started there collide exactly
// on it (Floyd phase two).
// Complexity: O(n) time, O(1) memory.
func CycleStart[V any](head *seq.Node[V]) *seq.Node[V] {
	meet, cyclic := probe(head)
	if !cyclic {
		return nil
	}

	a, b := head, meet
	for a != b {
		a, b = a.Next, b.Next
	}

	return a
}

// CycleLen returns the number of nodes on the cycle reachable from head,
// 0 when the chain is acyclic. The meeting node necessarily lies on the
// cycle, so one lap from it measures the length.
// Complexity: O(n) time, O(1) memory.
func CycleLen[V any](head *seq.Node[V]) int {
	meet, cyclic := probe(head)
	if !cyclic {
		return 0
	}

	n := 1
	for cur := meet.Next; cur != meet; cur = cur.Next {
		n++
	}

	return n
}
