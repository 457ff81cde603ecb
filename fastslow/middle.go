package fastslow

import (
	"errors"

	"github.com/katalvlaran/lvlseq/seq"
)

// ErrBadOffset indicates RemoveFromEnd was asked for a position outside
// 1..length.
var ErrBadOffset = errors.New("fastslow: offset must be within 1..length")

// Middle returns the middle node of an acyclic chain; for even lengths the
// second of the two middles, matching the usual convention. The slow cursor
// lands there exactly when the fast cursor runs out of double steps.
//
// Returns seq.ErrEmptyList for a nil head and seq.ErrCyclicList for cyclic
// chains, which have no middle.
// Complexity: O(n) time, O(1) memory.
func Middle[V any](head *seq.Node[V]) (*seq.Node[V], error) {
	if head == nil {
		return nil, seq.ErrEmptyList
	}
	if HasCycle(head) {
		return nil, seq.ErrCyclicList
	}

	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	return slow, nil
}

// RemoveFromEnd unlinks the n-th node from the end of an acyclic chain and
// returns the (possibly new) head. A lead cursor starts n links ahead; when
// it steps off the tail, the trailing cursor sits just before the victim.
//
// Returns seq.ErrEmptyList for a nil head, ErrBadOffset when n < 1 or
// n exceeds the length, and seq.ErrCyclicList for cyclic chains.
// Complexity: O(n) time, O(1) memory.
func RemoveFromEnd[V any](head *seq.Node[V], n int) (*seq.Node[V], error) {
	if head == nil {
		return nil, seq.ErrEmptyList
	}
	if n < 1 {
		return nil, ErrBadOffset
	}
	if HasCycle(head) {
		return nil, seq.ErrCyclicList
	}

	lead := head
	for i := 0; i < n; i++ {
		if lead == nil {
			return nil, ErrBadOffset // n exceeds the length
		}
		lead = lead.Next
	}
	if lead == nil {
		return head.Next, nil // n equals the length: drop the head
	}

	trail := head
	for lead.Next != nil {
		lead, trail = lead.Next, trail.Next
	}
	trail.Next = trail.Next.Next

	return head, nil
}
