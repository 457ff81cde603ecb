package seq

import (
	"errors"

	"github.com/katalvlaran/lvlseq/scan"
)

// Sentinel errors for list construction and access.
var (
	// ErrEmptyList indicates the operation requires at least one node.
	ErrEmptyList = errors.New("seq: list is empty")

	// ErrCyclicList indicates the operation requires an acyclic chain.
	ErrCyclicList = errors.New("seq: list contains a cycle")

	// ErrIndexOutOfRange indicates the index does not address a node.
	ErrIndexOutOfRange = errors.New("seq: index out of range")
)

// Node is a singly linked list node. The zero Next marks the end of the
// chain; a list is represented by its head pointer and the empty list is
// nil.
type Node[V any] struct {
	Val  V
	Next *Node[V]
}

// FromSlice builds a chain holding vals in order and returns its head,
// nil when vals is empty.
// Complexity: O(n)
func FromSlice[V any](vals []V) *Node[V] {
	var head, tail *Node[V]
	for _, v := range vals {
		n := &Node[V]{Val: v}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	return head
}

// WithCycle builds a chain holding vals in order whose tail links back to
// the node at index at, producing a deliberate cycle. Used as a fixture by
// tests, examples, and the scenario CLI.
//
// Returns ErrEmptyList for empty vals and ErrIndexOutOfRange when at does
// not address a node.
func WithCycle[V any](vals []V, at int) (*Node[V], error) {
	if len(vals) == 0 {
		return nil, ErrEmptyList
	}
	if at < 0 || at >= len(vals) {
		return nil, ErrIndexOutOfRange
	}

	head := FromSlice(vals)
	entry := head
	for i := 0; i < at; i++ {
		entry = entry.Next
	}
	tail := head
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = entry

	return head, nil
}

// Values collects the chain's values front to back. A nil head yields a nil
// slice; a cyclic chain yields ErrCyclicList instead of an endless walk.
// Complexity: O(n)
func Values[V any](head *Node[V]) ([]V, error) {
	if head == nil {
		return nil, nil
	}
	if _, cyclic := probe(head); cyclic {
		return nil, ErrCyclicList
	}

	var vals []V
	for n := head; n != nil; n = n.Next {
		vals = append(vals, n.Val)
	}

	return vals, nil
}

// Len returns the number of nodes and whether the chain is acyclic. For
// cyclic chains the count is 0 and the flag false; use lvlseq/fastslow for
// cycle geometry.
// Complexity: O(n)
func Len[V any](head *Node[V]) (int, bool) {
	if _, cyclic := probe(head); cyclic {
		return 0, false
	}

	n := 0
	for cur := head; cur != nil; cur = cur.Next {
		n++
	}

	return n, true
}

// Tail returns the last node of the chain.
// Returns ErrEmptyList for a nil head and ErrCyclicList for cyclic chains.
func Tail[V any](head *Node[V]) (*Node[V], error) {
	if head == nil {
		return nil, ErrEmptyList
	}
	if _, cyclic := probe(head); cyclic {
		return nil, ErrCyclicList
	}

	n := head
	for n.Next != nil {
		n = n.Next
	}

	return n, nil
}

// At returns the node at index i, counting from 0 at the head. The walk is
// bounded by i, so At is safe on cyclic chains.
// Returns ErrIndexOutOfRange when i is negative or past the end.
func At[V any](head *Node[V], i int) (*Node[V], error) {
	if i < 0 {
		return nil, ErrIndexOutOfRange
	}
	n := head
	for ; i > 0 && n != nil; i-- {
		n = n.Next
	}
	if n == nil {
		return nil, ErrIndexOutOfRange
	}

	return n, nil
}

// Reverse reverses the chain in place with the classic three-cursor walk
// and returns the new head. head must be acyclic; reversing a cyclic chain
// is undefined.
// Complexity: O(n) time, O(1) memory.
func Reverse[V any](head *Node[V]) *Node[V] {
	var prev *Node[V]
	for cur := head; cur != nil; {
		next := cur.Next
		cur.Next = prev
		prev = cur
		cur = next
	}

	return prev
}

// probe runs the fast/slow engine over the chain.
func probe[V any](head *Node[V]) (*Node[V], bool) {
	return scan.FastSlow(head, nil, func(n *Node[V]) *Node[V] { return n.Next })
}
