// Package fastslow answers cycle-geometry questions about singly linked
// chains using Floyd's two-rate cursors: one reference advancing a single
// link per step, the other two.
//
// What:
//
//   - HasCycle: whether a cycle is reachable from the head.
//   - CycleStart: the first node of the cycle, found by resetting one cursor
//     to the head after the cursors meet and advancing both at rate 1.
//   - CycleLen: the number of nodes on the cycle.
//   - Middle: the middle node of an acyclic chain (the second middle for
//     even lengths).
//   - RemoveFromEnd: unlink the n-th node from the end with an offset-lead
//     cursor pair, without counting the chain first.
//
// Why fast/slow works: on a cyclic chain the fast cursor gains one link per
// step on the slow one, so they coincide within one traversal of the cycle;
// on an acyclic chain the fast cursor reaches the terminal nil first, within
// ⌈n/2⌉ of its iterations. No auxiliary storage is ever needed.
//
// Every operation is O(n) time and O(1) memory. Operations that require an
// acyclic chain return seq.ErrCyclicList instead of walking forever;
// RemoveFromEnd returns ErrBadOffset when n is outside 1..length.
package fastslow
