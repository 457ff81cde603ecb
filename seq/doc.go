// Package seq provides the singly linked list primitives shared across
// lvlseq: the Node type, constructors for straight and deliberately cyclic
// chains, and cycle-safe accessors.
//
// Nodes are plain data — no locks, no hidden state. A list is just its head
// pointer; the empty list is nil. Accessors that must walk an unbounded
// number of links (Values, Len, Tail) guard against cycles with a fast/slow
// probe instead of looping forever; cycle *geometry* (where the cycle
// starts, how long it is) lives in lvlseq/fastslow.
//
// Errors:
//
//   - ErrEmptyList        operation requires at least one node
//   - ErrCyclicList       operation requires an acyclic chain
//   - ErrIndexOutOfRange  index does not address a node
package seq
