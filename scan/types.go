// Package scan - shared types and sentinel errors for the cursor engines.
package scan

import "errors"

// Sentinel errors for engine misuse. Absence of a result is not an error:
// callers encode "not found" in their own sentinel values.
var (
	// ErrNegativeLength indicates a sequence length below zero.
	ErrNegativeLength = errors.New("scan: sequence length must not be negative")

	// ErrNilRule indicates Collision was invoked without a decision rule.
	ErrNilRule = errors.New("scan: collision rule must not be nil")

	// ErrBadVerdict indicates a rule returned a Verdict outside the enum.
	ErrBadVerdict = errors.New("scan: rule returned an invalid verdict")

	// ErrNilHook indicates Window was invoked without Add, Remove, or Within.
	ErrNilHook = errors.New("scan: window hooks Add, Remove and Within must not be nil")

	// ErrNoProgress indicates the window contracted to empty without
	// restoring its bound: the aggregate is not monotonic in window size.
	ErrNoProgress = errors.New("scan: window cannot restore its bound; aggregate is not monotonic")
)

// Verdict is the decision a CollisionRule returns for the current cursor
// pair. Every verdict except Stop advances at least one cursor, which is
// what bounds the loop.
type Verdict int

const (
	// AdvanceLeft moves the left cursor one step right.
	AdvanceLeft Verdict = iota

	// AdvanceRight moves the right cursor one step left.
	AdvanceRight

	// AdvanceBoth moves both cursors toward each other.
	AdvanceBoth

	// Stop terminates the scan at the current cursor positions.
	Stop
)

// CollisionRule examines the current cursor pair and decides how to advance.
// lo < hi holds on every invocation.
type CollisionRule func(lo, hi int) Verdict

// CollisionStats reports how a collision scan terminated.
//   - Iterations: number of rule invocations.
//   - Left, Right: final cursor positions. Left >= Right means the cursors
//     met or crossed (exhaustion); Left < Right means the rule stopped early.
type CollisionStats struct {
	Iterations int
	Left       int
	Right      int
}

// Exhausted reports whether the scan ended because the cursors met or
// crossed, rather than by an explicit Stop.
func (s CollisionStats) Exhausted() bool { return s.Left >= s.Right }

// WindowHooks bundles the callbacks a sliding-window scan drives.
//
// Add, Remove and Within are required. Emit may be nil.
type WindowHooks struct {
	// Add is called when element i enters the window (right cursor).
	Add func(i int)

	// Remove is called when element lo leaves the window [lo, hi]
	// (left cursor). The window still includes lo at call time, so
	// callers may record candidate windows here before shrinking.
	Remove func(lo, hi int)

	// Within reports whether the aggregate currently satisfies its bound.
	// An empty window must satisfy the bound; packages wrap violations of
	// that requirement in their own precondition errors.
	Within func() bool

	// Emit is called once per right-cursor position with the maximal
	// valid window [lo, hi] ending there. lo > hi means the valid window
	// ending at hi is empty.
	Emit func(lo, hi int)
}

// WindowStats reports the work a window scan performed.
//   - Expansions: right-cursor steps (always n on success).
//   - Contractions: left-cursor steps (at most n).
type WindowStats struct {
	Expansions   int
	Contractions int
}
