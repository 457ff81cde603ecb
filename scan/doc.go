// Package scan implements the four generic cursor engines that the rest of
// lvlseq is built on: collision, fast/slow, read/write, and sliding-window
// traversal of finite linear sequences.
//
// What:
//
//   - Collision: two cursors start at opposite ends of a random-access
//     sequence and move toward each other; a caller-supplied rule decides,
//     per step, which cursor advances (or both, or stop). Terminates when
//     the cursors meet or cross.
//   - FastSlow: two cursors start at the same origin of a link-traversable
//     structure; one advances 1 step per iteration, the other 2. The cursors
//     coincide if and only if a cycle is reachable from the origin.
//   - ReadWrite: a scanning cursor visits every element; a trailing write
//     cursor compacts the sequence in place, keeping elements that satisfy
//     a predicate and preserving their relative order.
//   - Window: a right cursor expands a contiguous window, feeding elements
//     into a caller-maintained aggregate; a left cursor contracts the window
//     whenever the aggregate violates its bound, restoring the invariant
//     before the next expansion.
//
// Why:
//   - Each engine downgrades an O(n²) pairwise or subarray search to O(n)
//     by exploiting a monotonicity property of the decision rule.
//   - One audited loop per mode; the concrete packages (collide, fastslow,
//     compact, window, seq) supply only the decision rules.
//
// Key Types & Constants:
//
//   - Verdict: AdvanceLeft, AdvanceRight, AdvanceBoth, Stop
//   - CollisionRule: func(lo, hi int) Verdict
//   - CollisionStats: iteration count and final cursor positions
//   - WindowHooks: Add, Remove, Within, Emit callbacks
//   - WindowStats: expansion and contraction counts
//
// Complexity:
//
//   - Collision:  Time O(n), Memory O(1); iterations ≤ n−1, and ≤ ⌈n/2⌉
//     when every verdict is AdvanceBoth
//   - FastSlow:   Time O(n), Memory O(1); acyclic inputs finish within
//     ⌈n/2⌉ fast-cursor iterations
//   - ReadWrite:  Time O(n), Memory O(1); write cursor never passes read
//   - Window:     Time O(n), Memory O(1) beyond the caller's aggregate;
//     each element is added exactly once and removed at most once
//
// Errors:
//
//   - ErrNegativeLength   sequence length below zero
//   - ErrNilRule          Collision invoked without a rule
//   - ErrBadVerdict       rule returned an out-of-range Verdict
//   - ErrNilHook          Window invoked without Add, Remove, or Within
//   - ErrNoProgress       Window contracted to empty without restoring its
//     bound (non-monotonic aggregate; see lvlseq/window for the concrete
//     precondition errors built on this)
//
// Functions:
//
//   - Collision(n int, rule CollisionRule) (CollisionStats, error)
//   - FastSlow[T comparable](start, terminal T, next func(T) T) (T, bool)
//   - ReadWrite[S ~[]E, E any](s S, keep func(i int, v E) bool) S
//   - Window(n int, hooks WindowHooks) (WindowStats, error)
//
// Empty sequences return immediately: zero stats, an untouched slice, no
// emissions. "Not found" is never an engine concern — callers signal absence
// with their own sentinel values.
package scan
