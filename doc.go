// Package lvlseq is your in-memory toolbox for scanning, compacting, and
// windowing linear sequences — from cursor-pair primitives to the classic
// interview-grade algorithms built on top of them.
//
// 🚀 What is lvlseq?
//
//	A small, focused, pure-Go library that brings together:
//		• Cursor engines: collision, fast/slow, read/write, sliding-window
//		• Collision scans: pair/triplet search, palindromes, max-area, Dutch flag
//		• List geometry: cycle detection, cycle start, middle, nth-from-end
//		• In-place compaction: filtering, deduplication, zero migration
//		• Sliding windows: bounded sums, products, distinct counts, anagrams
//		• Bisection & order: first-true search, quickselect, sorted merging
//		• Sequence DP: Kadane maximum subarray, patience LIS
//
// ✨ Why choose lvlseq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable costs – every scan is O(n) time, O(1) auxiliary space
//   - Pure Go – no cgo, no hidden state, safe for concurrent callers
//   - Honest failure modes – sentinel values for "not found", sentinel
//     errors for misuse, never a panic on user input
//
// Under the hood, everything is organized under small subpackages:
//
//	scan/     — the four generic cursor engines every family is built on
//	seq/      — singly linked list primitives shared across packages
//	collide/  — opposite-end cursor scans over random-access sequences
//	fastslow/ — Floyd's tortoise-and-hare over link-traversable structures
//	compact/  — trailing-write-cursor in-place compaction
//	window/   — expand-right/contract-left aggregate windows
//	search/   — halving cursors: first-true, bounds, classic bisection
//	order/    — ordered merging and quickselect order statistics
//	subseq/   — dynamic programming over numeric sequences
//	gen/      — deterministic fixtures for benchmarks and property tests
//
// Quick ASCII example:
//
//	    lo →                ← hi
//	    [ 2    7    11    15 ]      target 9 ⇒ indices (0,1)
//
//	collision cursors close in on the answer in at most n-1 steps.
//
// Dive into each package's doc.go for contracts, complexity tables, and
// worked examples; see cmd/lvlseq for a YAML-driven scenario runner.
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
