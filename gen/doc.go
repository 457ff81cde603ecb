// SPDX-License-Identifier: MIT
// Package: lvlseq/gen
//
// Package gen builds deterministic numeric fixtures for the scan packages'
// benchmarks, examples, and property tests.
//
// Contract (strict):
//   - Generators are pure given their options; no hidden globals.
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic and answer nil to n < 1.
//   - Determinism is explicit: seeding flows through WithSeed or WithRand,
//     and the unseeded default is itself a fixed seed.
//
// What:
//
//   - Random: uniform values in a closed range.
//   - Sorted: the same draw, ascending.
//   - Plateaus: ascending values in runs of duplicates, for compaction
//     fixtures.
package gen
