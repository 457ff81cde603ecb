// SPDX-License-Identifier: MIT
// Package: lvlseq/gen
//
// gen.go — the fixture generators.

package gen

import "slices"

// Plateau shape constants.
const (
	// maxPlateauStep bounds the jump between consecutive plateau values.
	maxPlateauStep = 3
)

// Random returns n values drawn uniformly from the configured range,
// nil when n < 1.
func Random(n int, opts ...Option) []int {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	span := cfg.hi - cfg.lo + 1
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.lo + cfg.rng.Intn(span)
	}

	return out
}

// Sorted returns the same draw as Random, ascending. Duplicates are
// possible; the collision and bisection packages expect exactly this shape.
func Sorted(n int, opts ...Option) []int {
	out := Random(n, opts...)
	slices.Sort(out)

	return out
}

// Plateaus returns n ascending values grouped in runs of 1..run duplicates,
// stepping up by 1..maxPlateauStep between runs. The range's low bound is
// the starting value; the high bound is not binding here. nil when n < 1 or
// run < 1.
func Plateaus(n, run int, opts ...Option) []int {
	if n < 1 || run < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	out := make([]int, 0, n)
	v := cfg.lo
	for len(out) < n {
		for k := 1 + cfg.rng.Intn(run); k > 0 && len(out) < n; k-- {
			out = append(out, v)
		}
		v += 1 + cfg.rng.Intn(maxPlateauStep)
	}

	return out
}
