package window_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/gen"
	"github.com/katalvlaran/lvlseq/window"
)

// BenchmarkMinLenAtLeast measures the shrink-heavy sum scan over random
// non-negative input.
func BenchmarkMinLenAtLeast(b *testing.B) {
	const n = 100_000
	nums := gen.Random(n, gen.WithSeed(5), gen.WithRange(0, 99))

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = window.MinLenAtLeast(nums, 5_000)
	}
}

// BenchmarkLongestDistinctString measures the byte-table scan over a long
// low-alphabet string, the worst case for duplicate churn.
func BenchmarkLongestDistinctString(b *testing.B) {
	const n = 100_000
	nums := gen.Random(n, gen.WithSeed(6), gen.WithRange(0, 15))
	bs := make([]byte, n)
	for i, v := range nums {
		bs[i] = byte('a' + v)
	}
	s := string(bs)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = window.LongestDistinctString(s)
	}
}

// BenchmarkAnagrams measures the fixed-size frequency window against a text
// with rare hits.
func BenchmarkAnagrams(b *testing.B) {
	const n = 100_000
	nums := gen.Random(n, gen.WithSeed(7), gen.WithRange(0, 3))
	bs := make([]byte, n)
	for i, v := range nums {
		bs[i] = byte('a' + v)
	}
	s := string(bs)

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = window.Anagrams(s, "abcd")
	}
}
