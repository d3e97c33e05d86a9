package rootfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numkit/rootfind"
)

// benchmarkFindRoot runs one search per loop iteration and fails on
// unexpected errors.
func benchmarkFindRoot(b *testing.B, f rootfind.Func, min, max float64) {
	s, err := rootfind.New(1e-12, 1e-12, 1e-15)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = s.FindRoot(f, min, max); err != nil {
			b.Fatalf("FindRoot failed: %v", err)
		}
	}
}

// BenchmarkFindRoot_Linear measures the near-trivial case where the
// secant step lands immediately.
func BenchmarkFindRoot_Linear(b *testing.B) {
	benchmarkFindRoot(b, func(x float64) float64 { return x - 2 }, 0, 10)
}

// BenchmarkFindRoot_Cubic measures a smooth polynomial where inverse
// quadratic interpolation dominates.
func BenchmarkFindRoot_Cubic(b *testing.B) {
	benchmarkFindRoot(b, func(x float64) float64 { return x*x*x - x - 2 }, 1, 2)
}

// BenchmarkFindRoot_Transcendental measures a transcendental callback,
// where per-evaluation cost outweighs the loop bookkeeping.
func BenchmarkFindRoot_Transcendental(b *testing.B) {
	benchmarkFindRoot(b, func(x float64) float64 { return math.Exp(x) - x*x - 2 }, 0, 3)
}

// BenchmarkFindRoot_FlatRoot measures a triple root, the slow case that
// leans on the bisection fallback.
func BenchmarkFindRoot_FlatRoot(b *testing.B) {
	benchmarkFindRoot(b, func(x float64) float64 { return math.Pow(x-1, 3) }, 0, 4)
}
