package munkres_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cratefit/munkres"
)

// benchmarkSolve solves a fixed random n×n table b.N times.
func benchmarkSolve(b *testing.B, n int, wide bool) {
	costs := randomCosts(b, rand.New(rand.NewSource(int64(n))), n, wide)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := munkres.Solve(costs); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkSolve_N8(b *testing.B)      { benchmarkSolve(b, 8, false) }
func BenchmarkSolve_N32(b *testing.B)     { benchmarkSolve(b, 32, false) }
func BenchmarkSolve_N32Wide(b *testing.B) { benchmarkSolve(b, 32, true) }
