// SPDX-License-Identifier: MIT

package spectral_test

import (
	"testing"

	"github.com/katalvlaran/lvhawkes/builder"
	"github.com/katalvlaran/lvhawkes/spectral"
)

// BenchmarkDecompose_Gonum measures an uncached LAPACK solve on G(200, 0.05).
func BenchmarkDecompose_Gonum(b *testing.B) {
	g := mustBuild(b, builder.RandomSparse(200, 0.05), builder.WithSeed(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spectral.Decompose(g)
	}
}

// BenchmarkDecompose_Jacobi measures the Jacobi fallback on a small graph.
func BenchmarkDecompose_Jacobi(b *testing.B) {
	g := mustBuild(b, builder.RandomSparse(40, 0.1), builder.WithSeed(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spectral.Decompose(g, spectral.WithSolver(spectral.SolverJacobi))
	}
}

// BenchmarkDecomposer_CacheHit measures the cached path.
func BenchmarkDecomposer_CacheHit(b *testing.B) {
	d := spectral.NewDecomposer()
	g := mustBuild(b, builder.Grid(10, 10))
	_, _ = d.Decompose(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Decompose(g)
	}
}
