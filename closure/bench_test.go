package closure_test

import (
	"testing"

	"github.com/katalvlaran/prism/closure"
)

// benchmarkCalculate drives a bound closure over an n-point grid, the way a
// solver iteration would.
func benchmarkCalculate(b *testing.B, cl closure.AtomicClosure, n int) {
	r := make([]float64, n)
	u := make([]float64, n)
	gamma := make([]float64, n)
	for i := range r {
		r[i] = 0.1 + 0.1*float64(i)
		if r[i] <= 1.0 {
			u[i] = 1e6
		} else {
			u[i] = 1.0 / r[i]
		}
		gamma[i] = 0.05
	}
	cl.SetPotential(u)
	cl.SetSigma(1.0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cl.Calculate(r, gamma); err != nil {
			b.Fatalf("Calculate failed: %v", err)
		}
	}
}

// BenchmarkPercusYevick_HardCore_1024 benchmarks the representative closure
// on the canonical 1024-point domain.
func BenchmarkPercusYevick_HardCore_1024(b *testing.B) {
	benchmarkCalculate(b, closure.NewPercusYevick(true), 1024)
}

// BenchmarkPercusYevick_HardCore_8192 benchmarks a fine grid.
func BenchmarkPercusYevick_HardCore_8192(b *testing.B) {
	benchmarkCalculate(b, closure.NewPercusYevick(true), 8192)
}

// BenchmarkHyperNettedChain_1024 compares the HNC exponential cost.
func BenchmarkHyperNettedChain_1024(b *testing.B) {
	benchmarkCalculate(b, closure.NewHyperNettedChain(true), 1024)
}

// BenchmarkMeanSpherical_1024 is the linear-formula baseline.
func BenchmarkMeanSpherical_1024(b *testing.B) {
	benchmarkCalculate(b, closure.NewMeanSphericalApproximation(true), 1024)
}
