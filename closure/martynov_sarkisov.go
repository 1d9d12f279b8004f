package closure

import "math"

// MartynovSarkisov — the MS closure.
//
// Mathematical Definition:
//
//	c(r) = exp(−u(r) + √(1 + 2γ(r)) − 1) − γ(r) − 1   r > σ, or no hard core
//	c(r) = −1 − γ(r)                                  r ≤ σ  (hard core)
//
// MS interpolates between PY and HNC behavior and is often more accurate
// than either for dense hard-core fluids. The square root requires
// γ ≥ −1/2 outside the core; a NaN escaping this branch means the supplied
// γ left the closure's physical domain, which is the caller's configuration
// to fix, not this layer's.
type MartynovSarkisov struct {
	bindings
}

var _ AtomicClosure = (*MartynovSarkisov)(nil)

// NewMartynovSarkisov constructs an MS closure. With applyHardCore,
// SetSigma must be called before the first Calculate.
func NewMartynovSarkisov(applyHardCore bool) *MartynovSarkisov {
	return &MartynovSarkisov{bindings{hardCore: applyHardCore}}
}

// Calculate returns the direct correlation for the supplied grid and γ,
// caching the result for Value(). Precondition faults: ErrPotentialNotSet,
// ErrSigmaNotSet, ErrDomainMismatch. Complexity: O(N) time and memory.
func (c *MartynovSarkisov) Calculate(r, gamma []float64) ([]float64, error) {
	return c.evaluate(r, gamma, func(u, g float64) float64 {
		return math.Exp(-u+math.Sqrt(1+2*g)-1) - g - 1
	})
}
