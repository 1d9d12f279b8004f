package closure

import "math"

// HyperNettedChain — the HNC closure.
//
// Mathematical Definition:
//
//	c(r) = exp(γ(r) − u(r)) − γ(r) − 1        r > σ, or no hard core
//	c(r) = −1 − γ(r)                          r ≤ σ  (hard core)
//
// HNC retains the full chain of diagrams and tends to work well for soft,
// long-ranged interactions; pair it with the hard-core policy whenever the
// potential diverges at short range.
type HyperNettedChain struct {
	bindings
}

var _ AtomicClosure = (*HyperNettedChain)(nil)

// NewHyperNettedChain constructs an HNC closure. With applyHardCore,
// SetSigma must be called before the first Calculate.
func NewHyperNettedChain(applyHardCore bool) *HyperNettedChain {
	return &HyperNettedChain{bindings{hardCore: applyHardCore}}
}

// Calculate returns the direct correlation for the supplied grid and γ,
// caching the result for Value(). Precondition faults: ErrPotentialNotSet,
// ErrSigmaNotSet, ErrDomainMismatch. Complexity: O(N) time and memory.
func (c *HyperNettedChain) Calculate(r, gamma []float64) ([]float64, error) {
	return c.evaluate(r, gamma, func(u, g float64) float64 {
		return math.Exp(g-u) - g - 1
	})
}
