package closure

import "math"

// PercusYevick — the Percus-Yevick closure in the γ change of variables.
//
// Mathematical Definition:
//
//	c(r) = (exp(−u(r)) − 1)·(1 + γ(r))        r > σ, or no hard core
//	c(r) = −1 − γ(r)                          r ≤ σ  (hard core)
//
// The change of variables keeps the closure finite for divergent potentials:
// inside the core the total correlation is assumed to be exactly −1, so
// c = h − γ = −1 − γ, and exp(−u) is never evaluated there. PY is accurate
// for strongly repulsive, short-ranged interactions.
//
// References:
//
//	Hansen, J.P.; McDonald, I.R.; Theory of Simple Liquids; Chapter 4,
//	Section 4; 4th Edition (2013), Elsevier
type PercusYevick struct {
	bindings
}

var _ AtomicClosure = (*PercusYevick)(nil)

// NewPercusYevick constructs a Percus-Yevick closure. With applyHardCore,
// SetSigma must be called before the first Calculate.
func NewPercusYevick(applyHardCore bool) *PercusYevick {
	return &PercusYevick{bindings{hardCore: applyHardCore}}
}

// Calculate returns the direct correlation for the supplied grid and γ,
// caching the result for Value(). Precondition faults: ErrPotentialNotSet,
// ErrSigmaNotSet, ErrDomainMismatch. Complexity: O(N) time and memory.
func (c *PercusYevick) Calculate(r, gamma []float64) ([]float64, error) {
	return c.evaluate(r, gamma, func(u, g float64) float64 {
		return (math.Exp(-u) - 1) * (1 + g)
	})
}
