package closure

// MeanSphericalApproximation — the MSA closure.
//
// Mathematical Definition:
//
//	c(r) = −u(r)                              r > σ, or no hard core
//	c(r) = −1 − γ(r)                          r ≤ σ  (hard core)
//
// MSA linearizes the closure outside the core: the direct correlation is the
// negated (kT-reduced) potential. It is exactly solvable for several model
// fluids and is the natural pairing for HardSphere-plus-tail potentials.
type MeanSphericalApproximation struct {
	bindings
}

var _ AtomicClosure = (*MeanSphericalApproximation)(nil)

// NewMeanSphericalApproximation constructs an MSA closure. With
// applyHardCore, SetSigma must be called before the first Calculate.
func NewMeanSphericalApproximation(applyHardCore bool) *MeanSphericalApproximation {
	return &MeanSphericalApproximation{bindings{hardCore: applyHardCore}}
}

// Calculate returns the direct correlation for the supplied grid and γ,
// caching the result for Value(). Precondition faults: ErrPotentialNotSet,
// ErrSigmaNotSet, ErrDomainMismatch. Complexity: O(N) time and memory.
func (c *MeanSphericalApproximation) Calculate(r, gamma []float64) ([]float64, error) {
	return c.evaluate(r, gamma, func(u, _ float64) float64 {
		return -u
	})
}
