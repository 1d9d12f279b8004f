package potential

import "math"

// NewWeeksChandlerAndersen constructs the purely repulsive
// Weeks-Chandler-Andersen potential: the Lennard-Jones base form cut and
// shifted at its minimum.
//
// Mathematical Definition:
//
//	U(r) = 4ε[(σ/r)¹² − (σ/r)⁶] + ε    r <  rcut
//	U(r) = 0.0                         r ≥  rcut
//	rcut = 2^{1/6}·σ
//
// There is no independent formula: the constructor derives
// rcut = σ·2^{1/6} and forces shift on, then delegates fully to the
// LennardJones evaluation. The result is non-negative on the whole grid and
// continuous at the cutoff.
//
// Returns ErrNonPositiveEpsilon or ErrNonPositiveSigma on invalid scales.
func NewWeeksChandlerAndersen(epsilon, sigma float64) (*LennardJones, error) {
	if !finitePositive(sigma) {
		return nil, ErrNonPositiveSigma
	}

	return NewLennardJonesCut(epsilon, sigma, sigma*math.Pow(2, 1.0/6.0), true)
}
