package potential

// LennardJones — the 12-6 soft-core pair potential, the base form of this
// package's potential family.
//
// Mathematical Definition:
//
//	U(r) = 4ε[(σ/r)¹² − (σ/r)⁶]                      (no cutoff)
//
//	with cutoff rcut:
//	  U(r) = 4ε[(σ/r)¹² − (σ/r)⁶] + ε·[shift]   r <  rcut
//	  U(r) = 0.0                                 r ≥  rcut
//
// The cutoff is a hard boundary condition: beyond (and at) rcut the output is
// exactly 0.0 elementwise, never the raw formula value. The shift adds
// exactly +ε to the sub-cutoff branch; when rcut sits at the potential
// minimum 2^{1/6}σ (the WCA construction) this makes U continuous at rcut.
//
// Parameters are fixed at construction and never mutated; Evaluate is a pure
// function of r and these parameters, safe for concurrent use.
type LennardJones struct {
	// Epsilon is the interaction strength (depth of the minimum).
	Epsilon float64
	// Sigma is the interaction length scale (zero crossing of the raw form).
	Sigma float64
	// Rcut is the truncation distance; 0 means no cutoff.
	Rcut float64
	// Shift reports whether +ε is added below the cutoff.
	Shift bool
}

// NewLennardJones constructs the untruncated 12-6 potential.
// Returns ErrNonPositiveEpsilon or ErrNonPositiveSigma on invalid scales.
func NewLennardJones(epsilon, sigma float64) (*LennardJones, error) {
	return NewLennardJonesCut(epsilon, sigma, 0, false)
}

// NewLennardJonesCut constructs the 12-6 potential with an explicit cutoff.
// rcut == 0 disables truncation (and shift must then be false:
// ErrShiftWithoutCutoff). rcut < 0 or non-finite yields ErrBadCutoff.
func NewLennardJonesCut(epsilon, sigma, rcut float64, shift bool) (*LennardJones, error) {
	if !finitePositive(epsilon) {
		return nil, ErrNonPositiveEpsilon
	}
	if !finitePositive(sigma) {
		return nil, ErrNonPositiveSigma
	}
	if rcut != 0 && !finitePositive(rcut) {
		return nil, ErrBadCutoff
	}
	if shift && rcut == 0 {
		return nil, ErrShiftWithoutCutoff
	}

	return &LennardJones{Epsilon: epsilon, Sigma: sigma, Rcut: rcut, Shift: shift}, nil
}

// Evaluate returns U(r) elementwise over r into a freshly allocated array.
//
// Two deterministic passes in one loop per element:
//  1. raw 12-6 value, plus +ε when shifted and below cutoff
//  2. exact 0.0 for every r[i] ≥ rcut (hard boundary condition)
//
// Complexity: O(len(r)) time and memory.
func (p *LennardJones) Evaluate(r []float64) []float64 {
	out := make([]float64, len(r))
	for i, ri := range r {
		if p.Rcut > 0 && ri >= p.Rcut {
			// hard boundary condition, not an approximation
			out[i] = 0.0
			continue
		}
		x := p.Sigma / ri
		x3 := x * x * x
		x6 := x3 * x3
		out[i] = 4 * p.Epsilon * (x6*x6 - x6)
		if p.Shift {
			out[i] += p.Epsilon
		}
	}

	return out
}
