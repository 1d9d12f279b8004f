package potential

// HardSphere — the impenetrable-core pair potential.
//
// Mathematical Definition:
//
//	U(r) = High   r <  σ
//	U(r) = 0.0    r ≥  σ
//
// High is a large finite stand-in for the divergent core energy
// (DefaultHighCoreValue unless overridden) so that downstream arithmetic
// stays finite; closures should still apply a hard-core policy at σ rather
// than evaluate exp(-U) inside the core.
type HardSphere struct {
	// Sigma is the contact (exclusion) distance.
	Sigma float64
	// High is the finite core energy used inside contact.
	High float64
}

// NewHardSphere constructs a hard-sphere potential with the default core
// wall. Returns ErrNonPositiveSigma on an invalid contact distance.
func NewHardSphere(sigma float64) (*HardSphere, error) {
	return NewHardSphereWall(sigma, DefaultHighCoreValue)
}

// NewHardSphereWall constructs a hard-sphere potential with an explicit
// finite core energy. Returns ErrNonPositiveSigma or ErrBadRange (high ≤ 0).
func NewHardSphereWall(sigma, high float64) (*HardSphere, error) {
	if !finitePositive(sigma) {
		return nil, ErrNonPositiveSigma
	}
	if !finitePositive(high) {
		return nil, ErrBadRange
	}

	return &HardSphere{Sigma: sigma, High: high}, nil
}

// Evaluate returns U(r) elementwise. Complexity: O(len(r)) time and memory.
func (p *HardSphere) Evaluate(r []float64) []float64 {
	out := make([]float64, len(r))
	for i, ri := range r {
		if ri < p.Sigma {
			out[i] = p.High
		}
	}

	return out
}
