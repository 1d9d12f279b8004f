package potential

import "math"

// Exponential — a hard core with an exponentially decaying attractive tail.
//
// Mathematical Definition:
//
//	U(r) = −ε·exp(−(r−σ)/α)   r >  σ
//	U(r) = High               r ≤  σ
//
// α sets the decay range of the attraction; the wall inside (and at) contact
// uses the same finite-High convention as HardSphere. Note the tie-break:
// the attractive branch is strict (r > σ), matching the hard-core partition
// used by the closures in this module.
type Exponential struct {
	// Epsilon is the depth of the attraction at contact.
	Epsilon float64
	// Sigma is the contact distance.
	Sigma float64
	// Alpha is the decay range of the attractive tail.
	Alpha float64
	// High is the finite core energy used at and inside contact.
	High float64
}

// NewExponential constructs an exponential-tail potential with the default
// core wall. Returns ErrNonPositiveEpsilon, ErrNonPositiveSigma, or
// ErrBadRange (α ≤ 0).
func NewExponential(epsilon, sigma, alpha float64) (*Exponential, error) {
	if !finitePositive(epsilon) {
		return nil, ErrNonPositiveEpsilon
	}
	if !finitePositive(sigma) {
		return nil, ErrNonPositiveSigma
	}
	if !finitePositive(alpha) {
		return nil, ErrBadRange
	}

	return &Exponential{Epsilon: epsilon, Sigma: sigma, Alpha: alpha, High: DefaultHighCoreValue}, nil
}

// Evaluate returns U(r) elementwise. Complexity: O(len(r)) time and memory.
func (p *Exponential) Evaluate(r []float64) []float64 {
	out := make([]float64, len(r))
	for i, ri := range r {
		if ri > p.Sigma {
			out[i] = -p.Epsilon * math.Exp(-(ri-p.Sigma)/p.Alpha)
		} else {
			out[i] = p.High
		}
	}

	return out
}
