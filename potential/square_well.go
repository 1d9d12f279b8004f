package potential

// SquareWell — a hard core with a constant attractive well of finite width.
//
// Mathematical Definition:
//
//	U(r) = High   r ≤ σ
//	U(r) = −ε     σ < r ≤ σ·(1+λ)
//	U(r) = 0.0    r > σ·(1+λ)
//
// λ (Width) is the well width as a fraction of the contact distance σ. Both
// well boundaries are inclusive on the attractive side as written above.
type SquareWell struct {
	// Epsilon is the well depth.
	Epsilon float64
	// Sigma is the contact distance.
	Sigma float64
	// Width is the well width λ as a fraction of σ.
	Width float64
	// High is the finite core energy used at and inside contact.
	High float64
}

// NewSquareWell constructs a square-well potential with the default core
// wall. Returns ErrNonPositiveEpsilon, ErrNonPositiveSigma, or ErrBadRange
// (λ ≤ 0).
func NewSquareWell(epsilon, sigma, width float64) (*SquareWell, error) {
	if !finitePositive(epsilon) {
		return nil, ErrNonPositiveEpsilon
	}
	if !finitePositive(sigma) {
		return nil, ErrNonPositiveSigma
	}
	if !finitePositive(width) {
		return nil, ErrBadRange
	}

	return &SquareWell{Epsilon: epsilon, Sigma: sigma, Width: width, High: DefaultHighCoreValue}, nil
}

// Evaluate returns U(r) elementwise. Complexity: O(len(r)) time and memory.
func (p *SquareWell) Evaluate(r []float64) []float64 {
	edge := p.Sigma * (1 + p.Width)
	out := make([]float64, len(r))
	for i, ri := range r {
		switch {
		case ri <= p.Sigma:
			out[i] = p.High
		case ri <= edge:
			out[i] = -p.Epsilon
		default:
			out[i] = 0.0
		}
	}

	return out
}
