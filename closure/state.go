package closure

// bindings holds the mutable per-pair state shared by every closure kind:
// the bound potential array, the optional hard-core contact distance, and
// the cached last result. Concrete closures embed it and supply only their
// outside-core formula.
type bindings struct {
	potential []float64
	sigma     float64
	sigmaSet  bool
	hardCore  bool
	value     []float64
}

// SetPotential binds the evaluated potential array by reference. The slice
// is owned by the orchestrator and must not change length afterwards.
func (b *bindings) SetPotential(u []float64) { b.potential = u }

// SetSigma binds the hard-core contact distance (dᵢ+dⱼ)/2.
func (b *bindings) SetSigma(sigma float64) {
	b.sigma = sigma
	b.sigmaSet = true
}

// HardCore reports whether this closure applies the hard-core policy.
func (b *bindings) HardCore() bool { return b.hardCore }

// Value returns the last computed direct correlation array, nil before the
// first Calculate. It is the cached result itself, not a copy: a read-only
// solver diagnostic.
func (b *bindings) Value() []float64 { return b.value }

// precheck raises the documented precondition faults, in order, before any
// arithmetic: unbound potential, unbound σ (hard-core only), length mismatch
// between r, gamma, and the bound potential.
func (b *bindings) precheck(r, gamma []float64) error {
	if b.potential == nil {
		return ErrPotentialNotSet
	}
	if b.hardCore && !b.sigmaSet {
		return ErrSigmaNotSet
	}
	if len(gamma) != len(b.potential) || len(r) != len(gamma) {
		return ErrDomainMismatch
	}

	return nil
}

// evaluate runs the shared two-branch pattern into a freshly allocated
// result and caches it.
//
// Without hard core, the formula f(u, γ) is applied on the whole grid. With
// hard core, pass 1 writes the physical core value c = −1 − γ everywhere,
// then pass 2 overwrites the strictly-outside subset (r > σ) with the
// formula; the boundary r == σ therefore stays in the core branch, and
// f is never evaluated where the potential may diverge.
//
// Complexity: O(len(r)) time and memory.
func (b *bindings) evaluate(r, gamma []float64, f func(u, g float64) float64) ([]float64, error) {
	if err := b.precheck(r, gamma); err != nil {
		return nil, err
	}

	out := make([]float64, len(gamma))
	if b.hardCore {
		for i, g := range gamma {
			out[i] = -1 - g
		}
		for i, ri := range r {
			if ri > b.sigma {
				out[i] = f(b.potential[i], gamma[i])
			}
		}
	} else {
		for i, g := range gamma {
			out[i] = f(b.potential[i], g)
		}
	}
	b.value = out

	return out, nil
}
