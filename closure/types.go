// Package closure defines the AtomicClosure capability and sentinel errors
// for the closure subpackage of github.com/katalvlaran/prism.
package closure

import "errors"

// Sentinel errors for closure evaluation. All are precondition faults raised
// before any array arithmetic; Calculate never partially computes.
var (
	// ErrPotentialNotSet indicates Calculate was called before SetPotential.
	ErrPotentialNotSet = errors.New("closure: potential for this closure is not set")
	// ErrSigmaNotSet indicates a hard-core closure was evaluated before SetSigma.
	ErrSigmaNotSet = errors.New("closure: hard-core contact distance is not set")
	// ErrDomainMismatch indicates r, gamma and the bound potential differ in length.
	ErrDomainMismatch = errors.New("closure: domain mismatch")
)

// AtomicClosure is the capability every closure kind realizes.
//
// Lifecycle per site pair: construct once, bind with SetPotential (and
// SetSigma when hard-core handling is on) at solver setup, then call
// Calculate once per solver iteration. Instances are not safe for concurrent
// Calculate calls; distinct pairs own distinct instances and may be evaluated
// in parallel.
type AtomicClosure interface {
	// SetPotential binds the pair's evaluated potential array by reference.
	SetPotential(u []float64)
	// SetSigma binds the hard-core contact distance (dᵢ+dⱼ)/2.
	SetSigma(sigma float64)
	// HardCore reports whether the hard-core policy is applied.
	HardCore() bool
	// Calculate returns the direct correlation c for the supplied grid r and
	// indirect correlation gamma, caching the result for Value().
	Calculate(r, gamma []float64) ([]float64, error)
	// Value returns the last computed c array (nil before the first
	// Calculate). Read-only diagnostic; not a copy.
	Value() []float64
}
