// Package potential defines the Potential capability, shared constants,
// and sentinel errors for the potential subpackage of
// github.com/katalvlaran/prism.
package potential

import "errors"

// Sentinel errors for potential construction. Constructors validate once;
// Evaluate never fails.
var (
	// ErrNonPositiveEpsilon indicates an interaction strength ε ≤ 0 or non-finite.
	ErrNonPositiveEpsilon = errors.New("potential: epsilon must be positive and finite")
	// ErrNonPositiveSigma indicates a length scale σ ≤ 0 or non-finite.
	ErrNonPositiveSigma = errors.New("potential: sigma must be positive and finite")
	// ErrBadCutoff indicates an explicit cutoff rcut ≤ 0 or non-finite.
	ErrBadCutoff = errors.New("potential: rcut must be positive and finite")
	// ErrShiftWithoutCutoff indicates shift=true with no cutoff to shift against.
	ErrShiftWithoutCutoff = errors.New("potential: shift requires a cutoff")
	// ErrBadRange indicates a non-positive range parameter (α, well width).
	ErrBadRange = errors.New("potential: range parameter must be positive and finite")
)

// DefaultHighCoreValue is the finite stand-in for the divergent energy inside
// an impenetrable core (HardSphere and the hard walls of Exponential and
// SquareWell). Large enough that exp(-U) underflows to 0 in any closure that
// does evaluate it, yet finite so no Inf propagates through arithmetic.
const DefaultHighCoreValue = 1e6

// Potential is the capability every pair potential realizes: evaluate the
// interaction energy elementwise over a shared distance grid.
//
// Contract:
//   - length-preserving: len(out) == len(r)
//   - pure: no side effects, never mutates r, freshly allocated output
//   - parameters are read via exported struct fields on the concrete type
//     and are immutable after construction
type Potential interface {
	// Evaluate returns U(r) elementwise. O(len(r)) time and memory.
	Evaluate(r []float64) []float64
}
