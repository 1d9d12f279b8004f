// Package grid defines the Domain type and sentinel errors for the
// discretized solver grid of github.com/katalvlaran/prism.
package grid

import "errors"

// Sentinel errors for domain construction.
var (
	// ErrNonPositiveStep indicates dr is zero, negative, or not finite.
	ErrNonPositiveStep = errors.New("grid: spacing dr must be positive and finite")
	// ErrNonPositiveLength indicates the requested number of grid points is < 1.
	ErrNonPositiveLength = errors.New("grid: length must be at least 1")
)

// Domain is a uniformly spaced real/reciprocal-space grid. It is immutable
// once built: Dr, Dk and Length are fixed, and the r/k arrays are allocated
// exactly once and shared by reference with every kernel evaluated on them.
//
// Invariant: r[i] = (i+1)·Dr and k[i] = (i+1)·Dk, both strictly increasing.
type Domain struct {
	// Dr is the real-space grid spacing.
	Dr float64
	// Dk is the reciprocal-space grid spacing, π/((Length+1)·Dr).
	Dk float64
	// Length is the number of grid points N.
	Length int

	r []float64
	k []float64
}
