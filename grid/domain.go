package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NewDomain constructs a Domain with spacing dr and length grid points.
// The real-space grid spans [dr, length·dr]; the reciprocal grid spans
// [dk, length·dk] with dk = π/((length+1)·dr).
//
// Returns ErrNonPositiveStep if dr ≤ 0 or not finite,
// ErrNonPositiveLength if length < 1.
// Complexity: O(length) time and memory.
func NewDomain(dr float64, length int) (*Domain, error) {
	if dr <= 0 || math.IsNaN(dr) || math.IsInf(dr, 0) {
		return nil, ErrNonPositiveStep
	}
	if length < 1 {
		return nil, ErrNonPositiveLength
	}

	dk := math.Pi / (float64(length+1) * dr)
	d := &Domain{
		Dr:     dr,
		Dk:     dk,
		Length: length,
		r:      span(dr, length),
		k:      span(dk, length),
	}

	return d, nil
}

// span fills a fresh slice with the n uniform samples step, 2·step, ..., n·step.
func span(step float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = step
		return out
	}
	floats.Span(out, step, float64(n)*step)

	return out
}

// R returns the real-space distance array. The slice is shared by reference
// across all kernels of a system; callers must treat it as read-only.
// Complexity: O(1).
func (d *Domain) R() []float64 { return d.r }

// K returns the reciprocal-space array under the same sharing contract as R.
// Complexity: O(1).
func (d *Domain) K() []float64 { return d.k }
