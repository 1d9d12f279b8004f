// Package grid provides the discretized solver domain shared by every
// potential and closure kernel: an ordered, uniformly spaced sequence of
// real-space distances r and its conjugate reciprocal-space sequence k.
//
// 🚀 What is a Domain?
//
//	Integral-equation solvers evaluate all pair functions elementwise on a
//	single fixed grid.  A Domain owns that grid:
//	  • r[i] = (i+1)·dr   for i = 0..Length-1   (real space)
//	  • k[i] = (i+1)·dk   with dk = π/((Length+1)·dr)   (reciprocal space)
//	The reciprocal spacing matches the discrete sine transform convention
//	used by PRISM-type solvers; the transform itself lives in the consuming
//	solver, not here.
//
// ✨ Key guarantees:
//   - strictly increasing, uniformly spaced distances
//   - grid arrays are built once and shared by reference; no kernel in this
//     module ever mutates them
//   - construction-time validation only (ErrNonPositiveStep,
//     ErrNonPositiveLength) — accessors never fail
//
// ⚙️ Usage:
//
//	dom, err := grid.NewDomain(0.1, 1024)
//	if err != nil { ... }
//	r := dom.R() // shared, read-only by convention
//
// Complexity: construction is O(Length) time and memory; accessors are O(1).
package grid
