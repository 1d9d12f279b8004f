// Package potential implements pairwise interaction potentials U(r)
// evaluated elementwise on a shared real-space grid.
//
// 🚀 What is a pair potential here?
//
//	A pure function of distance plus fixed per-pair parameters.  The solver
//	evaluates it once per site-type pair at setup and binds the resulting
//	energy array into the pair's closure.  Available forms:
//	  • LennardJones — 4ε[(σ/r)¹² − (σ/r)⁶], optional cutoff & shift
//	  • WeeksChandlerAndersen — LJ cut & shifted at its minimum (r = 2^{1/6}σ),
//	    purely repulsive
//	  • HardSphere — impenetrable core: a finite wall inside contact, 0 outside
//	  • Exponential — attractive tail −ε·exp(−(r−σ)/α) outside a hard core
//	  • SquareWell — hard core plus a constant −ε well of width σ·λ
//
// ✨ Key guarantees:
//   - Cutoff is a hard boundary condition: output is exactly 0.0 for
//     r ≥ rcut, elementwise, regardless of the raw formula
//   - Shift adds exactly +ε to every value with r < rcut, applied before the
//     cutoff zeroing, so the cut LJ form is continuous at its minimum
//   - Parameters are immutable after construction; Evaluate is a pure
//     function — repeatable, order-independent, safe to call concurrently
//   - Non-positive physical scales are construction faults (sentinel errors),
//     never deferred to evaluation time
//
// ⚙️ Usage:
//
//	p, err := potential.NewWeeksChandlerAndersen(1.0, 1.0)
//	if err != nil { ... }
//	u := p.Evaluate(dom.R()) // length-preserving, freshly allocated
//
// Hard walls (HardSphere, Exponential, SquareWell cores) use a large finite
// value rather than +Inf so that closures without hard-core handling still
// receive finite input; pair them with a hard-core closure in practice.
//
// Complexity: every Evaluate is O(N) time and memory for a grid of N points.
package potential
