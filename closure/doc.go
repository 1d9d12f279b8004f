// Package closure implements atomic closure relations: the elementwise
// mapping c(r) = F(u(r), γ(r)) that closes the Ornstein-Zernike integral
// equation for a site pair.
//
// 🚀 What is a closure here?
//
//	A small stateful evaluator bound once per site pair.  At solver setup
//	the orchestrator binds the pair's evaluated potential array (and, for
//	hard-core pairs, the contact distance σ); every solver iteration it
//	supplies the current indirect correlation γ and receives the direct
//	correlation c.  Available kinds:
//	  • PercusYevick              — (exp(−u) − 1)·(1 + γ)
//	  • HyperNettedChain          — exp(γ − u) − γ − 1
//	  • MartynovSarkisov          — exp(−u + √(1+2γ) − 1) − γ − 1
//	  • MeanSphericalApproximation — −u
//
// ✨ Key guarantees:
//   - Precondition faults surface before any arithmetic: unbound potential
//     (ErrPotentialNotSet), unbound σ on a hard-core closure
//     (ErrSigmaNotSet), mismatched array lengths (ErrDomainMismatch)
//   - Hard-core policy: inside and at the core (r ≤ σ) the result is the
//     exact physical value −1 − γ; the closure formula is evaluated only
//     strictly outside (r > σ), so exp(−u) is never taken where u diverges
//   - The boundary point r == σ always falls in the hard-core branch; this
//     tie-break is fixed, not configurable
//   - Calculate is idempotent for identical inputs and caches its freshly
//     allocated result, readable via Value() as a solver diagnostic
//
// ⚙️ Usage:
//
//	cl := closure.NewPercusYevick(true) // hard-core aware
//	cl.SetPotential(u)                  // once per pair, at setup
//	cl.SetSigma(1.0)                    // (dᵢ+dⱼ)/2 contact distance
//	c, err := cl.Calculate(r, gamma)    // every iteration
//
// Adding a closure kind is a pure-function leaf: embed the shared bound
// state, supply the outside-core formula, and the binding/fault/hard-core
// contract comes for free.
//
// Complexity: every Calculate is O(N) time and memory for a grid of N points.
package closure
