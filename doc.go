// Package prism is the numerical-kernel layer of a polymer/liquid-state
// integral-equation toolkit (PRISM theory) — pluggable pairwise potentials
// and atomic closure relations evaluated on a shared real-space grid.
//
// 🚀 What is prism?
//
//	A small, deterministic library that brings together:
//		• Grid primitives: uniform real/reciprocal-space solver domains
//		• Potentials: Lennard-Jones (cut & shifted), WCA, HardSphere,
//		  Exponential, SquareWell
//		• Closures: Percus-Yevick, HyperNettedChain, MartynovSarkisov,
//		  MeanSphericalApproximation — with optional hard-core handling
//		• Pair containers: symmetric site-pair tables & flat pair-function
//		  stacks for solver assembly
//
// ✨ Why choose prism?
//
//   - Solver-grade guarantees – exact cutoff/shift boundary conditions,
//     documented hard-core tie-breaks, sentinel errors for every fault
//   - Pure kernels – no hidden state, safe to evaluate pairs in parallel
//   - Extensible – adding a potential or closure is a pure-function leaf,
//     no new architecture
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/      — uniformly spaced real/reciprocal distance arrays (Domain)
//	potential/ — pairwise interaction energies U(r), cutoff & shift policies
//	closure/   — direct-correlation closures c(r) from (u, γ), hard-core aware
//	pairtable/ — site-pair keyed tables & flat n×n×N correlation storage
//
// Quick sketch of a solver iteration (orchestrated externally):
//
//	u := pot.Evaluate(dom.R())        // once, at setup
//	cl.SetPotential(u)                // bind per pair
//	cl.SetSigma(1.0)                  // if hard-core
//	c, err := cl.Calculate(dom.R(), gamma) // every iteration
//
// The OZ linear solve, Fourier transforms and Picard mixing live in the
// consuming solver, not here. Dive into the per-package doc.go files for
// formulas, boundary conditions, and worked examples.
//
//	go get github.com/katalvlaran/prism
package prism
