// Package pairtable provides the site-pair keyed containers an
// integral-equation orchestrator uses to assemble per-pair kernels and
// correlation data.
//
// 🚀 What lives here?
//
//	Two symmetric containers over an ordered set of site types:
//	  • PairTable[V] — a generic table keyed by site-label pairs; writing
//	    (A,B) also writes (B,A).  Used to hold one Potential or one
//	    AtomicClosure per distinct pair and to check the assembly is
//	    complete before a solve.
//	  • MatrixArray — the n×n×N stack of pair functions (potentials,
//	    correlation functions) in one flat row-major buffer, with
//	    symmetry-preserving Set and no-copy Get.
//
// ✨ Key guarantees:
//   - symmetry is an invariant, not a convention: every write lands in both
//     orientations
//   - deterministic pair iteration (row-major over i ≤ j), no map ordering
//   - bounds and shape violations return sentinel errors, never panic
//
// ⚙️ Usage:
//
//	pt, _ := pairtable.NewPairTable[potential.Potential]("A", "B")
//	_ = pt.Set("A", "B", wca)
//	if err := pt.Complete(); err != nil { ... } // ErrPairUnset: ("A","A")...
//
//	ma, _ := pairtable.NewMatrixArray(2, 1024)
//	_ = ma.Set(0, 1, u) // stores into (0,1) and (1,0)
//
// Complexity: PairTable operations are O(1) per pair; MatrixArray Set copies
// O(N), Get is O(1).
package pairtable
