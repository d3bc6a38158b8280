// Package homkit is an executable playground for exact integer linear
// algebra over small finite complexes — Smith Normal Form with verifiable
// certificates, and simplicial homology of labeled quivers.
//
// 🚀 What is homkit?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Integer matrix kernel: dense int64 matrices + elementary unimodular ops
//		• Smith Normal Form: D = U·A·V with divisibility chain and tracked transforms
//		• Certificates: independent exact recomputation of U·A·V vs D
//		• Diagonal interpreter: free rank, torsion factors, ℤ^r ⊕ ℤ/t decompositions
//		• Chain complexes: 0-/1-/2-chains of a labeled quiver + boundary matrices
//		• Homology: Betti numbers and torsion for H0/H1, with redundant cross-checks
//
// ✨ Why choose homkit?
//
//   - Exact – every computation stays in ℤ; no floating-point drift in results
//   - Auditable – reducer outputs can be re-verified without trusting the reducer
//   - Deterministic – fixed pivot tie-breaks and loop orders, identical runs
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	intmat/   — dense integer matrices, elementary row/col operations, extended GCD
//	smith/    — Smith Normal Form, unimodular inverse, certificates, diagonal summaries
//	homology/ — quivers, chain bases, boundary operators, H0/H1 rank & torsion
//
// Quick ASCII example (torus skeleton — one vertex, two loops):
//
//	     a
//	    ┌─┐
//	    │ ●───┐
//	    └─┘   │ b
//	      └───┘
//
//	q := &homology.Quiver{
//	    Objects: []string{"v"},
//	    Edges: []homology.Edge{
//	        {Src: "v", Dst: "v", Label: "a"},
//	        {Src: "v", Dst: "v", Label: "b"},
//	    },
//	}
//	res, _ := homology.Compute(q)
//	// res.H0.Rank == 1, res.H1.Rank == 2, no torsion
//
// See the examples in each package for usage patterns.
package homkit
