// Package smith computes the Smith Normal Form of integer matrices,
// with unimodular transform tracking, certificate verification, and
// interpretation of the resulting diagonal as an abelian-group
// decomposition.
//
// 🚀 What is the Smith Normal Form?
//
//	Every integer matrix A factors as D = U·A·V where U and V are
//	unimodular (det ±1) and D is diagonal with a divisibility chain
//	d_0 | d_1 | … . The d_i are the invariant factors of A; they
//	classify the cokernel ℤ^n / Aℤ^m up to isomorphism, which is what
//	makes SNF the workhorse of integral homology. It's widely used in:
//	  • Homology of simplicial and CW complexes
//	  • Classification of finitely generated abelian groups
//	  • Integer linear systems and lattice normalization
//
// ✨ Key features:
//   - exact integer arithmetic throughout (Bézout elimination, no division)
//   - tracked U and V transforms, unimodular by construction
//   - deterministic pivoting: smallest-magnitude entry, first in scan order
//   - certificates: Verify recomputes U·A·V independently of the reducer
//   - diagonal summaries: rank, torsion factors, ℤ^r ⊕ ℤ/t pretty forms
//
// ⚙️ Usage:
//
//	import "github.com/quiverlab/homkit/smith"
//
//	a, _ := intmat.NewFromRows([][]int64{{2, 4}, {4, 8}})
//	dec, _ := smith.Decompose(a)          // dec.D is diag(2, 0)
//	cert, _ := smith.Verify(a, dec)       // cert.OK == true
//	sum := smith.Explain(dec.D)           // "ℤ/2" bookkeeping
//
// Performance:
//
//   - Time:   O(min(r,c) · r·c · log(max|a_ij|)) in practice on the tiny,
//     dense matrices this library targets
//   - Memory: O(r² + c²) for the tracked transforms
//
// Entries are machine integers; magnitudes are assumed to stay small
// (no overflow guard), per the library contract.
package smith
