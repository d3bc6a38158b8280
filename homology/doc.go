// Package homology builds chain complexes from labeled quivers and
// computes their integral homology groups H0 and H1 via Smith Normal
// Form.
//
// 🚀 From a quiver to homology:
//
//	A quiver is a finite directed multigraph with labeled edges. Its
//	chain complex has vertices as 0-cells, bounded-length paths as
//	1-cells, and composable path pairs as 2-cells, connected by the
//	boundary maps ∂1(p) = dst(p) − src(p) and ∂2(f,g) = g − f;g + f.
//	The homology of this complex measures:
//	  • H0: connected components (one ℤ per component)
//	  • H1: independent cycles, plus torsion when the 2-cells wrap
//	    around a cycle a nontrivial number of times
//
// ✨ Key features:
//   - deterministic basis enumeration: input order in, same complex out
//   - exact-integer ranks and torsion via the smith package
//   - every SNF result re-verified through its certificate before use
//   - built-in consistency cross-checks (union-find component count,
//     rational Gaussian rank) that flag implementation bugs as
//     ErrInconsistent
//
// ⚙️ Usage:
//
//	import "github.com/quiverlab/homkit/homology"
//
//	torus := &homology.Quiver{
//	    Objects: []string{"v"},
//	    Edges: []homology.Edge{
//	        {Src: "v", Dst: "v", Label: "a"},
//	        {Src: "v", Dst: "v", Label: "b"},
//	    },
//	}
//	res, _ := homology.Compute(torus)  // H0 rank 1, H1 rank 2
//
// Performance:
//
//   - Basis size grows with the path bound: |C1| ≤ Σ_{k≤L} |E|^k, so
//     keep MaxPathLen small (the default is 2)
//   - Runtime is dominated by the two SNF reductions
//
// The package never mutates its input quiver.
package homology
