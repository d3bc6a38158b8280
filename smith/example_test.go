// Package smith_test - runnable documentation examples.
package smith_test

import (
	"fmt"

	"github.com/quiverlab/homkit/intmat"
	"github.com/quiverlab/homkit/smith"
)

// ExampleDecompose reduces a rank-1 matrix with content gcd 2.
func ExampleDecompose() {
	a, _ := intmat.NewFromRows([][]int64{{2, 4}, {4, 8}})

	dec, _ := smith.Decompose(a)
	fmt.Println("diag:", dec.D.Diagonal())

	cert, _ := smith.Verify(a, dec)
	fmt.Println("certified:", cert.OK)
	// Output:
	// diag: [2 0]
	// certified: true
}

// ExampleExplain reads a reduced diagonal as an abelian group.
func ExampleExplain() {
	d, _ := intmat.NewFromRows([][]int64{{1, 0}, {0, 2}})

	sum := smith.Explain(d)
	fmt.Println(sum.PrettyForm)
	// Output:
	// ℤ ⊕ ℤ/2
}

// ExampleUnimodularInverse inverts a det = 1 matrix exactly over ℤ.
func ExampleUnimodularInverse() {
	m, _ := intmat.NewFromRows([][]int64{{2, 1}, {1, 1}})

	inv, _ := smith.UnimodularInverse(m)
	fmt.Print(inv)
	// Output:
	// [1, -1]
	// [-1, 2]
}
