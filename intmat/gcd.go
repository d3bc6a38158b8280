// SPDX-License-Identifier: MIT
// Package intmat - extended Euclid over int64.

package intmat

// ExtendedGCD returns (g, x, y) with a*x + b*y = g = gcd(|a|, |b|) and
// g >= 0. By convention ExtendedGCD(0, 0) = (0, 0, 0).
//
// This is the core primitive for all row/column combination steps
// (Bézout elimination), which is why reductions in this library work
// over the integers rather than requiring division.
//
// Implementation:
//   - Stage 1: iterative extended Euclid on (a, b), tracking both
//     coefficient sequences.
//   - Stage 2: if the resulting g is negative (possible when the last
//     nonzero remainder inherited a sign), flip all three outputs.
//
// Determinism:
//   - Purely value-driven; identical inputs yield identical triples.
//
// Complexity:
//   - Time O(log min(|a|,|b|)), Space O(1).
func ExtendedGCD(a, b int64) (g, x, y int64) {
	// Iterative extended Euclid: maintain (oldR, r), (oldS, s), (oldT, t)
	// with the invariants oldR = a*oldS + b*oldT and r = a*s + b*t.
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)

	var q int64 // quotient of the current division step
	for r != 0 {
		q = oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}

	// Normalize: gcd is reported nonnegative.
	if oldR < 0 {
		oldR, oldS, oldT = -oldR, -oldS, -oldT
	}

	return oldR, oldS, oldT
}

// GCD returns gcd(|a|, |b|) with GCD(0, 0) = 0. Complexity: O(log n).
func GCD(a, b int64) int64 {
	g, _, _ := ExtendedGCD(a, b)

	return g
}

// LCM returns the least common multiple of |a| and |b|, with
// LCM(x, 0) = 0. Complexity: O(log n).
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}

	return a / GCD(a, b) * b
}
