// Package intmat provides dense exact-integer matrices and the primitive
// operations every integer-reduction algorithm in homkit is built from.
//
// The intmat package provides:
//
//   - Dense, a row-major int64 matrix with safe At/Set accessors
//     (errors, never panics, on out-of-range indices).
//   - Exact multiplication, equality and identity construction.
//   - Elementary unimodular row/column operations (swap, add-scaled,
//     negate, 2×2 Bézout combination) — the building blocks of Smith
//     Normal Form reduction and unimodular inversion.
//   - ExtendedGCD, the Bézout primitive that lets elimination stay in ℤ
//     instead of requiring division.
//
// All arithmetic is machine-integer exact: there is no rounding, and by
// design no overflow guard either — inputs are assumed small (teaching
// scale), per the library contract.
//
// Determinism: every kernel uses fixed loop orders; identical inputs
// always produce identical outputs.
//
// See the examples in this package and smith for usage patterns.
package intmat
