// Package sweep is a small, dependency-light toolkit for tridiagonal linear
// systems: the double-sweep (Thomas) solver plus the dense helpers used to
// verify its answers.
//
// 🚀 What is sweep?
//
//	A pure-Go library that brings together:
//		• Validation of the stability condition before any arithmetic
//		• O(n) forward elimination and back substitution
//		• Factorised systems for many right-hand sides
//		• Concurrent solving of independent systems
//		• Dense assembly and residual checks for verification
//
// ✨ Why choose sweep?
//
//   - Rejects, never approximates: an unstable system returns an error
//     naming the failing inequality and row
//   - Deterministic – identical input yields bit-identical output
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under two subpackages:
//
//	tridiag/  Solve, Validate, NewSystem, SolveAll
//	matrix/   Dense, MatVec, NewTridiagonal, Residual
//
// Quick ASCII example (n = 4):
//
//	| d0 u0          |   | x0 |   | f0 |
//	| l1 d1 u1       | · | x1 | = | f1 |
//	|    l2 d2 u2    |   | x2 |   | f2 |
//	|       l3 d3    |   | x3 |   | f3 |
//
// See examples/ for an implicit heat-equation walkthrough.
//
//	go get github.com/katalvlaran/sweep
package sweep
