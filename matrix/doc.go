// Package matrix offers a small dense matrix toolkit used to assemble and
// verify tridiagonal systems.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateVecLen).
//   - MatVec, a deterministic matrix-vector kernel with a *Dense fast path.
//   - NewTridiagonal, which assembles the full n×n matrix A from the
//     lower/diag/upper coefficient sequences used by package tridiag, and
//     Residual, which computes A·x − F for checking a solution.
//
// Dense storage costs O(n²) memory, so the assembly helpers are meant for
// verification and small systems, not for solving. See package tridiag for
// the O(n) solver.
package matrix
