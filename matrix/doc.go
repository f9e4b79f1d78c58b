// Package matrix offers dense row-major linear algebra on float64 data.
//
// The matrix package provides:
//
//   - Dense, a shape-carrying row-major matrix with bounds-checked At/Set and
//     an optional finite-only numeric policy.
//   - Kernels over the Matrix interface: Mul, Transpose, Add, Sub, Scale,
//     MatVec, Determinant (cofactor expansion), DeterminantLU, LU with partial
//     pivoting, Inverse and Solve.
//   - A flat-buffer surface (MulFlat, TransposeFlat, IdentityFlat,
//     DeterminantFlat, InverseFlat, SolveFlat) for callers that keep plain
//     []float64 buffers and pass the shape explicitly.
//
// All failures are reported through the sentinel errors in errors.go and can be
// matched with errors.Is. No kernel retains its inputs or holds global state, so
// every function is safe for concurrent use on disjoint buffers.
//
// See the examples in this package for usage patterns.
package matrix
