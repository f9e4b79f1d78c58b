// Package solve finds roots of quadratics and solutions of square linear systems.
//
//   - Quadratic reports ErrDegenerate when |a| is below the threshold and
//     ErrComplexRoots for a negative discriminant.
//   - LinearSystem (flat row-major buffers) and Linear (matrix.Matrix) run
//     Gaussian elimination with partial pivoting from package matrix and
//     report ErrSingular when no usable pivot exists.
//
// Both solvers are real implementations: neither ever returns a placeholder
// result, and x is left untouched whenever an error is returned.
package solve
