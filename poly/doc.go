// Package poly implements polynomial arithmetic on dense coefficient slices.
//
// Two surfaces are offered:
//
//   - Flat kernels (Eval, Derivative, Add, Mul) take the coefficients and an
//     explicit degree and write into caller-provided buffers. They only check
//     bounds and report ErrNegativeDegree or ErrShortBuffer.
//   - Polynomial, a small value type built on the same kernels, for callers
//     that prefer allocation over buffer management.
//
// Evaluation uses Horner's scheme. No result is ever trimmed implicitly: the
// sum of two degree-2 polynomials whose leading terms cancel still has degree 2.
package poly
