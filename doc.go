// Package lvlmath is a small toolbox of numerical primitives: vectors,
// dense matrices, polynomials, equation solvers, plus trigonometric and
// geometric helpers.
//
// What is inside?
//
//   - vector/ : Dot, Add, Sub, Scale, Norm on equal-length []float64 (in-place safe)
//   - matrix/ : Dense row-major matrices and a flat-buffer surface; Mul,
//     Transpose, Identity, Determinant (cofactor), DeterminantLU, LU with
//     partial pivoting, Inverse, Solve
//   - poly/   : Horner evaluation, derivative, addition and convolution on
//     coefficient slices, plus the Polynomial value type
//   - solve/  : Quadratic roots and square linear systems
//   - trig/   : degree/radian conversion and trig/hyperbolic functions
//   - geom/   : 2D/3D distances, circles, triangles, transforms, point-plane distance
//
// Conventions shared by every package:
//
//   - Matrices are row-major: element (i,j) lives at i*cols+j.
//   - Polynomials store c[i] as the coefficient of x^i; degrees are never
//     trimmed implicitly.
//   - Failures are sentinel errors matched with errors.Is; panics are reserved
//     for programmer errors such as invalid option values.
//   - No package holds global mutable state; every function is safe for
//     concurrent use on disjoint buffers.
//
// Quick example (see examples/polynomial_fit.go for a full program):
//
//	a, _ := matrix.NewDenseFrom(2, 2, []float64{4, 7, 2, 6})
//	inv, _ := matrix.Inverse(a)       // [[0.6, -0.7], [-0.2, 0.4]]
//	r1, r2, _ := solve.Quadratic(1, -3, 2) // 2, 1
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath
