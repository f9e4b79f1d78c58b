// SPDX-License-Identifier: MIT

// Package matrix - flat-buffer call surface.
//
// Purpose:
//   - Serve callers that keep matrices as plain row-major []float64 and pass
//     the shape alongside the data (element (i,j) at i*cols+j).
//   - Output buffers are owned and sized by the caller; nothing is retained.
//
// Contract:
//   - Every function validates shapes and buffer lengths BEFORE writing, so a
//     failed call leaves the output untouched.
//   - Output buffers must not alias inputs (MulFlat, TransposeFlat, InverseFlat);
//     SolveFlat accepts x aliasing b.
//   - The kernels are the same ones used by the Dense surface, so both
//     surfaces produce bit-identical results.

package matrix

import "fmt"

// Operation tags for the flat surface.
const (
	opMulFlat         = "MulFlat"
	opTransposeFlat   = "TransposeFlat"
	opIdentityFlat    = "IdentityFlat"
	opDeterminantFlat = "DeterminantFlat"
	opInverseFlat     = "InverseFlat"
)

// MulFlat writes C = A×B where A is rowsA×colsA and B is rowsB×colsB.
// c must hold at least rowsA*colsB elements.
//
// Errors:
//   - ErrDimensionMismatch when colsA != rowsB or any buffer is too short.
//   - ErrInvalidDimensions for negative dimensions; ErrNilMatrix for a nil buffer.
//
// Complexity: Time O(rowsA*colsA*colsB), no allocations.
func MulFlat(a []float64, rowsA, colsA int, b []float64, rowsB, colsB int, c []float64) error {
	if colsA != rowsB {
		return matrixErrorf(opMulFlat, fmt.Errorf("cols(A)=%d rows(B)=%d: %w", colsA, rowsB, ErrDimensionMismatch))
	}
	if err := ValidateFlat(a, rowsA, colsA); err != nil {
		return matrixErrorf(opMulFlat, err)
	}
	if err := ValidateFlat(b, rowsB, colsB); err != nil {
		return matrixErrorf(opMulFlat, err)
	}
	if err := ValidateFlat(c, rowsA, colsB); err != nil {
		return matrixErrorf(opMulFlat, err)
	}
	mulKernel(a, b, c, rowsA, colsA, colsB)

	return nil
}

// TransposeFlat writes T = Aᵀ where A is rows×cols; t must hold cols*rows elements.
// Zero rows or cols are legal and write nothing.
func TransposeFlat(a []float64, rows, cols int, t []float64) error {
	if err := ValidateFlat(a, rows, cols); err != nil {
		return matrixErrorf(opTransposeFlat, err)
	}
	if err := ValidateFlat(t, cols, rows); err != nil {
		return matrixErrorf(opTransposeFlat, err)
	}
	transposeKernel(a, t, rows, cols)

	return nil
}

// fillIdentity writes the n×n identity into m (row-major).
func fillIdentity(m []float64, n int) {
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				m[i*n+j] = 1.0
			} else {
				m[i*n+j] = 0.0
			}
		}
	}
}

// IdentityFlat writes I_n into m.
// Errors: ErrNilMatrix when m is nil (even for n == 0), ErrInvalidDimensions
// for n < 0, ErrDimensionMismatch when len(m) < n*n.
func IdentityFlat(m []float64, n int) error {
	if m == nil {
		return matrixErrorf(opIdentityFlat, ErrNilMatrix)
	}
	if err := ValidateFlat(m, n, n); err != nil {
		return matrixErrorf(opIdentityFlat, err)
	}
	fillIdentity(m, n)

	return nil
}

// DeterminantFlat returns det of the n×n row-major matrix m by cofactor expansion.
// Errors: ErrNilMatrix (nil m), ErrInvalidDimensions (n < 1 or n*n overflowing
// int), ErrDimensionMismatch.
//
// Unlike the C call surface, which yields 0.0 for n == 0 (an empty expansion),
// an empty matrix is reported as ErrInvalidDimensions rather than a determinant.
func DeterminantFlat(m []float64, n int) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opDeterminantFlat, ErrNilMatrix)
	}
	if n < 1 {
		return 0, matrixErrorf(opDeterminantFlat, ErrInvalidDimensions)
	}
	if err := ValidateFlat(m, n, n); err != nil {
		return 0, matrixErrorf(opDeterminantFlat, err)
	}

	return cofactorDet(m, n), nil
}

// InverseFlat writes A^{-1} of the n×n row-major matrix m into inv.
// inv is written only on success.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (n < 1), ErrDimensionMismatch,
//     ErrSingular (numerically zero pivot under the resolved epsilon).
func InverseFlat(m []float64, n int, inv []float64, opts ...Option) error {
	if m == nil || inv == nil {
		return matrixErrorf(opInverseFlat, ErrNilMatrix)
	}
	if n < 1 {
		return matrixErrorf(opInverseFlat, ErrInvalidDimensions)
	}
	if err := ValidateFlat(m, n, n); err != nil {
		return matrixErrorf(opInverseFlat, err)
	}
	if err := ValidateFlat(inv, n, n); err != nil {
		return matrixErrorf(opInverseFlat, err)
	}
	o := gatherOptions(opts...)
	lu, perm, _, err := luDecompose(m, n, o.eps)
	if err != nil {
		return matrixErrorf(opInverseFlat, err)
	}
	luInverseInto(lu, perm, n, inv)

	return nil
}

// SolveFlat solves the n×n system a·x = b and writes x.
// x is written only on success. x may alias b (in-place solve): the right-hand
// side is copied before substitution. When x and b are distinct, b is not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (n < 1), ErrDimensionMismatch, ErrSingular.
func SolveFlat(a, b, x []float64, n int, opts ...Option) error {
	if a == nil || b == nil || x == nil {
		return matrixErrorf(opSolve, ErrNilMatrix)
	}
	if n < 1 {
		return matrixErrorf(opSolve, ErrInvalidDimensions)
	}
	if err := ValidateFlat(a, n, n); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if len(b) < n || len(x) < n {
		return matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	lu, perm, _, err := luDecompose(a, n, o.eps)
	if err != nil {
		return matrixErrorf(opSolve, err)
	}
	rhs := make([]float64, n)
	copy(rhs, b[:n])
	luSolveInto(lu, perm, n, rhs, x)

	return nil
}
