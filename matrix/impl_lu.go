// SPDX-License-Identifier: MIT

// Package matrix - LU factorization with partial pivoting and the kernels
// built on it: Inverse, Solve and DeterminantLU.
//
// Purpose:
//   - One elimination routine (luDecompose) feeds every consumer so pivoting,
//     singularity detection and loop order are identical across them.
//   - Inputs are never mutated; the factorization works on a private copy.
//
// Numeric policy:
//   - Row k is swapped with the row holding the largest |a[i,k]| for i ≥ k
//     (first maximum wins on ties).
//   - A pivot with |p| <= eps is numerically zero → ErrSingular.

package matrix

import (
	"errors"
	"math"
)

// Operation tags for this file.
const (
	opLU            = "LU"
	opInverse       = "Inverse"
	opSolve         = "Solve"
	opDeterminantLU = "DeterminantLU"
)

// LUP is a partial-pivot factorization P·A = L·U.
//   - L is unit lower triangular, U is upper triangular.
//   - Perm maps factor rows to source rows: row i of P·A is row Perm[i] of A.
//   - Sign is the parity of the permutation (+1 even, -1 odd).
type LUP struct {
	L    *Dense
	U    *Dense
	Perm []int
	Sign float64
}

// luDecompose factorizes the n×n row-major matrix src with partial pivoting.
// It returns the compact factors (strict lower part holds L without its unit
// diagonal, upper part holds U), the row permutation and its parity.
//
// Implementation:
//   - Stage 1: copy src; perm = identity; sign = +1.
//   - Stage 2: for k = 0..n-1 pick the pivot row, swap, eliminate below.
//
// Errors:
//   - ErrSingular when max_{i≥k} |a[i,k]| <= eps.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func luDecompose(src []float64, n int, eps float64) ([]float64, []int, float64, error) {
	lu := make([]float64, n*n)
	copy(lu, src[:n*n])
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p       int
		rowK, rowI, rowP int
		maxAbs, v, f     float64
		pivot            float64
	)
	for k = 0; k < n; k++ {
		// Pivot search down column k.
		p = k
		maxAbs = math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(lu[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs <= eps {
			return nil, nil, 0, ErrSingular
		}

		rowK = k * n
		if p != k {
			rowP = p * n
			for j = 0; j < n; j++ {
				lu[rowK+j], lu[rowP+j] = lu[rowP+j], lu[rowK+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		// Eliminate below the pivot, storing multipliers in place.
		pivot = lu[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			f = lu[rowI+k] / pivot
			lu[rowI+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu[rowI+j] -= f * lu[rowK+j]
			}
		}
	}

	return lu, perm, sign, nil
}

// luSolveInto solves L·U·x = P·b for compact factors and writes x into dst.
// dst and b must both hold n elements and may not alias.
func luSolveInto(lu []float64, perm []int, n int, b, dst []float64) {
	var i, k, base int
	var sum float64
	// Forward substitution: L*y = P*b (unit diagonal).
	for i = 0; i < n; i++ {
		sum = b[perm[i]]
		base = i * n
		for k = 0; k < i; k++ {
			sum -= lu[base+k] * dst[k]
		}
		dst[i] = sum
	}
	// Backward substitution: U*x = y.
	for i = n - 1; i >= 0; i-- {
		sum = dst[i]
		base = i * n
		for k = i + 1; k < n; k++ {
			sum -= lu[base+k] * dst[k]
		}
		dst[i] = sum / lu[base+i]
	}
}

// luInverseInto writes A^{-1} (row-major, n×n) into dst using compact factors.
// Column col of the inverse solves A·x = e_col.
func luInverseInto(lu []float64, perm []int, n int, dst []float64) {
	e := make([]float64, n)
	x := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		luSolveInto(lu, perm, n, e, x)
		for i = 0; i < n; i++ {
			dst[i*n+col] = x[i]
		}
	}
}

// squareData validates m as a non-nil square matrix and returns its row-major data.
// The slice may be m's own backing store; callers must not mutate it.
func squareData(m Matrix) ([]float64, int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, 0, err
	}
	d, _, err := toDense(m)
	if err != nil {
		return nil, 0, err
	}

	return d.data, d.r, nil
}

// LU computes the partial-pivot factorization P·A = L·U.
// Implementation:
//   - Stage 1: Validate m (not nil, square); resolve options.
//   - Stage 2: luDecompose on a copy; split compact factors into L and U.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (no pivot above eps).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUP, error) {
	data, n, err := squareData(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	lu, perm, sign, err := luDecompose(data, n, o.eps)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	L, _ := NewDense(n, n) // n ≥ 1 is guaranteed by the Dense constructor of m
	U, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = lu[i*n+j]
			case j == i:
				L.data[i*n+j] = 1.0
				U.data[i*n+j] = lu[i*n+j]
			default:
				U.data[i*n+j] = lu[i*n+j]
			}
		}
	}

	return &LUP{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Inverse computes A^{-1} with LU factorization and partial pivoting.
// The input must be non-nil and square. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: Validate, factorize via luDecompose (pivot tolerance from options).
//   - Stage 2: For each basis column e_col solve L·U·x = P·e_col; write x into column col.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (numerically zero pivot).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - There is no placeholder result: when the matrix cannot be inverted the
//     caller gets ErrSingular and a nil Matrix, never an identity stand-in.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	data, n, err := squareData(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	lu, perm, _, err := luDecompose(data, n, o.eps)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	luInverseInto(lu, perm, n, inv.data)

	return inv, nil
}

// Solve returns x such that m·x = b using Gaussian elimination with partial pivoting.
// Contract: m non-nil and square (n×n); len(b) == n. b is not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	data, n, err := squareData(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err = ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	lu, perm, _, err := luDecompose(data, n, o.eps)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, n)
	luSolveInto(lu, perm, n, b, x)

	return x, nil
}

// DeterminantLU computes det(A) as Sign·∏U[i,i] in O(n^3).
// An exactly zero pivot column yields 0 (the matrix is singular), not an error.
//
// Notes:
//   - The operation order differs from Determinant (cofactor expansion), so the
//     two results may differ in the last bits. Use Determinant when bit-for-bit
//     agreement with the cofactor algorithm matters; use DeterminantLU for n
//     beyond ~10 where O(n!) is prohibitive.
func DeterminantLU(m Matrix) (float64, error) {
	data, n, err := squareData(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminantLU, err)
	}

	return determinantLUFlat(data, n)
}

// determinantLUFlat is the shared body of DeterminantLU for flat data.
func determinantLUFlat(data []float64, n int) (float64, error) {
	lu, _, sign, err := luDecompose(data, n, 0)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	det := sign
	for i := 0; i < n; i++ {
		det *= lu[i*n+i]
	}

	return det, nil
}
