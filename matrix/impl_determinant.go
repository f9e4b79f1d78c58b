// SPDX-License-Identifier: MIT

// Package matrix - determinant by recursive cofactor (Laplace) expansion.
//
// The expansion runs along row 0:
//
//	det(A) = Σ_col (-1)^col · A[0,col] · det(minor(0,col))
//
// with base cases n=1 (A[0]) and n=2 (ad − bc). Cost is O(n!) time; every
// recursion frame owns exactly one (n-1)×(n-1) minor buffer, reused across
// columns and released when the frame returns.
//
// For large n use DeterminantLU (O(n^3)); its operation order differs, so the
// results agree only within floating-point tolerance.

package matrix

const opDeterminant = "Determinant"

// Determinant returns det(m) by cofactor expansion along the first row.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNonSquare (rows != cols).
//
// Determinism:
//   - Columns are accumulated left to right from 0.0; the result is
//     bit-identical across platforms for identical inputs.
//
// Complexity:
//   - Time O(n!), Space O(n^2) live at any time.
func Determinant(m Matrix) (float64, error) {
	data, n, err := squareData(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(data, n), nil
}

// cofactorDet evaluates the determinant of the n×n row-major matrix a (n ≥ 1).
// Products are wrapped in explicit float64 conversions so the compiler cannot
// fuse them into FMA instructions and change rounding.
func cofactorDet(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return float64(a[0]*a[3]) - float64(a[1]*a[2])
	}

	sub := n - 1
	minor := make([]float64, sub*sub) // owned by this frame
	det := 0.0

	var col, i, j, idx int
	var sign, cofactor float64
	for col = 0; col < n; col++ {
		// Drop row 0 and column col.
		idx = 0
		for i = 1; i < n; i++ {
			for j = 0; j < n; j++ {
				if j == col {
					continue
				}
				minor[idx] = a[i*n+j]
				idx++
			}
		}
		sign = 1.0
		if col%2 == 1 {
			sign = -1.0
		}
		cofactor = sign * a[col]
		det += float64(cofactor * cofactorDet(minor, sub))
	}

	return det
}
