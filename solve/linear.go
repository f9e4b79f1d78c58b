// SPDX-License-Identifier: MIT

package solve

import "github.com/katalvlaran/lvlmath/matrix"

// LinearSystem solves the n×n system a·x = b where a is row-major and writes
// the solution into x. It performs Gaussian elimination with partial pivoting;
// x is written only on success and may alias b; a is never mutated, nor is b unless it is x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a shorter than n*n, b or x shorter than n),
//     ErrSingular (no pivot above the resolved epsilon).
//   - matrix.ErrInvalidDimensions for n < 1.
func LinearSystem(a, b, x []float64, n int, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := matrix.SolveFlat(a, b, x, n, o.pivotOptions()...); err != nil {
		return solveErrorf(opLinearSystem, err)
	}

	return nil
}

// Linear solves m·x = b for any square Matrix and returns a fresh x.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != rows), ErrSingular.
func Linear(m matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	x, err := matrix.Solve(m, b, o.pivotOptions()...)
	if err != nil {
		return nil, solveErrorf(opLinear, err)
	}

	return x, nil
}
