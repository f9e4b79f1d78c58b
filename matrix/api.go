// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	fillIdentity(I.data, n)

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Errors: ErrNilMatrix for a nil or typed-nil input.
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// Det is an alias for Determinant (cofactor expansion).
func Det(m Matrix) (float64, error) { return Determinant(m) }

// InverseOf is an alias for Inverse with default options.
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }

// Equal reports whether a and b have the same shape and |a[i,j]-b[i,j]| <= tol
// everywhere. A negative tol is treated as |tol|. Nil inputs compare unequal.
// Complexity: O(r*c).
func Equal(a, b Matrix, tol float64) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	if tol < 0 {
		tol = -tol
	}
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv, d float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			d = av - bv
			if d < 0 {
				d = -d
			}
			if !(d <= tol) { // NaN never compares equal
				return false
			}
		}
	}

	return true
}
