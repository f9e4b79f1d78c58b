// SPDX-License-Identifier: MIT

package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlmath/matrix"
)

var (
	// ErrDegenerate indicates a quadratic whose leading coefficient is below
	// the degeneracy threshold, i.e. not a true quadratic.
	ErrDegenerate = errors.New("solve: degenerate quadratic (|a| below epsilon)")

	// ErrComplexRoots indicates a negative discriminant; no real roots exist.
	ErrComplexRoots = errors.New("solve: complex roots")
)

// Linear-system failures are reported with the matrix sentinels so callers can
// match either name with errors.Is.
var (
	ErrSingular          = matrix.ErrSingular
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrNilMatrix         = matrix.ErrNilMatrix
	ErrNonSquare         = matrix.ErrNonSquare
)

// Operation tags.
const (
	opQuadratic    = "Quadratic"
	opLinearSystem = "LinearSystem"
	opLinear       = "Linear"
)

// solveErrorf wraps err with an operation tag, preserving it via %w.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
