// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors. The flat kernels only check bounds; every returned error
// wraps one of these with the operation name and can be matched with errors.Is.
var (
	// ErrNegativeDegree indicates a degree argument below zero.
	ErrNegativeDegree = errors.New("poly: negative degree")

	// ErrShortBuffer indicates an input or output slice shorter than the degree requires.
	ErrShortBuffer = errors.New("poly: buffer too short for degree")
)

// Operation tags.
const (
	opEval       = "Eval"
	opDerivative = "Derivative"
	opAdd        = "Add"
	opMul        = "Mul"
)

// polyErrorf wraps err with an operation tag, preserving it via %w.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkCoeffs validates a coefficient slice against its declared degree.
// The comparison is degree >= len(c) so a degree near MaxInt cannot wrap.
func checkCoeffs(c []float64, degree int) error {
	if degree < 0 {
		return ErrNegativeDegree
	}
	if degree >= len(c) {
		return fmt.Errorf("len=%d degree=%d: %w", len(c), degree, ErrShortBuffer)
	}

	return nil
}

// checkOut validates an output slice that must hold coefficients 0..degree.
func checkOut(out []float64, degree int) error {
	if degree >= len(out) {
		return fmt.Errorf("output len=%d degree=%d: %w", len(out), degree, ErrShortBuffer)
	}

	return nil
}

// sumDegree returns degA+degB, or ErrShortBuffer when the sum overflows int.
// Both degrees must be non-negative.
func sumDegree(degA, degB int) (int, error) {
	if degA > math.MaxInt-degB {
		return 0, fmt.Errorf("degree %d+%d overflows: %w", degA, degB, ErrShortBuffer)
	}

	return degA + degB, nil
}
