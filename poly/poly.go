// SPDX-License-Identifier: MIT

// Package poly - flat coefficient-slice kernels.
//
// Representation:
//   - c[i] is the coefficient of x^i; a polynomial of degree d uses c[0..d].
//   - The degree is passed explicitly and never inferred; trailing zero
//     coefficients are kept as-is (see Polynomial.Trim for the explicit form).
//   - Outputs are caller-owned and must hold the number of values documented
//     per function. Slices may be longer than required; extra values are ignored.

package poly

// Eval returns Σ c[i]·x^i for i in [0, degree] using Horner's scheme.
//
// Errors:
//   - ErrNegativeDegree, ErrShortBuffer (len(c) <= degree).
//
// Complexity: O(degree).
func Eval(c []float64, degree int, x float64) (float64, error) {
	if err := checkCoeffs(c, degree); err != nil {
		return 0, polyErrorf(opEval, err)
	}
	acc := c[degree]
	for i := degree - 1; i >= 0; i-- {
		acc = acc*x + c[i]
	}

	return acc, nil
}

// Derivative writes d/dx of c into deriv: deriv[i-1] = c[i]·i for i in [1, degree].
// The derivative of a constant (degree 0) is written as the single value 0.
// deriv must hold max(degree, 1) values and must not alias c.
//
// Errors:
//   - ErrNegativeDegree, ErrShortBuffer.
func Derivative(c []float64, degree int, deriv []float64) error {
	if err := checkCoeffs(c, degree); err != nil {
		return polyErrorf(opDerivative, err)
	}
	if err := checkOut(deriv, max(degree, 1)-1); err != nil {
		return polyErrorf(opDerivative, err)
	}
	if degree == 0 {
		deriv[0] = 0.0
		return nil
	}
	for i := 1; i <= degree; i++ {
		deriv[i-1] = c[i] * float64(i)
	}

	return nil
}

// Add writes a + b into result and returns the result degree max(degA, degB).
// Leading terms that cancel are not trimmed. result must hold degR+1 values;
// it may alias a or b.
//
// Errors:
//   - ErrNegativeDegree, ErrShortBuffer. On error result is not written.
func Add(a []float64, degA int, b []float64, degB int, result []float64) (int, error) {
	if err := checkCoeffs(a, degA); err != nil {
		return 0, polyErrorf(opAdd, err)
	}
	if err := checkCoeffs(b, degB); err != nil {
		return 0, polyErrorf(opAdd, err)
	}
	degR := max(degA, degB)
	if err := checkOut(result, degR); err != nil {
		return 0, polyErrorf(opAdd, err)
	}

	var av, bv float64
	for i := 0; i <= degR; i++ {
		av, bv = 0, 0
		if i <= degA {
			av = a[i]
		}
		if i <= degB {
			bv = b[i]
		}
		result[i] = av + bv
	}

	return degR, nil
}

// Mul writes the product a·b into result and returns degR = degA + degB.
// result[0..degR] is zeroed first, then result[i+j] += a[i]·b[j] in i→j order.
// result must hold degR+1 values and must not alias a or b.
//
// Errors:
//   - ErrNegativeDegree, ErrShortBuffer. On error result is not written.
//
// Complexity: O(degA·degB).
func Mul(a []float64, degA int, b []float64, degB int, result []float64) (int, error) {
	if err := checkCoeffs(a, degA); err != nil {
		return 0, polyErrorf(opMul, err)
	}
	if err := checkCoeffs(b, degB); err != nil {
		return 0, polyErrorf(opMul, err)
	}
	degR, err := sumDegree(degA, degB)
	if err != nil {
		return 0, polyErrorf(opMul, err)
	}
	if err = checkOut(result, degR); err != nil {
		return 0, polyErrorf(opMul, err)
	}

	for k := 0; k <= degR; k++ {
		result[k] = 0.0
	}
	var i, j int
	for i = 0; i <= degA; i++ {
		for j = 0; j <= degB; j++ {
			result[i+j] += a[i] * b[j]
		}
	}

	return degR, nil
}
