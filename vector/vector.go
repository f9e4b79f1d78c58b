// SPDX-License-Identifier: MIT

// Package vector implements element-wise kernels over equal-length []float64.
//
// Contract:
//   - Callers own every output buffer; nothing is allocated or retained.
//   - dst may alias a or b: each element is read before it is written.
//   - Mismatched lengths are a programmer error and panic with a stable message.
//   - Loops run in increasing index order, so results are deterministic.
package vector

import "math"

const panicLenMismatch = "vector: length mismatch"

// mustSameLen panics unless every slice has the length of the first.
func mustSameLen(xs ...[]float64) {
	n := len(xs[0])
	for _, x := range xs[1:] {
		if len(x) != n {
			panic(panicLenMismatch)
		}
	}
}

// Dot returns Σ a[i]*b[i]. Empty inputs yield 0.
// Complexity: O(n).
func Dot(a, b []float64) float64 {
	mustSameLen(a, b)
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Add writes dst[i] = a[i] + b[i].
func Add(dst, a, b []float64) {
	mustSameLen(dst, a, b)
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub writes dst[i] = a[i] - b[i].
func Sub(dst, a, b []float64) {
	mustSameLen(dst, a, b)
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Scale writes dst[i] = a[i] * s.
func Scale(dst, a []float64, s float64) {
	mustSameLen(dst, a)
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// Norm returns the Euclidean length sqrt(Dot(a, a)).
func Norm(a []float64) float64 {
	return math.Sqrt(Dot(a, a))
}
