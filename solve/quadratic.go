// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"
	"math"
)

// Quadratic returns the real roots of a·x² + b·x + c = 0.
//
// Implementation:
//   - Stage 1: |a| < eps → ErrDegenerate (a linear or constant equation).
//   - Stage 2: disc = b² - 4ac; disc < 0 → ErrComplexRoots.
//   - Stage 3: root1 = (-b + √disc) / 2a, root2 = (-b - √disc) / 2a.
//
// The roots are not sorted: root1 always carries +√disc. A zero discriminant
// yields two equal roots. NaN coefficients propagate into NaN roots.
func Quadratic(a, b, c float64, opts ...Option) (root1, root2 float64, err error) {
	o := gatherOptions(opts...)
	if math.Abs(a) < o.eps {
		return 0, 0, solveErrorf(opQuadratic, fmt.Errorf("a=%g: %w", a, ErrDegenerate))
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, solveErrorf(opQuadratic, fmt.Errorf("discriminant=%g: %w", disc, ErrComplexRoots))
	}

	sq := math.Sqrt(disc)
	root1 = (-b + sq) / (2 * a)
	root2 = (-b - sq) / (2 * a)

	return root1, root2, nil
}
