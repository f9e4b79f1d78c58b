// SPDX-License-Identifier: MIT

// Package solve: functional configuration for the solvers.
//   - Option / Options with documented defaults,
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper (internal).
package solve

import (
	"math"

	"github.com/katalvlaran/lvlmath/matrix"
)

const (
	// DefaultEpsilon is both the quadratic degeneracy threshold (|a| < eps)
	// and the pivot tolerance forwarded to the linear solvers.
	DefaultEpsilon = 1e-12
)

const panicEpsilonInvalid = "solve: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps        float64
	matrixOpts []matrix.Option
}

// Epsilon reports the resolved threshold.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the degeneracy threshold and pivot tolerance.
// Panics when eps is NaN, infinite or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMatrixOptions forwards options to the matrix kernels used by the linear
// solvers. They are applied after the epsilon derived from WithEpsilon, so a
// matrix.WithEpsilon passed here wins for pivoting.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

// NewSolveOptions resolves option setters against documented defaults.
func NewSolveOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// pivotOptions returns the matrix options for the resolved configuration.
func (o Options) pivotOptions() []matrix.Option {
	out := make([]matrix.Option, 0, len(o.matrixOpts)+1)
	out = append(out, matrix.WithEpsilon(o.eps))

	return append(out, o.matrixOpts...)
}
