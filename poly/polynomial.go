// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math"
	"strings"
)

// Polynomial is an immutable value wrapper over the flat kernels. Its degree
// is len(coefficients)-1; the zero value behaves as the constant 0.
type Polynomial struct {
	c []float64
}

// New returns a polynomial with coefficients c[i] for x^i. The slice is copied.
// No coefficients yields the constant 0.
func New(c ...float64) Polynomial {
	if len(c) == 0 {
		return Polynomial{c: []float64{0}}
	}
	cp := make([]float64, len(c))
	copy(cp, c)

	return Polynomial{c: cp}
}

func (p Polynomial) coeffs() []float64 {
	if len(p.c) == 0 {
		return []float64{0}
	}

	return p.c
}

// Degree returns the stored degree, including trailing zero coefficients.
func (p Polynomial) Degree() int { return len(p.coeffs()) - 1 }

// Coeffs returns a copy of the coefficients, lowest power first.
func (p Polynomial) Coeffs() []float64 {
	c := p.coeffs()
	out := make([]float64, len(c))
	copy(out, c)

	return out
}

// Eval returns p(x).
func (p Polynomial) Eval(x float64) float64 {
	v, _ := Eval(p.coeffs(), p.Degree(), x) // shape is consistent by construction

	return v
}

// Derivative returns p'.
func (p Polynomial) Derivative() Polynomial {
	deg := p.Degree()
	out := make([]float64, max(deg, 1))
	_ = Derivative(p.coeffs(), deg, out)

	return Polynomial{c: out}
}

// Add returns p + q with degree max(p.Degree(), q.Degree()).
func (p Polynomial) Add(q Polynomial) Polynomial {
	out := make([]float64, max(p.Degree(), q.Degree())+1)
	_, _ = Add(p.coeffs(), p.Degree(), q.coeffs(), q.Degree(), out)

	return Polynomial{c: out}
}

// Mul returns p·q with degree p.Degree()+q.Degree().
func (p Polynomial) Mul(q Polynomial) Polynomial {
	out := make([]float64, p.Degree()+q.Degree()+1)
	_, _ = Mul(p.coeffs(), p.Degree(), q.coeffs(), q.Degree(), out)

	return Polynomial{c: out}
}

// Trim drops trailing zero coefficients, keeping at least the constant term.
func (p Polynomial) Trim() Polynomial {
	c := p.coeffs()
	n := len(c)
	for n > 1 && c[n-1] == 0 {
		n--
	}

	return New(c[:n]...)
}

// Equal reports whether p and q agree coefficient-wise within tol after
// treating missing high-order coefficients as zero.
func (p Polynomial) Equal(q Polynomial, tol float64) bool {
	a, b := p.coeffs(), q.coeffs()
	n := max(len(a), len(b))
	var av, bv float64
	for i := 0; i < n; i++ {
		av, bv = 0, 0
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if !(math.Abs(av-bv) <= math.Abs(tol)) {
			return false
		}
	}

	return true
}

// String renders p highest power first, e.g. "3x^2 - 2x + 1".
// Zero coefficients are omitted; the zero polynomial renders as "0".
func (p Polynomial) String() string {
	c := p.coeffs()
	var b strings.Builder
	var v, abs float64
	for i := len(c) - 1; i >= 0; i-- {
		v = c[i]
		if v == 0 {
			continue
		}
		abs = math.Abs(v)
		switch {
		case b.Len() == 0 && v < 0:
			b.WriteString("-")
		case b.Len() > 0 && v < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if abs != 1 || i == 0 {
			b.WriteString(fmt.Sprintf("%g", abs))
		}
		switch {
		case i == 1:
			b.WriteString("x")
		case i > 1:
			b.WriteString(fmt.Sprintf("x^%d", i))
		}
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
