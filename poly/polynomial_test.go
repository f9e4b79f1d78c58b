package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlmath/poly"
)

type PolynomialSuite struct {
	suite.Suite
	p poly.Polynomial // 1 + 2x + 3x^2
	q poly.Polynomial // 4 + 5x
}

func (s *PolynomialSuite) SetupTest() {
	s.p = poly.New(1, 2, 3)
	s.q = poly.New(4, 5)
}

func (s *PolynomialSuite) TestDegreeAndCoeffs() {
	s.Equal(2, s.p.Degree())
	s.Equal([]float64{1, 2, 3}, s.p.Coeffs())

	c := s.p.Coeffs()
	c[0] = 100
	s.Equal(1.0, s.p.Coeffs()[0], "Coeffs returns a copy")
}

func (s *PolynomialSuite) TestNewCopies() {
	src := []float64{1, 2}
	p := poly.New(src...)
	src[0] = 9
	s.Equal([]float64{1, 2}, p.Coeffs())
}

func (s *PolynomialSuite) TestEval() {
	s.Equal(17.0, s.p.Eval(2))
	s.Equal(0.0, poly.Polynomial{}.Eval(3), "zero value is the constant 0")
}

func (s *PolynomialSuite) TestArithmetic() {
	s.Equal([]float64{5, 7, 3}, s.p.Add(s.q).Coeffs())
	s.Equal([]float64{2, 6}, s.p.Derivative().Coeffs())
	s.Equal([]float64{0}, poly.New(7).Derivative().Coeffs())
	s.Equal([]float64{3, 10, 8}, poly.New(1, 2).Mul(poly.New(3, 4)).Coeffs())
}

func (s *PolynomialSuite) TestTrimAndEqual() {
	cancelled := poly.New(1, 0, 2).Add(poly.New(0, 1, -2))
	s.Equal(2, cancelled.Degree())
	s.Equal(1, cancelled.Trim().Degree())
	s.Equal(0, poly.New(0, 0, 0).Trim().Degree())

	s.True(cancelled.Equal(poly.New(1, 1), 0))
	s.True(poly.New(1, 2).Equal(poly.New(1, 2+1e-10), 1e-9))
	s.False(s.p.Equal(s.q, 1e-9))
}

func TestPolynomialSuite(t *testing.T) {
	suite.Run(t, new(PolynomialSuite))
}

func TestPolynomialString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    poly.Polynomial
		want string
	}{
		{poly.New(1, 2, 3), "3x^2 + 2x + 1"},
		{poly.New(1, -2), "-2x + 1"},
		{poly.New(-1, 0, 1), "x^2 - 1"},
		{poly.New(0, -1), "-x"},
		{poly.New(0, 0), "0"},
		{poly.New(), "0"},
		{poly.New(2.5), "2.5"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.p.String())
	}
}
