package trig_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlmath/trig"
)

func TestConversions(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Pi, trig.DegToRad(180), 1e-15)
	assert.InDelta(t, math.Pi/2, trig.DegToRad(90), 1e-15)
	assert.InDelta(t, 45.0, trig.RadToDeg(math.Pi/4), 1e-12)

	for _, d := range []float64{-720, -30, 0, 1, 57.3, 359.9} {
		assert.InDelta(t, d, trig.RadToDeg(trig.DegToRad(d)), 1e-12, "deg=%v", d)
	}
}

func TestFunctions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"sin(pi/2)", trig.Sin(trig.Pi / 2), 1},
		{"cos(0)", trig.Cos(0), 1},
		{"tan(pi/4)", trig.Tan(trig.Pi / 4), 1},
		{"asin(1)", trig.Asin(1), trig.Pi / 2},
		{"acos(-1)", trig.Acos(-1), trig.Pi},
		{"atan(1)", trig.Atan(1), trig.Pi / 4},
		{"atan2(1,-1)", trig.Atan2(1, -1), 3 * trig.Pi / 4},
		{"sinh(0)", trig.Sinh(0), 0},
		{"cosh(0)", trig.Cosh(0), 1},
		{"tanh(0)", trig.Tanh(0), 0},
		{"asinh(sinh(1.5))", trig.Asinh(trig.Sinh(1.5)), 1.5},
		{"acosh(cosh(2))", trig.Acosh(trig.Cosh(2)), 2},
		{"atanh(tanh(0.3))", trig.Atanh(trig.Tanh(0.3)), 0.3},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, tc.got, 1e-12, tc.name)
	}
}

func TestDomainEdges(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(trig.Asin(2)))
	assert.True(t, math.IsNaN(trig.Acosh(0.5)))
	assert.True(t, math.IsInf(trig.Atanh(1), 1))
}
