package poly_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlmath/poly"
)

var sinkF float64

func coeffs(n int) []float64 {
	c := make([]float64, n)
	for i := range c {
		c[i] = 1 / float64(i+1)
	}

	return c
}

func BenchmarkEval(b *testing.B) {
	for _, deg := range []int{8, 64, 512} {
		c := coeffs(deg + 1)
		b.Run(fmt.Sprintf("deg=%d", deg), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v, err := poly.Eval(c, deg, 0.999)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, deg := range []int{8, 64, 512} {
		a, c := coeffs(deg+1), coeffs(deg+1)
		res := make([]float64, 2*deg+1)
		b.Run(fmt.Sprintf("deg=%d", deg), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := poly.Mul(a, deg, c, deg, res); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
