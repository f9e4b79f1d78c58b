package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/matrix"
)

func TestMulFlat(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	c := make([]float64, 4)
	require.NoError(t, matrix.MulFlat(a, 2, 2, b, 2, 2, c))
	require.Equal(t, []float64{19, 22, 43, 50}, c)

	// (1×3)·(3×2)
	row := []float64{1, 2, 3}
	m := []float64{1, 0, 0, 1, 1, 1}
	out := make([]float64, 2)
	require.NoError(t, matrix.MulFlat(row, 1, 3, m, 3, 2, out))
	require.Equal(t, []float64{4, 5}, out)
}

// TestMulFlat_MismatchWritesNothing checks that a failed call leaves c untouched.
func TestMulFlat_MismatchWritesNothing(t *testing.T) {
	t.Parallel()

	c := []float64{-1, -1, -1, -1}
	err := matrix.MulFlat(make([]float64, 6), 2, 3, make([]float64, 4), 2, 2, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, []float64{-1, -1, -1, -1}, c)

	// short output buffer
	err = matrix.MulFlat(make([]float64, 4), 2, 2, make([]float64, 4), 2, 2, c[:3])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, []float64{-1, -1, -1, -1}, c)

	err = matrix.MulFlat(nil, 2, 2, make([]float64, 4), 2, 2, c)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	err = matrix.MulFlat(nil, -1, 2, nil, 2, 2, c)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestMulFlat_MatchesDense ensures both call surfaces share one kernel.
func TestMulFlat_MatchesDense(t *testing.T) {
	a := RandFilledDense(t, 5, 4, 31)
	b := RandFilledDense(t, 4, 3, 32)

	dense, err := matrix.Mul(a, b)
	require.NoError(t, err)

	flat := make([]float64, 5*3)
	require.NoError(t, matrix.MulFlat(a.Flat(), 5, 4, b.Flat(), 4, 3, flat))
	require.Equal(t, dense.(*matrix.Dense).Flat(), flat)
}

func TestTransposeFlat(t *testing.T) {
	t.Parallel()

	out := make([]float64, 6)
	require.NoError(t, matrix.TransposeFlat([]float64{1, 2, 3, 4, 5, 6}, 2, 3, out))
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, out)

	// empty shapes are legal
	require.NoError(t, matrix.TransposeFlat([]float64{}, 0, 3, []float64{}))

	err := matrix.TransposeFlat([]float64{1, 2, 3}, 2, 3, out)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentityFlat(t *testing.T) {
	t.Parallel()

	m := []float64{9, 9, 9, 9, 9, 9, 9, 9, 9}
	require.NoError(t, matrix.IdentityFlat(m, 3))
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, m)

	require.NoError(t, matrix.IdentityFlat([]float64{}, 0))
	require.ErrorIs(t, matrix.IdentityFlat(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.IdentityFlat(m, -1), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.IdentityFlat(m, 4), matrix.ErrDimensionMismatch)
}

func TestDeterminantFlat(t *testing.T) {
	t.Parallel()

	d, err := matrix.DeterminantFlat([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, -2.0, d)

	_, err = matrix.DeterminantFlat(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.DeterminantFlat([]float64{}, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.DeterminantFlat([]float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverseFlat(t *testing.T) {
	t.Parallel()

	inv := make([]float64, 4)
	require.NoError(t, matrix.InverseFlat([]float64{4, 7, 2, 6}, 2, inv))
	require.True(t, AlmostEqualSlice([]float64{0.6, -0.7, -0.2, 0.4}, inv, 1e-12))

	untouched := []float64{5, 5, 5, 5}
	err := matrix.InverseFlat([]float64{1, 2, 2, 4}, 2, untouched)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Equal(t, []float64{5, 5, 5, 5}, untouched)

	require.ErrorIs(t, matrix.InverseFlat(nil, 2, inv), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.InverseFlat([]float64{1}, 0, inv), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.InverseFlat([]float64{1, 0, 0, 1}, 2, inv[:2]), matrix.ErrDimensionMismatch)
}

func TestSolveFlat(t *testing.T) {
	t.Parallel()

	// 2x + y = 5, x + 3y = 10  ->  x = 1, y = 3
	a := []float64{2, 1, 1, 3}
	b := []float64{5, 10}
	x := make([]float64, 2)
	require.NoError(t, matrix.SolveFlat(a, b, x, 2))
	require.True(t, AlmostEqualSlice([]float64{1, 3}, x, 1e-12))
	require.Equal(t, []float64{5, 10}, b)

	require.ErrorIs(t, matrix.SolveFlat([]float64{1, 1, 1, 1}, b, x, 2), matrix.ErrSingular)
	require.ErrorIs(t, matrix.SolveFlat(a, b[:1], x, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.SolveFlat(a, b, nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.SolveFlat(a, b, x, 0), matrix.ErrInvalidDimensions)
}

// TestFlat_OverflowingShape checks that shapes whose element count overflows
// int are rejected up front instead of reaching the kernels.
func TestFlat_OverflowingShape(t *testing.T) {
	t.Parallel()

	huge := math.MaxInt / 2 // huge*huge overflows int
	empty := []float64{}

	require.ErrorIs(t, matrix.ValidateFlat(empty, huge, huge), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.TransposeFlat(empty, huge, huge, empty), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.MulFlat(empty, huge, huge, empty, huge, 1, empty), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.IdentityFlat(empty, huge), matrix.ErrInvalidDimensions)

	_, err := matrix.DeterminantFlat([]float64{1}, huge)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	require.ErrorIs(t, matrix.InverseFlat([]float64{1}, huge, []float64{1}), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.SolveFlat([]float64{1}, []float64{1}, []float64{1}, huge), matrix.ErrInvalidDimensions)

	// a zero dimension never overflows
	require.NoError(t, matrix.ValidateFlat(nil, math.MaxInt, 0))
}

// TestSolveFlat_InPlace solves with x aliasing b, including a row exchange.
func TestSolveFlat_InPlace(t *testing.T) {
	t.Parallel()

	// y = 2, x = 3 with a zero leading pivot
	xb := []float64{2, 3}
	require.NoError(t, matrix.SolveFlat([]float64{0, 1, 1, 0}, xb, xb, 2))
	require.Equal(t, []float64{3, 2}, xb)

	a := DiagDominant(t, 5, 21).Flat()
	a[0] = 0 // force a swap on the first column
	b := RandFlat(5, 22)
	want := make([]float64, 5)
	require.NoError(t, matrix.SolveFlat(a, b, want, 5))

	inPlace := append([]float64(nil), b...)
	require.NoError(t, matrix.SolveFlat(a, inPlace, inPlace, 5))
	require.Equal(t, want, inPlace)
}

// TestFlat_ConcurrentDisjointBuffers runs the flat kernels from parallel
// subtests on goroutine-local buffers; run with -race.
func TestFlat_ConcurrentDisjointBuffers(t *testing.T) {
	const n = 6
	a := DiagDominant(t, n, 40).Flat()
	b := RandFlat(n, 41)

	wantDet, err := matrix.DeterminantFlat(a, n)
	require.NoError(t, err)
	wantX := make([]float64, n)
	require.NoError(t, matrix.SolveFlat(a, b, wantX, n))

	for w := 0; w < 8; w++ {
		t.Run(fmt.Sprintf("worker=%d", w), func(t *testing.T) {
			t.Parallel()

			la := append([]float64(nil), a...)
			lb := append([]float64(nil), b...)
			x := make([]float64, n)
			inv := make([]float64, n*n)
			for i := 0; i < 20; i++ {
				d, err := matrix.DeterminantFlat(la, n)
				require.NoError(t, err)
				require.Equal(t, math.Float64bits(wantDet), math.Float64bits(d))

				require.NoError(t, matrix.SolveFlat(la, lb, x, n))
				require.Equal(t, wantX, x)

				require.NoError(t, matrix.InverseFlat(la, n, inv))
			}
		})
	}
}
