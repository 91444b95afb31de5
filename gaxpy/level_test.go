// SPDX-License-Identifier: MIT
package gaxpy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/loopgemm/gaxpy"
	"github.com/katalvlaran/loopgemm/gemm"
	"github.com/katalvlaran/loopgemm/matrix"
	"github.com/stretchr/testify/require"
)

func TestDotSaxpyNorm(t *testing.T) {
	d, err := gaxpy.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	y := []float64{1, 1, 1}
	require.NoError(t, gaxpy.Saxpy(2, []float64{1, 2, 3}, y))
	require.Equal(t, []float64{3, 5, 7}, y)

	n, err := gaxpy.Norm2([]float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, n)

	_, err = gaxpy.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, gaxpy.Saxpy(1, nil, y), matrix.ErrNilMatrix)
	_, err = gaxpy.Norm2(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestGaxpyIsRepeatedSaxpy: column-oriented gaxpy equals Σ_j saxpy(x[j], A(:,j), y).
func TestGaxpyIsRepeatedSaxpy(t *testing.T) {
	a := mustFrom(t, 3, 2, 1, 2, 3, 4, 5, 6)
	x := []float64{0.5, -1}

	want := make([]float64, 3)
	for j := 0; j < 2; j++ {
		col := make([]float64, 3)
		for i := range col {
			col[i], _ = a.At(i, j)
		}
		require.NoError(t, gaxpy.Saxpy(x[j], col, want))
	}

	got := make([]float64, 3)
	require.NoError(t, gaxpy.ColumnOriented(a, x, got))
	require.Equal(t, want, got)
}

func TestOuterUpdate(t *testing.T) {
	a := mustFrom(t, 2, 3, 1, 1, 1, 1, 1, 1)
	require.NoError(t, gaxpy.OuterUpdate(a, []float64{1, 2}, []float64{1, 0, -1}))
	require.Equal(t, []float64{2, 1, 0, 3, 1, -1}, a.Data())

	require.ErrorIs(t, gaxpy.OuterUpdate(a, []float64{1}, []float64{1, 0, -1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, gaxpy.OuterUpdate(nil, []float64{1}, []float64{1}), matrix.ErrNilMatrix)
}

// TestMatrixGaxpyMatchesGemm ties the level-2 form to the jki kernel.
func TestMatrixGaxpyMatchesGemm(t *testing.T) {
	a, err := matrix.NewRandomDense(9, 6, 1)
	require.NoError(t, err)
	x, err := matrix.NewRandomDense(6, 4, 2)
	require.NoError(t, err)

	y, _ := matrix.NewDense(9, 4)
	require.NoError(t, gaxpy.MatrixGaxpy(y, a, x))

	ref, _ := matrix.NewDense(9, 4)
	require.NoError(t, gemm.IJK(a, x, ref))

	d, err := matrix.MaxAbsDiff(ref, y)
	require.NoError(t, err)
	require.LessOrEqual(t, d, tol)
	require.False(t, math.IsNaN(d))

	bad, _ := matrix.NewDense(9, 5)
	require.ErrorIs(t, gaxpy.MatrixGaxpy(bad, a, x), matrix.ErrDimensionMismatch)
}
