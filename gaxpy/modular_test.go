// SPDX-License-Identifier: MIT
package gaxpy_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/loopgemm/gaxpy"
	"github.com/katalvlaran/loopgemm/matrix"
	"github.com/stretchr/testify/require"
)

// TestModularMatchesNested checks both helper-based forms against the nested loop.
// Modular must be bitwise equal even with a non-zero y; Functional only when y starts at 0.
func TestModularMatchesNested(t *testing.T) {
	shapes := [][2]int{{1, 1}, {7, 3}, {3, 7}, {100, 100}, {129, 65}}
	for _, s := range shapes {
		t.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(t *testing.T) {
			a, err := matrix.NewRandomDense(s[0], s[1], 11)
			require.NoError(t, err)
			x, err := matrix.RandomVector(s[1], matrix.NewRand(12))
			require.NoError(t, err)
			y0, err := matrix.RandomVector(s[0], matrix.NewRand(13))
			require.NoError(t, err)

			nested := append([]float64(nil), y0...)
			modular := append([]float64(nil), y0...)
			require.NoError(t, gaxpy.RowOriented(a, x, nested))
			require.NoError(t, gaxpy.Modular(a, x, modular))
			require.Equal(t, nested, modular)

			functional := append([]float64(nil), y0...)
			require.NoError(t, gaxpy.Functional(a, x, functional))
			d, err := matrix.VecMaxAbsDiff(nested, functional)
			require.NoError(t, err)
			require.LessOrEqual(t, d, tol)

			fromZero := make([]float64, s[0])
			functional = make([]float64, s[0])
			require.NoError(t, gaxpy.RowOriented(a, x, fromZero))
			require.NoError(t, gaxpy.Functional(a, x, functional))
			require.Equal(t, fromZero, functional)
		})
	}
}

func TestModularShapeErrors(t *testing.T) {
	a := mustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	for name, f := range map[string]func(*matrix.Dense, []float64, []float64) error{
		"Modular":    gaxpy.Modular,
		"Functional": gaxpy.Functional,
	} {
		t.Run(name, func(t *testing.T) {
			y := []float64{1, 2}
			err := f(a, ones(2), y)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			require.Contains(t, err.Error(), name)
			require.ErrorIs(t, f(nil, ones(3), y), matrix.ErrNilMatrix)
			require.Equal(t, []float64{1, 2}, y)

			require.NoError(t, f(a, ones(3), y))
			require.Equal(t, []float64{7, 17}, y)
		})
	}
}
