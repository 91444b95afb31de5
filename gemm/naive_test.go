// SPDX-License-Identifier: MIT
package gemm_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/loopgemm/gemm"
	"github.com/katalvlaran/loopgemm/matrix"
	"github.com/stretchr/testify/require"
)

// TestOrdersHandComputed checks every ordering against a product worked by hand.
func TestOrdersHandComputed(t *testing.T) {
	a := mustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustFrom(t, 3, 2, 7, 8, 9, 10, 11, 12)
	want := []float64{58, 64, 139, 154}

	for _, o := range gemm.Orders() {
		t.Run(o.String(), func(t *testing.T) {
			c := mustDense(t, 2, 2)
			require.NoError(t, gemm.Multiply(o, a, b, c))
			require.Equal(t, want, c.Data()) // small integers: exact in every order
		})
	}
}

// TestOrdersEquivalent compares all orderings with ijk on rectangular random input.
func TestOrdersEquivalent(t *testing.T) {
	shapes := []struct{ m, r, n int }{
		{1, 1, 1},
		{3, 4, 3},
		{17, 9, 23},
		{50, 47, 53},
		{64, 64, 64},
	}
	for _, s := range shapes {
		a := mustRandom(t, s.m, s.r, 1)
		b := mustRandom(t, s.r, s.n, 2)
		ref := product(t, a, b, gemm.IJK)

		kernels := map[string]gemm.Func{
			"jik": gemm.JIK, "ikj": gemm.IKJ, "jki": gemm.JKI,
			"kij": gemm.KIJ, "kji": gemm.KJI, "ikj-hoisted": gemm.IKJHoisted,
			"ikj-modular": gemm.IKJModular,
			"gonum": gemm.Reference,
		}
		for name, f := range kernels {
			t.Run(fmt.Sprintf("%dx%dx%d/%s", s.m, s.r, s.n, name), func(t *testing.T) {
				require.LessOrEqual(t, maxDiff(t, ref, product(t, a, b, f)), tol)
			})
		}
	}
}

// TestAccumulates checks that kernels add into C instead of overwriting it.
func TestAccumulates(t *testing.T) {
	a := mustFrom(t, 2, 2, 1, 2, 3, 4)
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	variants := append(gemm.DefaultVariants(2),
		gemm.BlockedVariant(1), gemm.BlockedVariant(64), gemm.LibraryVariant())
	for _, v := range variants {
		t.Run(v.Name(), func(t *testing.T) {
			c := mustFrom(t, 2, 2, 10, 20, 30, 40)
			require.NoError(t, v.Multiply(a, id, c))
			require.Equal(t, []float64{11, 22, 33, 44}, c.Data())

			// A second call adds again.
			require.NoError(t, v.Multiply(a, id, c))
			require.Equal(t, []float64{12, 24, 36, 48}, c.Data())
		})
	}
}

// TestShapeMismatch makes sure no kernel touches memory on a broken contract.
func TestShapeMismatch(t *testing.T) {
	a := mustDense(t, 3, 4)
	b := mustDense(t, 4, 5)

	bad := []struct {
		name    string
		a, b, c *matrix.Dense
		want    error
	}{
		{"inner", a, mustDense(t, 3, 5), mustDense(t, 3, 5), matrix.ErrDimensionMismatch},
		{"C rows", a, b, mustDense(t, 4, 5), matrix.ErrDimensionMismatch},
		{"C cols", a, b, mustDense(t, 3, 4), matrix.ErrDimensionMismatch},
		{"nil A", nil, b, mustDense(t, 3, 5), matrix.ErrNilMatrix},
		{"nil C", a, b, nil, matrix.ErrNilMatrix},
	}
	variants := append(gemm.DefaultVariants(64), gemm.LibraryVariant())
	for _, tc := range bad {
		for _, v := range variants {
			t.Run(tc.name+"/"+v.Name(), func(t *testing.T) {
				require.ErrorIs(t, v.Multiply(tc.a, tc.b, tc.c), tc.want)
			})
		}
	}
}

func TestMultiplyUnknownOrder(t *testing.T) {
	c := mustDense(t, 1, 1)
	err := gemm.Multiply(gemm.Order(42), c, c, c)
	require.ErrorIs(t, err, gemm.ErrUnknownOrder)

	_, err = gemm.Kernel(gemm.Order(6))
	require.ErrorIs(t, err, gemm.ErrUnknownOrder)

	f, err := gemm.Kernel(gemm.OrderKJI)
	require.NoError(t, err)
	require.NotNil(t, f)
}

func TestFLOPs(t *testing.T) {
	require.Equal(t, 2.0*256*256*256, gemm.FLOPs(256, 256, 256))
	require.Equal(t, 2.0*50*53*47, gemm.FLOPs(50, 53, 47))
}
