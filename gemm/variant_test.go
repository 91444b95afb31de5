// SPDX-License-Identifier: MIT
package gemm_test

import (
	"testing"

	"github.com/katalvlaran/loopgemm/gemm"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	for _, o := range gemm.Orders() {
		got, err := gemm.ParseOrder(o.String())
		require.NoError(t, err)
		require.Equal(t, o, got)
	}
	got, err := gemm.ParseOrder(" KJI ")
	require.NoError(t, err)
	require.Equal(t, gemm.OrderKJI, got)

	_, err = gemm.ParseOrder("iik")
	require.ErrorIs(t, err, gemm.ErrUnknownOrder)

	require.Equal(t, "Order(9)", gemm.Order(9).String())
	require.Equal(t, "row gaxpy", gemm.OrderIKJ.Form())
	require.Equal(t, "column outer product", gemm.OrderKJI.Form())
}

func TestParseVariantRoundTrip(t *testing.T) {
	all := append(gemm.DefaultVariants(1024), gemm.LibraryVariant(), gemm.BlockedVariant(48))
	for _, v := range all {
		got, err := gemm.ParseVariant(v.Name())
		require.NoError(t, err, v.Name())
		require.Equal(t, v, got)
	}
}

func TestParseVariantErrors(t *testing.T) {
	_, err := gemm.ParseVariant("blocked-0")
	require.ErrorIs(t, err, gemm.ErrInvalidBlockSize)

	_, err = gemm.ParseVariant("blocked-x")
	require.ErrorIs(t, err, gemm.ErrUnknownVariant)

	_, err = gemm.ParseVariant("strassen")
	require.ErrorIs(t, err, gemm.ErrUnknownVariant)
}

func TestVariantValidate(t *testing.T) {
	require.NoError(t, gemm.NaiveVariant(gemm.OrderJKI).Validate())
	require.ErrorIs(t, gemm.NaiveVariant(gemm.Order(7)).Validate(), gemm.ErrUnknownOrder)
	require.ErrorIs(t, gemm.BlockedVariant(-2).Validate(), gemm.ErrInvalidBlockSize)
	require.ErrorIs(t, gemm.Variant{Kind: 99}.Validate(), gemm.ErrUnknownVariant)

	c := mustDense(t, 1, 1)
	require.ErrorIs(t, gemm.Variant{Kind: 99}.Multiply(c, c, c), gemm.ErrUnknownVariant)
}

func TestVariantLabels(t *testing.T) {
	require.Equal(t, "ijk (dot product)", gemm.NaiveVariant(gemm.OrderIJK).Label())
	require.Equal(t, "blocked (bs=64)", gemm.BlockedVariant(64).Label())
	require.Equal(t, "ikj (hoisted)", gemm.HoistedVariant().Label())
	require.Equal(t, "ikj (modular saxpy)", gemm.ModularVariant().Label())
	require.Equal(t, "gonum (library)", gemm.LibraryVariant().Label())
}

func TestDefaultVariants(t *testing.T) {
	names := func(vs []gemm.Variant) []string {
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = v.Name()
		}
		return out
	}
	require.Equal(t,
		[]string{"ijk", "jik", "ikj", "jki", "kij", "kji", "ikj-hoisted", "ikj-modular", "blocked-32", "blocked-64", "blocked-128"},
		names(gemm.DefaultVariants(256)))

	// Block sizes larger than the matrix are skipped.
	require.Equal(t,
		[]string{"ijk", "jik", "ikj", "jki", "kij", "kji", "ikj-hoisted", "ikj-modular", "blocked-32", "blocked-64"},
		names(gemm.DefaultVariants(100)))
}
