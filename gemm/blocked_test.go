// SPDX-License-Identifier: MIT
package gemm_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/loopgemm/gemm"
	"github.com/katalvlaran/loopgemm/matrix"
	"github.com/stretchr/testify/require"
)

var blockSizes = []int{1, 3, 7, 16, 32, 64, 128, 256}

// TestBlockedNonDivisible checks edge clamping: 50×47 · 47×53 against tiles
// that divide none of the dimensions, and tiles larger than all of them.
func TestBlockedNonDivisible(t *testing.T) {
	a := mustRandom(t, 50, 47, 11)
	b := mustRandom(t, 47, 53, 12)
	ref := product(t, a, b, gemm.IKJ)

	for _, bs := range blockSizes {
		t.Run(fmt.Sprintf("bs=%d", bs), func(t *testing.T) {
			c := mustDense(t, 50, 53)
			require.NoError(t, gemm.Blocked(a, b, c, bs))
			require.LessOrEqual(t, maxDiff(t, ref, c), tol)
		})
	}
}

// TestBlockedSmallFixture checks a small 3x4 random case against ijk.
func TestBlockedSmallFixture(t *testing.T) {
	a := mustRandom(t, 3, 4, 5)
	b := mustRandom(t, 4, 3, 6)
	ref := product(t, a, b, gemm.IKJ)

	for _, bs := range []int{32, 64, 128, 256} {
		c := mustDense(t, 3, 3)
		require.NoError(t, gemm.Blocked(a, b, c, bs))
		require.LessOrEqual(t, maxDiff(t, ref, c), tol, "bs=%d", bs)
	}
}

// TestBlockedInvariantToBlockSize compares block sizes with each other.
func TestBlockedInvariantToBlockSize(t *testing.T) {
	a := mustRandom(t, 37, 41, 21)
	b := mustRandom(t, 41, 29, 22)

	var first *matrix.Dense
	for _, bs := range blockSizes {
		c := mustDense(t, 37, 29)
		require.NoError(t, gemm.Blocked(a, b, c, bs))
		if first == nil {
			first = c
			continue
		}
		require.LessOrEqual(t, maxDiff(t, first, c), tol, "bs=%d", bs)
	}
}

func TestBlockedInvalidBlockSize(t *testing.T) {
	a := mustDense(t, 2, 2)
	for _, bs := range []int{0, -1, -64} {
		c := mustDense(t, 2, 2)
		c.Fill(5)
		err := gemm.Blocked(a, a, c, bs)
		require.ErrorIs(t, err, gemm.ErrInvalidBlockSize)
		require.Equal(t, []float64{5, 5, 5, 5}, c.Data(), "C must be untouched")
	}
}

// TestTilesCoverSpace checks clamping and exact coverage of the (i,j,k) space.
func TestTilesCoverSpace(t *testing.T) {
	const m, n, r, bs = 10, 7, 5, 4
	hits := make([]int, m*n*r)
	count := 0
	for tile := range gemm.Tiles(m, n, r, bs) {
		count++
		require.LessOrEqual(t, tile.I1, m)
		require.LessOrEqual(t, tile.J1, n)
		require.LessOrEqual(t, tile.K1, r)
		require.LessOrEqual(t, tile.I1-tile.I0, bs)
		for i := tile.I0; i < tile.I1; i++ {
			for j := tile.J0; j < tile.J1; j++ {
				for k := tile.K0; k < tile.K1; k++ {
					hits[(i*n+j)*r+k]++
				}
			}
		}
	}
	for idx, h := range hits {
		require.Equal(t, 1, h, "cell %d", idx)
	}
	require.Equal(t, gemm.TileCount(m, n, r, bs), count)
	require.Equal(t, 3*2*2, count)
}

func TestTilesOrderAndEarlyStop(t *testing.T) {
	var got []gemm.Tile
	for tile := range gemm.Tiles(4, 4, 4, 2) {
		got = append(got, tile)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []gemm.Tile{
		{I0: 0, I1: 2, J0: 0, J1: 2, K0: 0, K1: 2},
		{I0: 0, I1: 2, J0: 0, J1: 2, K0: 2, K1: 4},
		{I0: 0, I1: 2, J0: 2, J1: 4, K0: 0, K1: 2},
	}, got)

	for range gemm.Tiles(4, 4, 4, 0) {
		t.Fatal("no tiles expected for block size 0")
	}
	require.Zero(t, gemm.TileCount(4, 4, 4, 0))
}

// TestTileCountHugeBlock checks that a block larger than any dimension counts
// as a single tile, matching what Tiles yields, even at math.MaxInt.
func TestTileCountHugeBlock(t *testing.T) {
	for _, bs := range []int{53, 1 << 40, math.MaxInt - 1, math.MaxInt} {
		var yielded int
		for range gemm.Tiles(50, 53, 47, bs) {
			yielded++
		}
		require.Equal(t, 1, yielded, "bs=%d", bs)
		require.Equal(t, 1, gemm.TileCount(50, 53, 47, bs), "bs=%d", bs)
	}
	require.Equal(t, 1*2*1, gemm.TileCount(50, 53, 47, 50))
}

func TestWorkingSetBytes(t *testing.T) {
	require.Equal(t, 3*64*64*8, gemm.WorkingSetBytes(64))
}
