// SPDX-License-Identifier: MIT

// Package gemm - cache-blocked C += A·B.
//
// The (i,j,k) space is cut into tiles of edge bs. For each tile triple
// (ii, jj, kk) the kernel updates
//
//	C(ii:iMax, jj:jMax) += A(ii:iMax, kk:kMax) · B(kk:kMax, jj:jMax)
//
// with an ikj sweep, where iMax = min(ii+bs, m) and so on. A tile's working
// set is three bs×bs blocks (3·bs²·8 bytes); blocking pays off only once that
// fits in a cache level the whole operands do not.

package gemm

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/loopgemm/matrix"
)

const opBlocked = "Blocked"

// Tile is one half-open block of the iteration space:
// i ∈ [I0,I1), j ∈ [J0,J1), k ∈ [K0,K1).
type Tile struct {
	I0, I1 int
	J0, J1 int
	K0, K1 int
}

// Tiles yields the tiles of an m×n×r space in ii → jj → kk order.
// Edge tiles are clamped to the dimensions. blockSize must be > 0.
func Tiles(m, n, r, blockSize int) iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		if blockSize <= 0 {
			return
		}
		for ii := 0; ii < m; ii += blockSize {
			iMax := min(ii+blockSize, m)
			for jj := 0; jj < n; jj += blockSize {
				jMax := min(jj+blockSize, n)
				for kk := 0; kk < r; kk += blockSize {
					kMax := min(kk+blockSize, r)
					if !yield(Tile{I0: ii, I1: iMax, J0: jj, J1: jMax, K0: kk, K1: kMax}) {
						return
					}
				}
			}
		}
	}
}

// TileCount returns ⌈m/bs⌉·⌈n/bs⌉·⌈r/bs⌉, or 0 for blockSize <= 0.
// Safe for any positive blockSize, math.MaxInt included.
func TileCount(m, n, r, blockSize int) int {
	if blockSize <= 0 || m <= 0 || n <= 0 || r <= 0 {
		return 0
	}
	ceil := func(x int) int { return 1 + (x-1)/blockSize }

	return ceil(m) * ceil(n) * ceil(r)
}

// WorkingSetBytes is the float64 footprint of one full tile triple.
func WorkingSetBytes(blockSize int) int {
	return 3 * blockSize * blockSize * 8
}

// Blocked computes C += A·B tile by tile with an ikj sweep inside each tile.
//
// Errors:
//   - ErrInvalidBlockSize when blockSize <= 0 (checked first).
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch on a broken shape contract.
//
// Results match the naive orderings up to summation-order rounding for every
// blockSize, including sizes that do not divide m, n or r and sizes larger
// than the matrices (a single clamped tile).
func Blocked(a, b, c *matrix.Dense, blockSize int) error {
	if blockSize <= 0 {
		return gemmErrorf(opBlocked, fmt.Errorf("block size %d: %w", blockSize, ErrInvalidBlockSize))
	}
	m, r, n, err := checkShapes(opBlocked, a, b, c)
	if err != nil {
		return err
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	for t := range Tiles(m, n, r, blockSize) {
		tileIKJ(ad, bd, cd, r, n, t)
	}

	return nil
}

// tileIKJ runs the ikj sweep restricted to t. r and n are the row strides of
// A and of B/C respectively.
func tileIKJ(ad, bd, cd []float64, r, n int, t Tile) {
	for i := t.I0; i < t.I1; i++ {
		aRow := i * r
		cRow := i * n
		for k := t.K0; k < t.K1; k++ {
			aik := ad[aRow+k]
			bRow := k * n
			for j := t.J0; j < t.J1; j++ {
				cd[cRow+j] += aik * bd[bRow+j]
			}
		}
	}
}
