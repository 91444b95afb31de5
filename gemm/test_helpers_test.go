// SPDX-License-Identifier: MIT
package gemm_test

import (
	"testing"

	"github.com/katalvlaran/loopgemm/matrix"
)

// tol is the absolute agreement required between any two kernels.
const tol = 1e-10

func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

func mustRandom(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewRandomDense(r, c, seed)
	if err != nil {
		tb.Fatalf("NewRandomDense(%d,%d): %v", r, c, err)
	}

	return m
}

func mustFrom(tb testing.TB, r, c int, values ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, values)
	if err != nil {
		tb.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// product runs f on a zeroed m×n accumulator and returns it.
func product(tb testing.TB, a, b *matrix.Dense, f func(a, b, c *matrix.Dense) error) *matrix.Dense {
	tb.Helper()
	c := mustDense(tb, a.Rows(), b.Cols())
	if err := f(a, b, c); err != nil {
		tb.Fatalf("multiply: %v", err)
	}

	return c
}

func maxDiff(tb testing.TB, x, y *matrix.Dense) float64 {
	tb.Helper()
	d, err := matrix.MaxAbsDiff(x, y)
	if err != nil {
		tb.Fatalf("MaxAbsDiff: %v", err)
	}

	return d
}
