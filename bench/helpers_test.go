// SPDX-License-Identifier: MIT
package bench_test

import (
	"testing"

	"github.com/katalvlaran/loopgemm/bench"
	"github.com/katalvlaran/loopgemm/gemm"
	"github.com/katalvlaran/loopgemm/matrix"
)

// quick keeps harness tests fast: no warm-up, a single timed run.
var quick = []bench.Option{bench.WithWarmup(0), bench.WithRuns(1)}

func mustInputs(tb testing.TB, m, r, n int) (*matrix.Dense, *matrix.Dense) {
	tb.Helper()
	a, b, err := bench.GenerateInputs(m, r, n, bench.DefaultSeed)
	if err != nil {
		tb.Fatalf("GenerateInputs(%d,%d,%d): %v", m, r, n, err)
	}

	return a, b
}

// countingMul wraps ikj, counts calls and records whether C was zero on entry.
type countingMul struct {
	calls     int
	dirtyCall bool
}

func (c *countingMul) Name() string { return "counting" }

func (c *countingMul) Multiply(a, b, dst *matrix.Dense) error {
	c.calls++
	for _, v := range dst.Data() {
		if v != 0 {
			c.dirtyCall = true
			break
		}
	}

	return gemm.IKJ(a, b, dst)
}

// skewedMul is a broken kernel: correct product plus a constant offset.
type skewedMul struct{ offset float64 }

func (s skewedMul) Name() string { return "skewed" }

func (s skewedMul) Multiply(a, b, c *matrix.Dense) error {
	if err := gemm.IJK(a, b, c); err != nil {
		return err
	}
	for i := range c.Data() {
		c.Data()[i] += s.offset
	}

	return nil
}
