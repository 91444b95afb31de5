// SPDX-License-Identifier: MIT
package bench_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/loopgemm/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResults(t *testing.T) {
	results := []bench.Result{
		{Name: "ijk", Label: "ijk (dot product)", Seconds: 0.2, MFLOPS: 10, Relative: 2},
		{Name: "ikj", Label: "ikj (row-oriented gaxpy)", Seconds: 0.1, MFLOPS: 20, Relative: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, bench.RenderResults(&buf, "Performance", results))
	out := buf.String()
	for _, want := range []string{"Performance", "Algorithm", "Time (s)", "MFLOPS", "Relative",
		"ijk (dot product)", "0.200000", "2.00x", "Fastest: ikj (row-oriented gaxpy)"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderVerification(t *testing.T) {
	v := bench.Verification{
		Reference: "ijk",
		Tolerance: 1e-10,
		Checks: []bench.Check{
			{Name: "ikj", Label: "ikj", MaxDiff: 0, Pass: true},
			{Name: "bad", Label: "bad", MaxDiff: 1, Pass: false},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, bench.RenderVerification(&buf, v))
	out := buf.String()
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "1 of 2 checks FAILED")

	buf.Reset()
	v.Checks = v.Checks[:1]
	require.NoError(t, bench.RenderVerification(&buf, v))
	assert.Contains(t, buf.String(), "All checks passed")
}

func TestRenderComparisonsAndHeader(t *testing.T) {
	cmps := []bench.Comparison{{
		Shape: bench.Shape{Rows: 100, Cols: 100}, Inner: 100, Iterations: 5,
		First: "ikj", Second: "blocked-64", FirstMS: 2, SecondMS: 1, Speedup: 2, Verdict: bench.Faster,
	}}
	var buf bytes.Buffer
	require.NoError(t, bench.RenderComparisons(&buf, "Blocked vs ikj", cmps))
	out := buf.String()
	for _, want := range []string{"Blocked vs ikj", "100x100", "blocked-64", "2.00x", "FASTER"} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	info := bench.RunInfo{Size: 256, Warmup: 3, Runs: 5, Seed: 42}
	require.NoError(t, bench.RenderHeader(&buf, info, bench.DetectHost()))
	out = buf.String()
	assert.Contains(t, out, "256 x 256")
	assert.Contains(t, out, "33,554,432", "2·256³ FLOPs")
}
