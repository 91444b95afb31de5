// SPDX-License-Identifier: MIT

package bench

import "github.com/katalvlaran/loopgemm/gemm"

// Result is the timing of one kernel over one input shape.
type Result struct {
	Name  string // parseable variant name, e.g. "ikj"
	Label string // table caption, e.g. "ikj (row-oriented gaxpy)"

	M, N, R int // C is M×N, inner dimension R
	Runs    int // timed runs averaged into Seconds

	Seconds  float64 // mean wall time per multiplication
	FLOPs    float64 // 2·M·N·R
	MFLOPS   float64 // FLOPs / (Seconds·1e6); 0 when Seconds is 0
	Relative float64 // Seconds / fastest Seconds in the suite
}

// labeler is implemented by multipliers that carry a display caption.
type labeler interface {
	Label() string
}

func labelOf(m gemm.Multiplier) string {
	if l, ok := m.(labeler); ok {
		return l.Label()
	}

	return m.Name()
}

func mflops(flops, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}

	return flops / (seconds * 1e6)
}

// fillRelative sets Relative on every result against the fastest one.
// A suite whose fastest time is 0 (timer resolution) gets Relative 1 throughout.
func fillRelative(results []Result) {
	if len(results) == 0 {
		return
	}
	fastest := results[0].Seconds
	for _, r := range results[1:] {
		fastest = min(fastest, r.Seconds)
	}
	for i := range results {
		if fastest <= 0 {
			results[i].Relative = 1
			continue
		}
		results[i].Relative = results[i].Seconds / fastest
	}
}

// Fastest returns the index of the result with the smallest time, or -1.
func Fastest(results []Result) int {
	best := -1
	for i, r := range results {
		if best < 0 || r.Seconds < results[best].Seconds {
			best = i
		}
	}

	return best
}
