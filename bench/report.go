// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/loopgemm/gemm"
)

// RunInfo is the configuration echoed in the report header.
type RunInfo struct {
	Size   int
	Warmup int
	Runs   int
	Seed   int64
}

// RenderHeader writes the run configuration and host description.
func RenderHeader(w io.Writer, info RunInfo, host Host) error {
	t := newReportTable(nil, lipgloss.Right, lipgloss.Left)
	n := info.Size
	t.row(false, "Matrix size", fmt.Sprintf("%d x %d", n, n))
	t.row(false, "Warm-up runs", strconv.Itoa(info.Warmup))
	t.row(false, "Timed runs", strconv.Itoa(info.Runs))
	t.row(false, "Seed", strconv.FormatInt(info.Seed, 10))
	t.row(false, "FLOPs per multiply", humanize.Comma(int64(gemm.FLOPs(n, n, n))))
	t.row(false, "Operands (A+B+C)", humanize.IBytes(uint64(3*n*n*8)))
	t.row(false, "Go", host.GoVersion)
	t.row(false, "Platform", host.OS+"/"+host.Arch)
	t.row(false, "CPUs", strconv.Itoa(host.NumCPU))
	t.row(false, "Cache line", humanize.IBytes(uint64(host.CacheLineBytes)))
	feats := "-"
	if len(host.Features) > 0 {
		feats = strings.Join(host.Features, " ")
	}
	t.row(false, "SIMD", feats)

	return t.writeTo(w, "Matrix Multiplication Loop Ordering Benchmark")
}

// RenderResults writes the performance table. The fastest kernel is highlighted.
func RenderResults(w io.Writer, title string, results []Result) error {
	t := newReportTable([]string{"Algorithm", "Time (s)", "MFLOPS", "Throughput", "Relative"},
		lipgloss.Left, lipgloss.Right)
	best := Fastest(results)
	for i, r := range results {
		t.row(i == best,
			r.Label,
			fmt.Sprintf("%.6f", r.Seconds),
			fmt.Sprintf("%.2f", r.MFLOPS),
			humanize.SIWithDigits(r.MFLOPS*1e6, 2, "FLOP/s"),
			fmt.Sprintf("%.2fx", r.Relative),
		)
	}
	if err := t.writeTo(w, title); err != nil {
		return err
	}
	if best >= 0 {
		_, err := fmt.Fprintf(w, "Fastest: %s (%.6f s)\n", results[best].Label, results[best].Seconds)
		return err
	}

	return nil
}

// RenderVerification writes one row per check; failures are highlighted.
func RenderVerification(w io.Writer, v Verification) error {
	t := newReportTable([]string{"Algorithm", "Max |diff|", "Status"},
		lipgloss.Left, lipgloss.Right, lipgloss.Center)
	for _, c := range v.Checks {
		status := "PASS"
		if !c.Pass {
			status = "FAIL"
		}
		t.row(!c.Pass, c.Label, fmt.Sprintf("%.3e", c.MaxDiff), status)
	}
	title := fmt.Sprintf("Verification (reference: %s, tolerance %.0e)", v.Reference, v.Tolerance)
	if err := t.writeTo(w, title); err != nil {
		return err
	}
	summary := "All checks passed"
	if !v.AllPassed() {
		summary = fmt.Sprintf("%d of %d checks FAILED", len(v.Failed()), len(v.Checks))
	}
	_, err := fmt.Fprintln(w, summary)

	return err
}

// RenderComparisons writes a head-to-head table; rows where the second kernel
// is faster are highlighted.
func RenderComparisons(w io.Writer, title string, cmps []Comparison) error {
	t := newReportTable([]string{"Size", "Iterations", "First", "ms", "Second", "ms", "Speedup", "Second is", "Max |diff|"},
		lipgloss.Right)
	for _, c := range cmps {
		size := c.Shape.String()
		if c.Inner > 0 && c.Inner != c.Shape.Cols {
			size = fmt.Sprintf("%s (r=%d)", size, c.Inner)
		}
		t.row(c.Verdict == Faster,
			size,
			strconv.Itoa(c.Iterations),
			c.First,
			fmt.Sprintf("%.3f", c.FirstMS),
			c.Second,
			fmt.Sprintf("%.3f", c.SecondMS),
			fmt.Sprintf("%.2fx", c.Speedup),
			c.Verdict.String(),
			fmt.Sprintf("%.1e", c.MaxDiff),
		)
	}
	return t.writeTo(w, title)
}
