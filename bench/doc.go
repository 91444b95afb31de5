// SPDX-License-Identifier: MIT

// Package bench is the timing, verification and reporting harness around the
// gemm and gaxpy kernels.
//
// The kernels only add into their accumulator, so every timed run starts from
// a zeroed C (or y). RunGEMM keeps the zeroing outside the timed region and
// reports the mean of the timed runs; Compare follows the simpler protocol of
// one warm-up call followed by a single timed loop that includes the reset.
//
// Verification never fails a run by itself: it reports, per variant, the
// maximum absolute difference against the ijk reference and whether it is
// within tolerance. Callers decide what to do with a failed check.
package bench
