// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 container consumed by the
// loop-ordering kernels in gemm and gaxpy.
//
// The matrix package provides:
//
//   - Dense: an owned r×c buffer with the explicit offset formula i*cols + j.
//   - Safe accessors (At/Set) that return ErrOutOfRange instead of panicking.
//   - Explicit-seed random fill in [-1,1) and Zero for resetting accumulators.
//   - Shape validators shared by every kernel (GEMM and gaxpy contracts).
//   - Comparison helpers (MaxAbsDiff, AllClose) used by verification harnesses.
//
// Kernels read the backing slice through Data() and never reallocate it, so
// shapes stay fixed for the lifetime of a matrix.
package matrix
