// SPDX-License-Identifier: MIT

// Package gemm implements C = C + A·B over row-major matrix.Dense values in
// every loop nesting order, plus a cache-blocked kernel.
//
// What & Why:
//
//	All six permutations of the (i,j,k) triple loop compute the same sum
//	C[i][j] += Σ_k A[i][k]*B[k][j]; they differ only in the order memory is
//	walked. Under row-major storage that order decides how often a cache line
//	is reused before eviction, which is what the benchmark harness measures.
//	The loops are therefore written out literally, one function per order,
//	and are never fused or interchanged.
//
//	Blocked partitions the iteration space into bs×bs×bs tiles and runs an
//	ikj sweep inside each tile. Edge tiles are clamped with min(...), never
//	padded, so any (m, n, r) works with any positive block size.
//
// Contract (every kernel):
//
//   - A is m×r, B is r×n, C is m×n; anything else is ErrDimensionMismatch.
//   - C is accumulated into, never cleared. Zero it between independent runs.
//   - Kernels are single-threaded and allocation-free (Reference excepted).
//
// Complexity:
//
//	2·m·n·r floating-point operations for every variant (see FLOPs).
package gemm
