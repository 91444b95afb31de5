// Package loopgemm is a small laboratory for one question: how much does the
// order of three nested loops cost when multiplying matrices?
//
// 🚀 What is loopgemm?
//
//	Kernels and a harness for C += A·B and y += A·x on row-major float64 data:
//		• All six loop orderings (ijk, jik, ikj, jki, kij, kji), never reordered
//		• ikj with hoisted loads, ikj layered on saxpy, cache-blocked GEMM, gonum
//		• Row-, column- and tile-oriented gaxpy, helper-based gaxpy, level-1/2 helpers
//		• Timing with warm-up, MFLOPS, relative speed and head-to-head verdicts
//		• Ordering pairs, size scaling, blocked and modular experiments
//		• Verification of every kernel against the ijk product
//
// Under the hood:
//
//	matrix/        : row-major Dense storage, seeded random fill, validators, comparisons
//	gemm/          : the orderings, blocked and library kernels, named Variants
//	gaxpy/         : matrix-vector products by orientation, dot/saxpy/outer update
//	bench/         : timer, runner, verification, comparisons, lipgloss reports
//	cmd/gemmbench/ : the command-line driver
//
// Quick picture of why the order matters (row-major B, innermost loop):
//
//	ijk (k innermost): B[k][j] ↓ stride n    ikj (j innermost): B[k][j] → stride 1
//
//	go run ./cmd/gemmbench 512 3 5
package loopgemm
