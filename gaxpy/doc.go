// SPDX-License-Identifier: MIT

// Package gaxpy implements the matrix-vector update y = y + A·x in row and
// column orientation, plus the level-1 and level-2 building blocks they are
// made of (dot, saxpy, rank-1 update).
//
// Row orientation walks A along its storage order (j inner); column
// orientation walks it against storage order (i inner). Both compute the same
// y up to summation-order rounding, and both only ever add into y.
package gaxpy
