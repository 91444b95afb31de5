// SPDX-License-Identifier: MIT

// Package gaxpy - level-2 (matrix-vector) operations beyond y += A·x.

package gaxpy

import "github.com/katalvlaran/loopgemm/matrix"

// OuterUpdate applies the rank-1 update A = A + x·yᵀ, with len(x) == A.Rows()
// and len(y) == A.Cols().
func OuterUpdate(a *matrix.Dense, x, y []float64) error {
	const op = "OuterUpdate"
	if err := matrix.ValidateNotNil(a); err != nil {
		return gaxpyErrorf(op, err)
	}
	m, n := a.Shape()
	if err := matrix.ValidateVecLen(x, m); err != nil {
		return gaxpyErrorf(op+": x", err)
	}
	if err := matrix.ValidateVecLen(y, n); err != nil {
		return gaxpyErrorf(op+": y", err)
	}
	ad := a.Data()
	for i := 0; i < m; i++ {
		xi := x[i]
		for j := 0; j < n; j++ {
			ad[i*n+j] += xi * y[j]
		}
	}

	return nil
}

// MatrixGaxpy computes Y = Y + A·X column by column: for each column j of X,
// Y(:,j) += Σ_k A(:,k)·X(k,j). It is the jki GEMM seen as repeated gaxpy.
//
// Shapes: A m×r, X r×n, Y m×n.
func MatrixGaxpy(y, a, x *matrix.Dense) error {
	const op = "MatrixGaxpy"
	if err := matrix.ValidateGemm(a, x, y); err != nil {
		return gaxpyErrorf(op, err)
	}
	m, r := a.Shape()
	n := x.Cols()
	ad, xd, yd := a.Data(), x.Data(), y.Data()
	for j := 0; j < n; j++ {
		for k := 0; k < r; k++ {
			xkj := xd[k*n+j]
			for i := 0; i < m; i++ {
				yd[i*n+j] += ad[i*r+k] * xkj
			}
		}
	}

	return nil
}
