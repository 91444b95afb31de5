// SPDX-License-Identifier: MIT

// Package gemm - the six naive loop orderings.
//
// Every function below has the same body, C[i][j] += A[i][k]*B[k][j], written
// against the flat row-major buffers:
//
//	C(i,j) = cd[i*n+j]   A(i,k) = ad[i*r+k]   B(k,j) = bd[k*n+j]
//
// Only the nesting differs. Keep it that way: the nesting is what is measured.

package gemm

import "github.com/katalvlaran/loopgemm/matrix"

const (
	opIJK     = "IJK"
	opJIK     = "JIK"
	opIKJ     = "IKJ"
	opJKI     = "JKI"
	opKIJ     = "KIJ"
	opKJI     = "KJI"
	opHoisted = "IKJHoisted"
	opMul     = "Multiply"
)

// Func is the signature shared by every unblocked kernel.
type Func func(a, b, c *matrix.Dense) error

var orderKernels = [numOrders]Func{IJK, JIK, IKJ, JKI, KIJ, KJI}

// Kernel returns the kernel implementing order o.
func Kernel(o Order) (Func, error) {
	if !o.Valid() {
		return nil, gemmErrorf("Kernel", ErrUnknownOrder)
	}

	return orderKernels[o], nil
}

// Multiply runs C += A·B with the loop nesting o.
func Multiply(o Order, a, b, c *matrix.Dense) error {
	if !o.Valid() {
		return gemmErrorf(opMul, ErrUnknownOrder)
	}

	return orderKernels[o](a, b, c)
}

// checkShapes validates the GEMM contract and returns (m, r, n).
func checkShapes(op string, a, b, c *matrix.Dense) (m, r, n int, err error) {
	if err = matrix.ValidateGemm(a, b, c); err != nil {
		return 0, 0, 0, gemmErrorf(op, err)
	}

	return a.Rows(), a.Cols(), b.Cols(), nil
}

// IJK computes C += A·B as m·n dot products (k innermost).
// B is walked down a column in the inner loop: stride n, poor locality.
func IJK(a, b, c *matrix.Dense) error {
	m, r, n, err := checkShapes(opIJK, a, b, c)
	if err != nil {
		return err
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < r; k++ {
				cd[i*n+j] += ad[i*r+k] * bd[k*n+j]
			}
		}
	}

	return nil
}

// JIK computes C += A·B as dot products, columns of C outermost.
func JIK(a, b, c *matrix.Dense) error {
	m, r, n, err := checkShapes(opJIK, a, b, c)
	if err != nil {
		return err
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			for k := 0; k < r; k++ {
				cd[i*n+j] += ad[i*r+k] * bd[k*n+j]
			}
		}
	}

	return nil
}

// IKJ computes C += A·B as row-oriented gaxpy: row i of C accumulates
// A(i,k)·B(k,:) for each k. All three operands are walked along rows (unit stride).
func IKJ(a, b, c *matrix.Dense) error {
	m, r, n, err := checkShapes(opIKJ, a, b, c)
	if err != nil {
		return err
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	for i := 0; i < m; i++ {
		for k := 0; k < r; k++ {
			for j := 0; j < n; j++ {
				cd[i*n+j] += ad[i*r+k] * bd[k*n+j]
			}
		}
	}

	return nil
}

// JKI computes C += A·B as column-oriented gaxpy: column j of C accumulates
// A(:,k)·B(k,j). Every operand is walked down columns; this is the order a
// column-major layout favors and row-major punishes.
func JKI(a, b, c *matrix.Dense) error {
	m, r, n, err := checkShapes(opJKI, a, b, c)
	if err != nil {
		return err
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	for j := 0; j < n; j++ {
		for k := 0; k < r; k++ {
			for i := 0; i < m; i++ {
				cd[i*n+j] += ad[i*r+k] * bd[k*n+j]
			}
		}
	}

	return nil
}

// KIJ computes C += A·B as r rank-1 updates C += A(:,k)·B(k,:), row by row.
func KIJ(a, b, c *matrix.Dense) error {
	m, r, n, err := checkShapes(opKIJ, a, b, c)
	if err != nil {
		return err
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	for k := 0; k < r; k++ {
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				cd[i*n+j] += ad[i*r+k] * bd[k*n+j]
			}
		}
	}

	return nil
}

// KJI computes C += A·B as r rank-1 updates, column by column.
func KJI(a, b, c *matrix.Dense) error {
	m, r, n, err := checkShapes(opKJI, a, b, c)
	if err != nil {
		return err
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	for k := 0; k < r; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				cd[i*n+j] += ad[i*r+k] * bd[k*n+j]
			}
		}
	}

	return nil
}

// IKJHoisted is IKJ with A(i,k) loaded once per (i,k) and the row bases of
// A, B and C computed outside the inner loop. Same nesting, same sums; the
// difference against IKJ is the cost of the repeated load and index arithmetic.
func IKJHoisted(a, b, c *matrix.Dense) error {
	m, r, n, err := checkShapes(opHoisted, a, b, c)
	if err != nil {
		return err
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	for i := 0; i < m; i++ {
		aRow := ad[i*r : i*r+r]
		cRow := cd[i*n : i*n+n]
		for k := 0; k < r; k++ {
			aik := aRow[k]
			bRow := bd[k*n : k*n+n]
			for j := range cRow {
				cRow[j] += aik * bRow[j]
			}
		}
	}

	return nil
}
