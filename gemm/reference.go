// SPDX-License-Identifier: MIT

package gemm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/loopgemm/matrix"
)

const opReference = "Reference"

// Reference computes C += A·B through gonum's mat.Dense.Mul.
//
// It is the outside cross-check for the hand-written loops and the "library"
// row of a benchmark table. Unlike the other kernels it allocates one m×n
// temporary for the product before adding it into C.
func Reference(a, b, c *matrix.Dense) error {
	m, r, n, err := checkShapes(opReference, a, b, c)
	if err != nil {
		return err
	}
	// mat.NewDense adopts the slices without copying; A and B are only read.
	ga := mat.NewDense(m, r, a.Data())
	gb := mat.NewDense(r, n, b.Data())
	gc := mat.NewDense(m, n, c.Data())

	var prod mat.Dense
	prod.Mul(ga, gb)
	gc.Add(gc, &prod)

	return nil
}

// FLOPs is the floating-point operation count of one C += A·B with A m×r and
// B r×n: one multiply and one add per (i,j,k).
func FLOPs(m, n, r int) float64 {
	return 2 * float64(m) * float64(n) * float64(r)
}
