// SPDX-License-Identifier: MIT

package gemm

import (
	"github.com/katalvlaran/loopgemm/gaxpy"
	"github.com/katalvlaran/loopgemm/matrix"
)

const opModular = "IKJModular"

// IKJModular is IKJ written in layers: each row of C is handed to rowUpdate,
// which issues one gaxpy.Saxpy per k. The additions happen in the same order
// as IKJ, so results are bitwise identical; only the call structure differs.
func IKJModular(a, b, c *matrix.Dense) error {
	m, _, _, err := checkShapes(opModular, a, b, c)
	if err != nil {
		return err
	}
	for i := range m {
		if err = rowUpdate(a, b, c, i); err != nil {
			return gemmErrorf(opModular, err)
		}
	}

	return nil
}

// rowUpdate computes C(i,:) += Σ_k A(i,k)·B(k,:).
func rowUpdate(a, b, c *matrix.Dense, i int) error {
	aRow, err := a.Row(i)
	if err != nil {
		return err
	}
	cRow, err := c.Row(i)
	if err != nil {
		return err
	}
	for k, aik := range aRow {
		bRow, err := b.Row(k)
		if err != nil {
			return err
		}
		if err = gaxpy.Saxpy(aik, bRow, cRow); err != nil {
			return err
		}
	}

	return nil
}
