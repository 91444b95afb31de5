// SPDX-License-Identifier: MIT

// Package matrix - element-wise comparison used by verification harnesses.
//
// Kernels never compare results themselves; divergence is a property checked
// by the caller against an absolute tolerance (1e-10 to 1e-12 in practice).

package matrix

import (
	"fmt"
	"math"
)

const (
	opMaxAbsDiff = "MaxAbsDiff"
	opAllClose   = "AllClose"
)

// MaxAbsDiff returns max_{i,j} |a(i,j) - b(i,j)| for equally shaped matrices.
//
// A NaN difference on either path is reported as +Inf.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Fast-path: two *Dense operands are compared over their flat buffers.
// Complexity: O(r*c).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("%s: %w", opMaxAbsDiff, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, fmt.Errorf("%s: %w", opMaxAbsDiff, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, fmt.Errorf("%s: %w", opMaxAbsDiff, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return maxAbsDiffSlices(da.data, db.data), nil
		}
	}

	// Generic fallback via At.
	var worst float64
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			d := math.Abs(av - bv)
			if math.IsNaN(d) {
				return math.Inf(1), nil
			}
			if d > worst {
				worst = d
			}
		}
	}

	return worst, nil
}

// VecMaxAbsDiff returns max_i |x[i] - y[i]| for equal-length vectors.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func VecMaxAbsDiff(x, y []float64) (float64, error) {
	if x == nil || y == nil {
		return 0, fmt.Errorf("VecMaxAbsDiff: %w", ErrNilMatrix)
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("VecMaxAbsDiff: len %d vs %d: %w", len(x), len(y), ErrDimensionMismatch)
	}

	return maxAbsDiffSlices(x, y), nil
}

// maxAbsDiffSlices assumes len(x) == len(y). A NaN difference is reported as +Inf
// so that it can never pass a tolerance check.
func maxAbsDiffSlices(x, y []float64) float64 {
	var worst float64
	for i := range x {
		d := math.Abs(x[i] - y[i])
		if math.IsNaN(d) {
			return math.Inf(1)
		}
		if d > worst {
			worst = d
		}
	}

	return worst
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fmt.Errorf("%s: %w", opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			// Written as !(≤) so that NaN fails the check.
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
