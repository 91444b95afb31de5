// SPDX-License-Identifier: MIT

// Package gaxpy - level-1 (vector-vector) operations.

package gaxpy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/loopgemm/matrix"
)

func checkPair(op string, x, y []float64) error {
	if x == nil || y == nil {
		return gaxpyErrorf(op, matrix.ErrNilMatrix)
	}
	if len(x) != len(y) {
		return gaxpyErrorf(op, fmt.Errorf("len %d vs %d: %w", len(x), len(y), matrix.ErrDimensionMismatch))
	}

	return nil
}

// Dot returns xᵀy.
func Dot(x, y []float64) (float64, error) {
	if err := checkPair("Dot", x, y); err != nil {
		return 0, err
	}
	var s float64
	for i := range x {
		s += x[i] * y[i]
	}

	return s, nil
}

// Saxpy computes y = y + alpha·x in place.
func Saxpy(alpha float64, x, y []float64) error {
	if err := checkPair("Saxpy", x, y); err != nil {
		return err
	}
	for i := range x {
		y[i] += alpha * x[i]
	}

	return nil
}

// Norm2 returns the Euclidean norm sqrt(xᵀx).
// No scaling is applied; very large entries can overflow.
func Norm2(x []float64) (float64, error) {
	d, err := Dot(x, x)
	if err != nil {
		return 0, gaxpyErrorf("Norm2", err)
	}

	return math.Sqrt(d), nil
}
