// SPDX-License-Identifier: MIT

// Package gaxpy - RowOriented rewritten with helpers, for measuring what the
// extra calls cost.

package gaxpy

import "github.com/katalvlaran/loopgemm/matrix"

const (
	opModular    = "Modular"
	opFunctional = "Functional"
)

// Modular computes y += A·x by handing each row of A to a helper that
// accumulates straight into y[i]. Additions happen in RowOriented's order,
// so the results are bitwise identical.
func Modular(a *matrix.Dense, x, y []float64) error {
	m, _, err := checkShapes(opModular, a, x, y)
	if err != nil {
		return err
	}
	for i := range m {
		row, err := a.Row(i)
		if err != nil {
			return gaxpyErrorf(opModular, err)
		}
		rowContribution(row, x, &y[i])
	}

	return nil
}

func rowContribution(row, x []float64, yi *float64) {
	for j, v := range row {
		*yi += v * x[j]
	}
}

// Functional computes y += A·x as y[i] += Dot(A(i,:), x) through a closure.
// The row sum is formed before it is added to y[i], so it matches
// RowOriented exactly only when y starts at zero.
func Functional(a *matrix.Dense, x, y []float64) error {
	m, _, err := checkShapes(opFunctional, a, x, y)
	if err != nil {
		return err
	}
	rowDot := func(i int) (float64, error) {
		row, err := a.Row(i)
		if err != nil {
			return 0, err
		}

		return Dot(row, x)
	}
	for i := range m {
		s, err := rowDot(i)
		if err != nil {
			return gaxpyErrorf(opFunctional, err)
		}
		y[i] += s
	}

	return nil
}
