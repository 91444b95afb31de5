// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the shape contracts of the
//    GEMM (C += A·B) and gaxpy (y += A·x) kernels.
//  - Keep kernels minimal by delegating nil/shape checks here.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: A is %dx%d, B is %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateGemm checks the full C += A·B contract:
// A (m×r), B (r×n), C (m×n), all non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Every gemm kernel calls this once before touching any buffer.
func ValidateGemm(a, b, c Matrix) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return validatorErrorf("ValidateGemm", err)
	}
	if err := ValidateNotNil(c); err != nil {
		return validatorErrorf("ValidateGemm: C", err)
	}
	if c.Rows() != a.Rows() || c.Cols() != b.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateGemm: C is %dx%d, want %dx%d", c.Rows(), c.Cols(), a.Rows(), b.Cols()),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Nil vectors are rejected with ErrNilMatrix.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateGaxpy checks the y += A·x contract: A (m×n), len(x)==n, len(y)==m.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateGaxpy(a Matrix, x, y []float64) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateGaxpy", err)
	}
	if err := ValidateVecLen(x, a.Cols()); err != nil {
		return validatorErrorf("ValidateGaxpy: x", err)
	}
	if err := ValidateVecLen(y, a.Rows()); err != nil {
		return validatorErrorf("ValidateGaxpy: y", err)
	}

	return nil
}
