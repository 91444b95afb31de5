// SPDX-License-Identifier: MIT

package gaxpy

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/loopgemm/matrix"
)

const (
	opRow     = "RowOriented"
	opColumn  = "ColumnOriented"
	opBlocked = "Blocked"
	opApply   = "Apply"

	// DefaultBlockSize is the tile edge used by Tiled.
	DefaultBlockSize = 64
)

// Orientation selects a traversal of A.
type Orientation uint8

const (
	Row    Orientation = iota // i outer, j inner: follows row-major storage
	Column                    // j outer, i inner: strides across rows
	Tiled                     // Blocked with DefaultBlockSize

	numOrientations
)

var orientationNames = [numOrientations]string{"row", "column", "blocked"}

// Orientations returns all traversals in canonical order.
func Orientations() []Orientation { return []Orientation{Row, Column, Tiled} }

func (o Orientation) String() string {
	if o >= numOrientations {
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}

	return orientationNames[o]
}

// ParseOrientation accepts "row", "column" or "blocked" (case-insensitive).
func ParseOrientation(s string) (Orientation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for o, n := range orientationNames {
		if n == name {
			return Orientation(o), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownOrientation)
}

// Apply runs y += A·x with traversal o.
func Apply(o Orientation, a *matrix.Dense, x, y []float64) error {
	switch o {
	case Row:
		return RowOriented(a, x, y)
	case Column:
		return ColumnOriented(a, x, y)
	case Tiled:
		return Blocked(a, x, y, DefaultBlockSize)
	default:
		return gaxpyErrorf(opApply, ErrUnknownOrientation)
	}
}

func checkShapes(op string, a *matrix.Dense, x, y []float64) (m, n int, err error) {
	if err = matrix.ValidateGaxpy(a, x, y); err != nil {
		return 0, 0, gaxpyErrorf(op, err)
	}

	return a.Rows(), a.Cols(), nil
}

// RowOriented computes y[i] += Σ_j A[i][j]*x[j] one row at a time.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func RowOriented(a *matrix.Dense, x, y []float64) error {
	m, n, err := checkShapes(opRow, a, x, y)
	if err != nil {
		return err
	}
	ad := a.Data()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			y[i] += ad[i*n+j] * x[j]
		}
	}

	return nil
}

// ColumnOriented computes the same update one column at a time: y += x[j]·A(:,j).
// Each inner step jumps n elements through A.
func ColumnOriented(a *matrix.Dense, x, y []float64) error {
	m, n, err := checkShapes(opColumn, a, x, y)
	if err != nil {
		return err
	}
	ad := a.Data()
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			y[i] += ad[i*n+j] * x[j]
		}
	}

	return nil
}

// Blocked runs the row-oriented update over blockSize×blockSize tiles of A,
// clamping edge tiles to the matrix.
// Errors: ErrInvalidBlockSize (checked first), shape errors as RowOriented.
func Blocked(a *matrix.Dense, x, y []float64, blockSize int) error {
	if blockSize <= 0 {
		return gaxpyErrorf(opBlocked, fmt.Errorf("block size %d: %w", blockSize, ErrInvalidBlockSize))
	}
	m, n, err := checkShapes(opBlocked, a, x, y)
	if err != nil {
		return err
	}
	ad := a.Data()
	for ii := 0; ii < m; ii += blockSize {
		iMax := min(ii+blockSize, m)
		for jj := 0; jj < n; jj += blockSize {
			jMax := min(jj+blockSize, n)
			for i := ii; i < iMax; i++ {
				base := i * n
				for j := jj; j < jMax; j++ {
					y[i] += ad[base+j] * x[j]
				}
			}
		}
	}

	return nil
}
