// SPDX-License-Identifier: MIT

package gaxpy

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBlockSize is returned by Blocked for blockSize <= 0.
	ErrInvalidBlockSize = errors.New("gaxpy: block size must be > 0")

	// ErrUnknownOrientation is returned for an Orientation outside Row/Column/Tiled.
	ErrUnknownOrientation = errors.New("gaxpy: unknown orientation")
)

func gaxpyErrorf(op string, err error) error {
	return fmt.Errorf("gaxpy.%s: %w", op, err)
}
