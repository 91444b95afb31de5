// SPDX-License-Identifier: MIT

package gemm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBlockSize is returned when a blocked kernel gets blockSize <= 0.
	ErrInvalidBlockSize = errors.New("gemm: block size must be > 0")

	// ErrUnknownOrder is returned for an Order outside the six permutations
	// or an unparsable order name.
	ErrUnknownOrder = errors.New("gemm: unknown loop order")

	// ErrUnknownVariant is returned by ParseVariant and Variant.Validate for
	// names or kinds that do not describe a kernel.
	ErrUnknownVariant = errors.New("gemm: unknown variant")
)

// gemmErrorf tags err with the operation name; sentinels survive via %w.
func gemmErrorf(op string, err error) error {
	return fmt.Errorf("gemm.%s: %w", op, err)
}
