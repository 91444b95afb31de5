// SPDX-License-Identifier: MIT

package bench

import "github.com/pkg/errors"

var (
	// ErrNoVariants is returned when a suite or verification gets nothing to run.
	ErrNoVariants = errors.New("bench: no variants to run")

	// ErrInvalidSize is returned for non-positive matrix sizes or iteration counts.
	ErrInvalidSize = errors.New("bench: sizes and iteration counts must be > 0")
)
