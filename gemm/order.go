// SPDX-License-Identifier: MIT

package gemm

import (
	"fmt"
	"strings"
)

// Order names one nesting of the three loop indices, outermost first.
// i walks rows of A and C, j walks columns of B and C, k is the contraction.
type Order uint8

const (
	OrderIJK Order = iota // dot product
	OrderJIK              // dot product, column-outer
	OrderIKJ              // row-oriented gaxpy
	OrderJKI              // column-oriented gaxpy
	OrderKIJ              // row-oriented outer product
	OrderKJI              // column-oriented outer product

	numOrders
)

var orderNames = [numOrders]string{"ijk", "jik", "ikj", "jki", "kij", "kji"}

var orderForms = [numOrders]string{
	"dot product",
	"dot product",
	"row gaxpy",
	"column gaxpy",
	"row outer product",
	"column outer product",
}

// Orders returns the six permutations in canonical order.
func Orders() []Order {
	out := make([]Order, numOrders)
	for o := range out {
		out[o] = Order(o)
	}

	return out
}

// Valid reports whether o is one of the six permutations.
func (o Order) Valid() bool { return o < numOrders }

// String returns the lower-case index string, e.g. "ikj".
func (o Order) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Order(%d)", uint8(o))
	}

	return orderNames[o]
}

// Form names the natural inner operation of the ordering.
func (o Order) Form() string {
	if !o.Valid() {
		return ""
	}

	return orderForms[o]
}

// ParseOrder accepts "ijk", "IKJ", ... and returns the matching Order.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for o, n := range orderNames {
		if n == name {
			return Order(o), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownOrder)
}
