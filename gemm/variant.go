// SPDX-License-Identifier: MIT

package gemm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/loopgemm/matrix"
)

// Kind tags the family a Variant belongs to.
type Kind uint8

const (
	KindNaive   Kind = iota // one of the six orderings
	KindHoisted             // IKJHoisted
	KindBlocked             // Blocked with Variant.BlockSize
	KindLibrary             // Reference (gonum)
	KindModular             // IKJModular
)

// Names accepted by ParseVariant besides the six order names.
const (
	nameHoisted       = "ikj-hoisted"
	nameModular       = "ikj-modular"
	nameLibrary       = "gonum"
	nameBlockedPrefix = "blocked-"
)

// DefaultBlockSizes are the tile edges benchmarked by default.
var DefaultBlockSizes = []int{32, 64, 128}

// Multiplier is anything that can run C += A·B under a display name.
// Variant implements it; the benchmark harness accepts it.
type Multiplier interface {
	Name() string
	Multiply(a, b, c *matrix.Dense) error
}

// Variant is one benchmarkable kernel configuration.
// Order is meaningful only for KindNaive, BlockSize only for KindBlocked.
type Variant struct {
	Kind      Kind
	Order     Order
	BlockSize int
}

var _ Multiplier = Variant{}

// NaiveVariant selects one of the six orderings.
func NaiveVariant(o Order) Variant { return Variant{Kind: KindNaive, Order: o} }

// HoistedVariant selects IKJHoisted.
func HoistedVariant() Variant { return Variant{Kind: KindHoisted, Order: OrderIKJ} }

// ModularVariant selects IKJModular.
func ModularVariant() Variant { return Variant{Kind: KindModular, Order: OrderIKJ} }

// BlockedVariant selects Blocked with the given tile edge.
func BlockedVariant(blockSize int) Variant {
	return Variant{Kind: KindBlocked, Order: OrderIKJ, BlockSize: blockSize}
}

// LibraryVariant selects Reference.
func LibraryVariant() Variant { return Variant{Kind: KindLibrary} }

// Validate reports whether v describes a runnable kernel.
func (v Variant) Validate() error {
	switch v.Kind {
	case KindNaive:
		if !v.Order.Valid() {
			return gemmErrorf("Variant.Validate", ErrUnknownOrder)
		}
	case KindBlocked:
		if v.BlockSize <= 0 {
			return gemmErrorf("Variant.Validate", fmt.Errorf("block size %d: %w", v.BlockSize, ErrInvalidBlockSize))
		}
	case KindHoisted, KindModular, KindLibrary:
	default:
		return gemmErrorf("Variant.Validate", fmt.Errorf("kind %d: %w", v.Kind, ErrUnknownVariant))
	}

	return nil
}

// Name is the short, parseable identifier: "ijk", "ikj-hoisted", "blocked-64", "gonum".
func (v Variant) Name() string {
	switch v.Kind {
	case KindNaive:
		return v.Order.String()
	case KindHoisted:
		return nameHoisted
	case KindModular:
		return nameModular
	case KindBlocked:
		return nameBlockedPrefix + strconv.Itoa(v.BlockSize)
	case KindLibrary:
		return nameLibrary
	default:
		return fmt.Sprintf("Variant(%d)", v.Kind)
	}
}

// Label is the human-readable table caption, e.g. "ijk (dot product)".
func (v Variant) Label() string {
	switch v.Kind {
	case KindNaive:
		return fmt.Sprintf("%s (%s)", v.Order, v.Order.Form())
	case KindHoisted:
		return "ikj (hoisted)"
	case KindModular:
		return "ikj (modular saxpy)"
	case KindBlocked:
		return fmt.Sprintf("blocked (bs=%d)", v.BlockSize)
	case KindLibrary:
		return "gonum (library)"
	default:
		return v.Name()
	}
}

// Multiply runs C += A·B with the selected kernel.
func (v Variant) Multiply(a, b, c *matrix.Dense) error {
	switch v.Kind {
	case KindNaive:
		return Multiply(v.Order, a, b, c)
	case KindHoisted:
		return IKJHoisted(a, b, c)
	case KindModular:
		return IKJModular(a, b, c)
	case KindBlocked:
		return Blocked(a, b, c, v.BlockSize)
	case KindLibrary:
		return Reference(a, b, c)
	default:
		return gemmErrorf(opMul, fmt.Errorf("kind %d: %w", v.Kind, ErrUnknownVariant))
	}
}

// ParseVariant inverts Name: order names, "ikj-hoisted", "ikj-modular",
// "blocked-<bs>", "gonum".
// Matching is case-insensitive.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == nameHoisted:
		return HoistedVariant(), nil
	case name == nameModular:
		return ModularVariant(), nil
	case name == nameLibrary:
		return LibraryVariant(), nil
	case strings.HasPrefix(name, nameBlockedPrefix):
		bs, err := strconv.Atoi(strings.TrimPrefix(name, nameBlockedPrefix))
		if err != nil {
			return Variant{}, fmt.Errorf("%q: %w", s, ErrUnknownVariant)
		}
		v := BlockedVariant(bs)
		if err = v.Validate(); err != nil {
			return Variant{}, err
		}

		return v, nil
	}
	o, err := ParseOrder(name)
	if err != nil {
		return Variant{}, fmt.Errorf("%q: %w", s, ErrUnknownVariant)
	}

	return NaiveVariant(o), nil
}

// DefaultVariants is the standard line-up for an n×n run: the six orderings,
// the hoisted and modular ikj, and Blocked for each of DefaultBlockSizes not larger than size.
func DefaultVariants(size int) []Variant {
	out := make([]Variant, 0, int(numOrders)+2+len(DefaultBlockSizes))
	for _, o := range Orders() {
		out = append(out, NaiveVariant(o))
	}
	out = append(out, HoistedVariant(), ModularVariant())
	for _, bs := range DefaultBlockSizes {
		if bs <= size {
			out = append(out, BlockedVariant(bs))
		}
	}

	return out
}
