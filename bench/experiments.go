// SPDX-License-Identifier: MIT

package bench

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/loopgemm/gemm"
)

// orderingPairs lists the head-to-head runs of OrderingsExperiment: ijk
// against every other nesting, then the two pairs that share an inner loop
// direction (ikj/kij stream rows, jki/kji stream columns).
var orderingPairs = [][2]gemm.Order{
	{gemm.OrderIJK, gemm.OrderJIK},
	{gemm.OrderIJK, gemm.OrderIKJ},
	{gemm.OrderIJK, gemm.OrderJKI},
	{gemm.OrderIJK, gemm.OrderKIJ},
	{gemm.OrderIJK, gemm.OrderKJI},
	{gemm.OrderIKJ, gemm.OrderKIJ},
	{gemm.OrderJKI, gemm.OrderKJI},
}

// OrderingsExperiment times the ordering pairs on one size×size input set.
func OrderingsExperiment(size, iterations int, opts ...Option) ([]Comparison, error) {
	if size <= 0 || iterations <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d, iterations %d", size, iterations)
	}
	o := gatherOptions(opts...)
	a, b, err := GenerateInputs(size, size, size, o.seed)
	if err != nil {
		return nil, err
	}
	out := make([]Comparison, 0, len(orderingPairs))
	for _, p := range orderingPairs {
		first, second := gemm.NaiveVariant(p[0]), gemm.NaiveVariant(p[1])
		klog.V(1).Infof("Comparing %s vs %s at %dx%d", first.Name(), second.Name(), size, size)
		cmp, err := compareOn(first, second, a, b, iterations)
		if err != nil {
			return nil, err
		}
		out = append(out, cmp)
	}

	return out, nil
}

// ScalingExperiment runs Compare(first, second) at every size, with
// iterations[i] loops for sizes[i]. Each size gets fresh inputs from the seed.
//
// With ikj against jki it shows the row/column gap widening as the
// working set leaves cache; with ikj against ikj-modular it measures the
// call overhead of the layered kernel.
func ScalingExperiment(first, second gemm.Multiplier, sizes, iterations []int, opts ...Option) ([]Comparison, error) {
	if len(sizes) != len(iterations) {
		return nil, errors.Wrapf(ErrInvalidSize, "%d sizes but %d iteration counts", len(sizes), len(iterations))
	}
	if first == nil || second == nil {
		return nil, ErrNoVariants
	}
	out := make([]Comparison, 0, len(sizes))
	for i, size := range sizes {
		klog.V(1).Infof("Comparing %s vs %s at %dx%d", first.Name(), second.Name(), size, size)
		cmp, err := Compare(first, second, size, iterations[i], opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, cmp)
	}

	return out, nil
}
