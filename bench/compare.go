// SPDX-License-Identifier: MIT

// Package bench - head-to-head comparisons.
//
// A comparison times two kernels on the same inputs with one untimed warm-up
// each, then a single timed loop per kernel whose body resets the accumulator
// and multiplies. The reset is inside the timed region; it is O(m·n) against
// the O(m·n·r) product and identical for both sides.
//
// Speedup is firstMS / secondMS, so values above 1 mean the second kernel is
// faster.

package bench

import (
	"fmt"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/loopgemm/gaxpy"
	"github.com/katalvlaran/loopgemm/gemm"
	"github.com/katalvlaran/loopgemm/matrix"
)

// Speedup thresholds for Verdict.
const (
	FasterThreshold = 1.05
	SlowerThreshold = 0.95
)

// Verdict classifies the second kernel against the first.
type Verdict uint8

const (
	Similar Verdict = iota // speedup within [SlowerThreshold, FasterThreshold]
	Faster                 // speedup > FasterThreshold
	Slower                 // speedup < SlowerThreshold
)

func (v Verdict) String() string {
	switch v {
	case Similar:
		return "similar"
	case Faster:
		return "FASTER"
	case Slower:
		return "SLOWER"
	default:
		return fmt.Sprintf("Verdict(%d)", uint8(v))
	}
}

// Classify maps a speedup to a Verdict.
func Classify(speedup float64) Verdict {
	switch {
	case speedup > FasterThreshold:
		return Faster
	case speedup < SlowerThreshold:
		return Slower
	default:
		return Similar
	}
}

// Shape is an m×n matrix shape.
type Shape struct {
	Rows, Cols int
}

func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Comparison is the outcome of timing First against Second.
type Comparison struct {
	Shape      Shape // C (gemm) or A (gaxpy)
	Inner      int   // inner dimension; 0 for gaxpy
	Iterations int

	First, Second     string  // kernel names
	FirstMS, SecondMS float64 // mean milliseconds per iteration

	Speedup float64 // FirstMS / SecondMS
	Verdict Verdict
	MaxDiff float64 // max |result_first - result_second| after the last iteration
}

// Default experiment grids.
var (
	DefaultBlockedSizes      = []int{100, 200, 400, 800, 1000}
	DefaultBlockedIterations = []int{100, 50, 20, 10, 5}
	DefaultExperimentBlocks  = []int{32, 64, 128, 256}

	DefaultGaxpyShapes = []Shape{
		{100, 100}, {500, 500}, {1000, 1000}, {2000, 2000}, {5000, 5000},
	}

	DefaultScalingSizes      = []int{50, 100, 200, 400}
	DefaultScalingIterations = []int{100, 100, 50, 20}
)

const (
	// DefaultGaxpyIterations is the iteration count for every gaxpy shape.
	DefaultGaxpyIterations = 100

	// Size and iteration count of OrderingsExperiment.
	DefaultOrderingsSize       = 200
	DefaultOrderingsIterations = 50

	// Block sizes of at least largeBlock are only tried on matrices of at
	// least largeBlockMinSize; smaller matrices fit in one or two tiles.
	largeBlock        = 256
	largeBlockMinSize = 400
)

func newComparison(shape Shape, inner, iterations int, first, second string, firstMS, secondMS float64) Comparison {
	c := Comparison{
		Shape:      shape,
		Inner:      inner,
		Iterations: iterations,
		First:      first,
		Second:     second,
		FirstMS:    firstMS,
		SecondMS:   secondMS,
	}
	if secondMS > 0 {
		c.Speedup = firstMS / secondMS
	} else {
		c.Speedup = 1
	}
	c.Verdict = Classify(c.Speedup)

	return c
}

// timeLoop runs body once untimed, then iterations times under one timer,
// returning mean milliseconds per iteration.
func timeLoop(iterations int, body func() error) (float64, error) {
	if err := body(); err != nil {
		return 0, err
	}
	var timer Timer
	timer.Start()
	for range iterations {
		if err := body(); err != nil {
			return 0, err
		}
	}

	return timer.ElapsedMS() / float64(iterations), nil
}

// compareOn times first and second on prepared inputs.
func compareOn(first, second gemm.Multiplier, a, b *matrix.Dense, iterations int) (Comparison, error) {
	c1, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return Comparison{}, err
	}
	c2 := c1.CloneDense()

	t1, err := timeLoop(iterations, func() error {
		c1.Zero()
		return first.Multiply(a, b, c1)
	})
	if err != nil {
		return Comparison{}, errors.Wrapf(err, "timing %s", first.Name())
	}
	t2, err := timeLoop(iterations, func() error {
		c2.Zero()
		return second.Multiply(a, b, c2)
	})
	if err != nil {
		return Comparison{}, errors.Wrapf(err, "timing %s", second.Name())
	}

	cmp := newComparison(Shape{a.Rows(), b.Cols()}, a.Cols(), iterations, first.Name(), second.Name(), t1, t2)
	if cmp.MaxDiff, err = matrix.MaxAbsDiff(c1, c2); err != nil {
		return Comparison{}, err
	}

	return cmp, nil
}

// Compare times two kernels on size×size inputs generated from the seed in opts.
func Compare(first, second gemm.Multiplier, size, iterations int, opts ...Option) (Comparison, error) {
	if size <= 0 || iterations <= 0 {
		return Comparison{}, errors.Wrapf(ErrInvalidSize, "size %d, iterations %d", size, iterations)
	}
	o := gatherOptions(opts...)
	a, b, err := GenerateInputs(size, size, size, o.seed)
	if err != nil {
		return Comparison{}, err
	}

	return compareOn(first, second, a, b, iterations)
}

// BlockedExperiment compares ikj against Blocked for every size and block
// size. iterations[i] is the iteration count for sizes[i]. Block sizes of 256
// and above are skipped for sizes below 400.
func BlockedExperiment(sizes, iterations, blockSizes []int, opts ...Option) ([]Comparison, error) {
	if len(sizes) != len(iterations) {
		return nil, errors.Wrapf(ErrInvalidSize, "%d sizes but %d iteration counts", len(sizes), len(iterations))
	}
	if len(blockSizes) == 0 {
		return nil, ErrNoVariants
	}
	o := gatherOptions(opts...)
	base := gemm.NaiveVariant(gemm.OrderIKJ)

	var out []Comparison
	for i, size := range sizes {
		if size <= 0 || iterations[i] <= 0 {
			return nil, errors.Wrapf(ErrInvalidSize, "size %d, iterations %d", size, iterations[i])
		}
		a, b, err := GenerateInputs(size, size, size, o.seed)
		if err != nil {
			return nil, err
		}
		for _, bs := range blockSizes {
			if bs >= largeBlock && size < largeBlockMinSize {
				continue
			}
			blocked := gemm.BlockedVariant(bs)
			if err = blocked.Validate(); err != nil {
				return nil, err
			}
			klog.V(1).Infof("Comparing %s vs %s at %dx%d", base.Name(), blocked.Name(), size, size)
			cmp, err := compareOn(base, blocked, a, b, iterations[i])
			if err != nil {
				return nil, err
			}
			out = append(out, cmp)
		}
	}

	return out, nil
}

// GaxpyKernel is a named y += A·x implementation.
type GaxpyKernel struct {
	Name  string
	Apply func(a *matrix.Dense, x, y []float64) error
}

// Gaxpy kernels available to CompareGaxpyKernels.
var (
	RowGaxpy        = GaxpyKernel{Name: gaxpy.Row.String(), Apply: gaxpy.RowOriented}
	ColumnGaxpy     = GaxpyKernel{Name: gaxpy.Column.String(), Apply: gaxpy.ColumnOriented}
	ModularGaxpy    = GaxpyKernel{Name: "row-helper", Apply: gaxpy.Modular}
	FunctionalGaxpy = GaxpyKernel{Name: "row-closure", Apply: gaxpy.Functional}
)

// CompareGaxpy times row-oriented against column-oriented gaxpy for every shape.
func CompareGaxpy(shapes []Shape, iterations int, opts ...Option) ([]Comparison, error) {
	return CompareGaxpyKernels(RowGaxpy, ColumnGaxpy, shapes, iterations, opts...)
}

// CompareGaxpyKernels times first against second for every shape. A and x
// are drawn from the seed in opts; y is reset inside the timed loop.
func CompareGaxpyKernels(first, second GaxpyKernel, shapes []Shape, iterations int, opts ...Option) ([]Comparison, error) {
	if first.Apply == nil || second.Apply == nil {
		return nil, errors.Wrap(ErrNoVariants, "gaxpy kernel without Apply")
	}
	if iterations <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "iterations %d", iterations)
	}
	o := gatherOptions(opts...)
	out := make([]Comparison, 0, len(shapes))
	for _, s := range shapes {
		if s.Rows <= 0 || s.Cols <= 0 {
			return nil, errors.Wrapf(ErrInvalidSize, "gaxpy %s", s)
		}
		rng := matrix.NewRand(o.seed)
		a, err := matrix.NewDense(s.Rows, s.Cols)
		if err != nil {
			return nil, err
		}
		if err = a.FillUniform(rng); err != nil {
			return nil, err
		}
		x, err := matrix.RandomVector(s.Cols, rng)
		if err != nil {
			return nil, err
		}
		y1 := make([]float64, s.Rows)
		y2 := make([]float64, s.Rows)

		klog.V(1).Infof("Comparing gaxpy %s vs %s at %s", first.Name, second.Name, s)
		t1, err := timeLoop(iterations, func() error {
			clear(y1)
			return first.Apply(a, x, y1)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "timing %s gaxpy", first.Name)
		}
		t2, err := timeLoop(iterations, func() error {
			clear(y2)
			return second.Apply(a, x, y2)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "timing %s gaxpy", second.Name)
		}
		cmp := newComparison(s, 0, iterations, first.Name, second.Name, t1, t2)
		if cmp.MaxDiff, err = matrix.VecMaxAbsDiff(y1, y2); err != nil {
			return nil, err
		}
		out = append(out, cmp)
	}

	return out, nil
}
