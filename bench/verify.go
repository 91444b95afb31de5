// SPDX-License-Identifier: MIT

package bench

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/loopgemm/gaxpy"
	"github.com/katalvlaran/loopgemm/gemm"
	"github.com/katalvlaran/loopgemm/matrix"
)

// Check is the outcome for one kernel against the reference.
type Check struct {
	Name    string
	Label   string
	MaxDiff float64 // max |C_variant - C_reference|
	Pass    bool    // MaxDiff <= tolerance
}

// Verification collects the checks of one run.
type Verification struct {
	Reference string
	Tolerance float64
	Checks    []Check
}

// AllPassed reports whether every check is within tolerance.
func (v Verification) AllPassed() bool {
	for _, c := range v.Checks {
		if !c.Pass {
			return false
		}
	}

	return true
}

// Failed returns the checks outside tolerance.
func (v Verification) Failed() []Check {
	var out []Check
	for _, c := range v.Checks {
		if !c.Pass {
			out = append(out, c)
		}
	}

	return out
}

// Verify computes the ijk product of a and b on a zeroed C as the reference,
// then runs every multiplier on its own zeroed C and records the maximum
// absolute difference. A failed check is reported, not returned as an error.
func Verify[M gemm.Multiplier](muls []M, a, b *matrix.Dense, tol float64) (Verification, error) {
	if len(muls) == 0 {
		return Verification{}, ErrNoVariants
	}
	ref := gemm.NaiveVariant(gemm.OrderIJK)
	want, err := product(ref, a, b)
	if err != nil {
		return Verification{}, errors.Wrap(err, "reference")
	}

	out := Verification{Reference: ref.Name(), Tolerance: tol, Checks: make([]Check, 0, len(muls))}
	for _, mul := range muls {
		got, err := product(mul, a, b)
		if err != nil {
			return Verification{}, errors.Wrapf(err, "verifying %s", mul.Name())
		}
		diff, err := matrix.MaxAbsDiff(got, want)
		if err != nil {
			return Verification{}, errors.Wrapf(err, "verifying %s", mul.Name())
		}
		chk := Check{Name: mul.Name(), Label: labelOf(mul), MaxDiff: diff, Pass: diff <= tol}
		if !chk.Pass {
			klog.Warningf("verification FAILED for %s: max diff %.3e > %.3e", chk.Name, diff, tol)
		}
		out.Checks = append(out.Checks, chk)
	}

	return out, nil
}

// product returns A·B computed by mul on a fresh zero matrix.
func product(mul gemm.Multiplier, a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	c, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	if err = mul.Multiply(a, b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// VerifyGaxpy checks every orientation against the row-oriented result for a
// random m×n system seeded with seed.
func VerifyGaxpy(m, n int, seed int64, tol float64) (Verification, error) {
	if m <= 0 || n <= 0 {
		return Verification{}, errors.Wrapf(ErrInvalidSize, "gaxpy %dx%d", m, n)
	}
	rng := matrix.NewRand(seed)
	a, err := matrix.NewDense(m, n)
	if err != nil {
		return Verification{}, errors.Wrap(err, "allocating A")
	}
	if err = a.FillUniform(rng); err != nil {
		return Verification{}, errors.Wrap(err, "filling A")
	}
	x, err := matrix.RandomVector(n, rng)
	if err != nil {
		return Verification{}, errors.Wrap(err, "allocating x")
	}

	want := make([]float64, m)
	if err = gaxpy.RowOriented(a, x, want); err != nil {
		return Verification{}, errors.Wrap(err, "reference")
	}

	out := Verification{Reference: gaxpy.Row.String(), Tolerance: tol}
	for _, o := range gaxpy.Orientations() {
		y := make([]float64, m)
		if err = gaxpy.Apply(o, a, x, y); err != nil {
			return Verification{}, errors.Wrapf(err, "verifying %s", o)
		}
		diff, err := matrix.VecMaxAbsDiff(y, want)
		if err != nil {
			return Verification{}, errors.Wrapf(err, "verifying %s", o)
		}
		chk := Check{Name: o.String(), Label: o.String() + "-oriented gaxpy", MaxDiff: diff, Pass: diff <= tol}
		if !chk.Pass {
			klog.Warningf("gaxpy verification FAILED for %s: max diff %.3e > %.3e", chk.Name, diff, tol)
		}
		out.Checks = append(out.Checks, chk)
	}

	return out, nil
}
