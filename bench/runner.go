// SPDX-License-Identifier: MIT

package bench

import (
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/loopgemm/gemm"
	"github.com/katalvlaran/loopgemm/matrix"
)

// GenerateInputs returns A (m×r) and B (r×n) filled from one uniform [-1,1)
// stream seeded with seed, A first. Equal seeds give equal matrices.
func GenerateInputs(m, r, n int, seed int64) (a, b *matrix.Dense, err error) {
	if m <= 0 || r <= 0 || n <= 0 {
		return nil, nil, errors.Wrapf(ErrInvalidSize, "inputs %dx%dx%d", m, r, n)
	}
	rng := matrix.NewRand(seed)
	if a, err = matrix.NewDense(m, r); err != nil {
		return nil, nil, errors.Wrap(err, "allocating A")
	}
	if b, err = matrix.NewDense(r, n); err != nil {
		return nil, nil, errors.Wrap(err, "allocating B")
	}
	if err = a.FillUniform(rng); err != nil {
		return nil, nil, errors.Wrap(err, "filling A")
	}
	if err = b.FillUniform(rng); err != nil {
		return nil, nil, errors.Wrap(err, "filling B")
	}

	return a, b, nil
}

// RunGEMM times C += A·B for one kernel.
//
// Warm-up runs zero C and multiply without timing. Each timed run zeroes C
// outside the timed region and times the multiplication alone; Seconds is the
// mean over the timed runs. C is allocated here and never shared.
func RunGEMM(mul gemm.Multiplier, a, b *matrix.Dense, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return Result{}, errors.Wrapf(err, "%s", mul.Name())
	}
	m, r, n := a.Rows(), a.Cols(), b.Cols()
	c, err := matrix.NewDense(m, n)
	if err != nil {
		return Result{}, errors.Wrapf(err, "%s: allocating C", mul.Name())
	}

	klog.V(1).Infof("Warming up %s (%d runs)", mul.Name(), o.warmup)
	for range o.warmup {
		c.Zero()
		if err = mul.Multiply(a, b, c); err != nil {
			return Result{}, errors.Wrapf(err, "%s: warm-up", mul.Name())
		}
	}

	klog.V(1).Infof("Timing %s (%d runs)", mul.Name(), o.runs)
	var timer Timer
	var total float64
	for range o.runs {
		c.Zero()
		timer.Start()
		err = mul.Multiply(a, b, c)
		total += timer.ElapsedSeconds()
		if err != nil {
			return Result{}, errors.Wrapf(err, "%s: timed run", mul.Name())
		}
	}

	res := Result{
		Name:    mul.Name(),
		Label:   labelOf(mul),
		M:       m,
		N:       n,
		R:       r,
		Runs:    o.runs,
		Seconds: total / float64(o.runs),
		FLOPs:   gemm.FLOPs(m, n, r),
	}
	res.MFLOPS = mflops(res.FLOPs, res.Seconds)
	klog.V(2).Infof("%s: %.6fs, %.2f MFLOPS", res.Name, res.Seconds, res.MFLOPS)

	return res, nil
}

// RunSuite runs RunGEMM for every multiplier in order and fills Relative.
// With WithProgress set, a bar advances once per finished kernel.
func RunSuite[M gemm.Multiplier](muls []M, a, b *matrix.Dense, opts ...Option) ([]Result, error) {
	if len(muls) == 0 {
		return nil, ErrNoVariants
	}
	o := gatherOptions(opts...)

	var bar *progressbar.ProgressBar
	if o.progress != nil {
		bar = progressbar.NewOptions(len(muls),
			progressbar.OptionSetDescription("benchmarking"),
			progressbar.OptionSetWriter(o.progress),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	results := make([]Result, 0, len(muls))
	for _, mul := range muls {
		if bar != nil {
			bar.Describe(mul.Name())
		}
		res, err := RunGEMM(mul, a, b, opts...)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	fillRelative(results)

	return results, nil
}
