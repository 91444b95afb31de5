// SPDX-License-Identifier: MIT

// gemmbench times the six loop orderings of C += A·B, cache-blocked GEMM, the
// gaxpy orientations and helper-based rewrites of ikj and gaxpy, and checks
// every kernel against the ijk product.
//
// Usage:
//
//	gemmbench [flags] [matrix_size] [warmup_runs] [test_runs]
//
// Exit status is 0 on success, 1 when a kernel disagrees with the reference
// or a run fails, and 2 on a malformed command line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/loopgemm/bench"
	"github.com/katalvlaran/loopgemm/gemm"
	"github.com/katalvlaran/loopgemm/matrix"
)

var (
	flagMode = flag.String("mode", string(modeAll),
		"What to run: all (verify, orderings, blocked), orderings, blocked, gaxpy, modular or verify.")
	flagSeed     = flag.Int64("seed", bench.DefaultSeed, "Seed for the random input matrices.")
	flagTol      = flag.Float64("tol", bench.DefaultTolerance, "Maximum |diff| accepted against the ijk reference.")
	flagVariants = flag.String("variants", "",
		"Comma-separated kernels for the orderings suite, e.g. \"ijk,ikj,ikj-hoisted,blocked-64,gonum\". "+
			"Empty runs the six orderings, ikj-hoisted, ikj-modular and blocked for each -blocks entry.")
	flagBlocks       = flag.String("blocks", "", "Comma-separated tile edges for the orderings suite (default 32,64,128).")
	flagCompareSize  = flag.Int("compare_size", bench.DefaultOrderingsSize, "Matrix size of the head-to-head ordering comparisons.")
	flagCompareIters = flag.Int("compare_iters", bench.DefaultOrderingsIterations, "Iterations per head-to-head ordering comparison.")
	flagScalingSizes = flag.String("scaling_sizes", "",
		"Matrix sizes of the ikj vs jki scaling run and the modular ikj run (default 50,100,200,400).")
	flagScalingIters = flag.String("scaling_iters", "", "Iterations per -scaling_sizes entry (default 100,100,50,20).")
	flagBlockedSizes = flag.String("blocked_sizes", "", "Matrix sizes of the blocked experiment (default 100,200,400,800,1000).")
	flagBlockedIters = flag.String("blocked_iters", "", "Iterations per -blocked_sizes entry (default 100,50,20,10,5).")
	flagExperBlocks  = flag.String("experiment_blocks", "", "Tile edges of the blocked experiment (default 32,64,128,256).")
	flagGaxpySizes   = flag.String("gaxpy_sizes", "", "Square sizes of the gaxpy comparison (default 100,500,1000,2000,5000).")
	flagGaxpyIters   = flag.Int("gaxpy_iters", bench.DefaultGaxpyIterations, "Iterations per gaxpy size.")
	flagProgress     = flag.Bool("progress", false, "Draw a progress bar on stderr while the orderings suite runs.")
	flagHost         = flag.Bool("host", true, "Print the run configuration and host description first.")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] [matrix_size] [warmup_runs] [test_runs]\n\n", os.Args[0])
	fmt.Fprintf(out, "Defaults: matrix_size=%d warmup_runs=%d test_runs=%d\n\nFlags:\n",
		bench.DefaultSize, bench.DefaultWarmup, bench.DefaultRuns)
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()
	defer klog.Flush()

	cfg, err := buildConfig(flagValues{
		mode:         *flagMode,
		variants:     *flagVariants,
		blocks:       *flagBlocks,
		blockedSizes: *flagBlockedSizes,
		blockedIters: *flagBlockedIters,
		experBlocks:  *flagExperBlocks,
		gaxpySizes:   *flagGaxpySizes,
		scalingSizes: *flagScalingSizes,
		scalingIters: *flagScalingIters,
		seed:         *flagSeed,
		tol:          *flagTol,
		compareSize:  *flagCompareSize,
		compareIters: *flagCompareIters,
		gaxpyIters:   *flagGaxpyIters,
		progress:     *flagProgress,
		host:         *flagHost,
	}, flag.Args())
	if err != nil {
		klog.Errorf("%v. See 'gemmbench -help'.", err)
		klog.Flush()
		os.Exit(2)
	}

	var progress io.Writer
	if cfg.progress {
		progress = os.Stderr
	}
	passed, err := run(os.Stdout, progress, cfg)
	if err != nil {
		klog.Errorf("%+v", err)
		klog.Flush()
		os.Exit(1)
	}
	if !passed {
		klog.Errorf("Verification failed: at least one kernel disagrees with the reference beyond %g", cfg.tol)
		klog.Flush()
		os.Exit(1)
	}
}

// run executes cfg.mode, writing reports to w. It returns false when any
// verification check failed.
func run(w io.Writer, progress io.Writer, cfg config) (passed bool, err error) {
	passed = true
	if cfg.host {
		info := bench.RunInfo{Size: cfg.size, Warmup: cfg.warmup, Runs: cfg.runs, Seed: cfg.seed}
		if err = bench.RenderHeader(w, info, bench.DetectHost()); err != nil {
			return false, err
		}
	}
	seed := bench.WithSeed(cfg.seed)

	needGEMM := cfg.mode == modeAll || cfg.mode == modeOrderings || cfg.mode == modeVerify
	if needGEMM {
		a, b, err := bench.GenerateInputs(cfg.size, cfg.size, cfg.size, cfg.seed)
		if err != nil {
			return false, err
		}
		if cfg.mode != modeOrderings {
			ok, err := verifyGEMM(w, verificationSet(cfg), a, b, cfg.tol)
			if err != nil {
				return false, err
			}
			passed = passed && ok
		}
		if cfg.mode != modeVerify {
			opts := append(cfg.options(), bench.WithProgress(progress))
			results, err := bench.RunSuite(cfg.variants, a, b, opts...)
			if err != nil {
				return false, err
			}
			title := fmt.Sprintf("Performance (%dx%d)", cfg.size, cfg.size)
			if err = bench.RenderResults(w, title, results); err != nil {
				return false, err
			}
		}
	}

	if cfg.mode == modeAll || cfg.mode == modeOrderings {
		cmps, err := bench.OrderingsExperiment(cfg.compareSize, cfg.compareIters, seed)
		if err != nil {
			return false, err
		}
		title := fmt.Sprintf("Orderings head-to-head (%dx%d)", cfg.compareSize, cfg.compareSize)
		if err = bench.RenderComparisons(w, title, cmps); err != nil {
			return false, err
		}

		ikj, jki := gemm.NaiveVariant(gemm.OrderIKJ), gemm.NaiveVariant(gemm.OrderJKI)
		cmps, err = bench.ScalingExperiment(ikj, jki, cfg.scalingSizes, cfg.scalingIters, seed)
		if err != nil {
			return false, err
		}
		if err = bench.RenderComparisons(w, "Scaling: ikj vs jki", cmps); err != nil {
			return false, err
		}
	}

	if cfg.mode == modeAll || cfg.mode == modeBlocked {
		cmps, err := bench.BlockedExperiment(cfg.blockedSizes, cfg.blockedIters, cfg.experBlocks, seed)
		if err != nil {
			return false, err
		}
		if err = bench.RenderComparisons(w, "Blocked vs ikj", cmps); err != nil {
			return false, err
		}
	}

	if cfg.mode == modeGaxpy || cfg.mode == modeVerify {
		v, err := bench.VerifyGaxpy(cfg.size, cfg.size, cfg.seed, cfg.tol)
		if err != nil {
			return false, err
		}
		if err = bench.RenderVerification(w, v); err != nil {
			return false, err
		}
		passed = passed && v.AllPassed()
	}
	if cfg.mode == modeGaxpy {
		cmps, err := bench.CompareGaxpy(cfg.gaxpyShapes, cfg.gaxpyIters, seed)
		if err != nil {
			return false, err
		}
		if err = bench.RenderComparisons(w, "Gaxpy: row vs column", cmps); err != nil {
			return false, err
		}
	}

	if cfg.mode == modeModular {
		if err = runModular(w, cfg); err != nil {
			return false, err
		}
	}

	return passed, nil
}

// runModular times ikj and row gaxpy against their helper-based rewrites.
func runModular(w io.Writer, cfg config) error {
	seed := bench.WithSeed(cfg.seed)
	ikj, layered := gemm.NaiveVariant(gemm.OrderIKJ), gemm.ModularVariant()
	cmps, err := bench.ScalingExperiment(ikj, layered, cfg.scalingSizes, cfg.scalingIters, seed)
	if err != nil {
		return err
	}
	if err = bench.RenderComparisons(w, "Modular: ikj vs "+layered.Name(), cmps); err != nil {
		return err
	}
	for _, k := range []bench.GaxpyKernel{bench.ModularGaxpy, bench.FunctionalGaxpy} {
		cmps, err = bench.CompareGaxpyKernels(bench.RowGaxpy, k, cfg.gaxpyShapes, cfg.gaxpyIters, seed)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("Modular gaxpy: %s vs %s", bench.RowGaxpy.Name, k.Name)
		if err = bench.RenderComparisons(w, title, cmps); err != nil {
			return err
		}
	}

	return nil
}

// verificationSet is cfg.variants plus cfg.extra, with the gonum product
// appended when missing.
func verificationSet(cfg config) []gemm.Multiplier {
	muls := make([]gemm.Multiplier, 0, len(cfg.variants)+len(cfg.extra)+1)
	for _, v := range cfg.variants {
		muls = append(muls, v)
	}
	muls = append(muls, cfg.extra...)
	if !slices.Contains(muls, gemm.Multiplier(gemm.LibraryVariant())) {
		muls = append(muls, gemm.LibraryVariant())
	}

	return muls
}

// verifyGEMM checks muls against ijk and renders the table.
func verifyGEMM(w io.Writer, muls []gemm.Multiplier, a, b *matrix.Dense, tol float64) (bool, error) {
	v, err := bench.Verify(muls, a, b, tol)
	if err != nil {
		return false, errors.Wrap(err, "verification")
	}
	if err = bench.RenderVerification(w, v); err != nil {
		return false, err
	}

	return v.AllPassed(), nil
}
