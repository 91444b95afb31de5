// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/loopgemm/bench"
	"github.com/katalvlaran/loopgemm/gemm"
)

// errUsage marks errors caused by the command line rather than by a run.
var errUsage = errors.New("usage error")

type mode string

const (
	modeAll       mode = "all"
	modeOrderings mode = "orderings"
	modeBlocked   mode = "blocked"
	modeGaxpy     mode = "gaxpy"
	modeModular   mode = "modular"
	modeVerify    mode = "verify"
)

var modes = []mode{modeAll, modeOrderings, modeBlocked, modeGaxpy, modeModular, modeVerify}

func parseMode(s string) (mode, error) {
	for _, m := range modes {
		if string(m) == strings.ToLower(strings.TrimSpace(s)) {
			return m, nil
		}
	}

	return "", errors.Wrapf(errUsage, "unknown -mode %q", s)
}

// positional holds "[matrix_size] [warmup_runs] [test_runs]".
type positional struct {
	size, warmup, runs int
}

func parsePositional(args []string) (positional, error) {
	p := positional{size: bench.DefaultSize, warmup: bench.DefaultWarmup, runs: bench.DefaultRuns}
	if len(args) > 3 {
		return p, errors.Wrapf(errUsage, "too many arguments (%d)", len(args))
	}
	targets := []struct {
		name string
		dst  *int
		min  int
	}{
		{"matrix_size", &p.size, 1},
		{"warmup_runs", &p.warmup, 0},
		{"test_runs", &p.runs, 1},
	}
	for i, arg := range args {
		t := targets[i]
		v, err := strconv.Atoi(arg)
		if err != nil {
			return p, errors.Wrapf(errUsage, "%s: %q is not an integer", t.name, arg)
		}
		if v < t.min {
			return p, errors.Wrapf(errUsage, "%s: %d must be >= %d", t.name, v, t.min)
		}
		*t.dst = v
	}

	return p, nil
}

// parseIntList parses "32,64,128". Empty input yields def.
func parseIntList(flagName, s string, def []int) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v <= 0 {
			return nil, errors.Wrapf(errUsage, "-%s: %q is not a positive integer", flagName, part)
		}
		out = append(out, v)
	}

	return out, nil
}

// parseVariants parses a comma-separated list of kernel names. Empty input
// selects gemm.DefaultVariants for size, with blockSizes replacing the default
// tile edges.
func parseVariants(s string, size int, blockSizes []int) ([]gemm.Variant, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		var out []gemm.Variant
		for _, v := range gemm.DefaultVariants(size) {
			if v.Kind != gemm.KindBlocked {
				out = append(out, v)
			}
		}
		for _, bs := range blockSizes {
			if bs <= size {
				out = append(out, gemm.BlockedVariant(bs))
			}
		}

		return out, nil
	}
	var out []gemm.Variant
	for _, name := range strings.Split(s, ",") {
		v, err := gemm.ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("%w: -variants: %w", errUsage, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func squareShapes(sizes []int) []bench.Shape {
	out := make([]bench.Shape, len(sizes))
	for i, n := range sizes {
		out[i] = bench.Shape{Rows: n, Cols: n}
	}

	return out
}

// config is the fully resolved command line.
type config struct {
	mode mode
	positional
	seed     int64
	tol      float64
	variants []gemm.Variant

	// extra kernels verified alongside variants; never benchmarked.
	extra []gemm.Multiplier

	compareSize  int
	compareIters int
	scalingSizes []int
	scalingIters []int

	blockedSizes []int
	blockedIters []int
	experBlocks  []int

	gaxpyShapes []bench.Shape
	gaxpyIters  int

	progress bool
	host     bool
}

func (c config) options() []bench.Option {
	return []bench.Option{
		bench.WithWarmup(c.warmup),
		bench.WithRuns(c.runs),
		bench.WithSeed(c.seed),
		bench.WithTolerance(c.tol),
	}
}

// flagValues mirrors the raw flag values so buildConfig can be tested
// without touching the global flag set.
type flagValues struct {
	mode, variants, blocks     string
	blockedSizes, blockedIters string
	experBlocks, gaxpySizes    string
	scalingSizes, scalingIters string
	seed                       int64
	tol                        float64
	compareSize, compareIters  int
	gaxpyIters                 int
	progress, host             bool
}

func buildConfig(fv flagValues, args []string) (config, error) {
	var (
		cfg config
		err error
	)
	if cfg.mode, err = parseMode(fv.mode); err != nil {
		return cfg, err
	}
	if cfg.positional, err = parsePositional(args); err != nil {
		return cfg, err
	}
	if fv.tol < 0 || math.IsNaN(fv.tol) || math.IsInf(fv.tol, 0) {
		return cfg, errors.Wrapf(errUsage, "-tol %g must be >= 0", fv.tol)
	}
	if fv.gaxpyIters <= 0 {
		return cfg, errors.Wrapf(errUsage, "-gaxpy_iters %d must be > 0", fv.gaxpyIters)
	}
	if fv.compareSize <= 0 || fv.compareIters <= 0 {
		return cfg, errors.Wrapf(errUsage, "-compare_size %d and -compare_iters %d must be > 0",
			fv.compareSize, fv.compareIters)
	}
	cfg.seed, cfg.tol, cfg.gaxpyIters = fv.seed, fv.tol, fv.gaxpyIters
	cfg.compareSize, cfg.compareIters = fv.compareSize, fv.compareIters
	cfg.progress, cfg.host = fv.progress, fv.host

	blocks, err := parseIntList("blocks", fv.blocks, gemm.DefaultBlockSizes)
	if err != nil {
		return cfg, err
	}
	if cfg.variants, err = parseVariants(fv.variants, cfg.size, blocks); err != nil {
		return cfg, err
	}
	if cfg.blockedSizes, err = parseIntList("blocked_sizes", fv.blockedSizes, bench.DefaultBlockedSizes); err != nil {
		return cfg, err
	}
	if cfg.blockedIters, err = parseIntList("blocked_iters", fv.blockedIters, bench.DefaultBlockedIterations); err != nil {
		return cfg, err
	}
	if len(cfg.blockedSizes) != len(cfg.blockedIters) {
		return cfg, errors.Wrapf(errUsage, "-blocked_sizes has %d entries but -blocked_iters has %d",
			len(cfg.blockedSizes), len(cfg.blockedIters))
	}
	if cfg.scalingSizes, err = parseIntList("scaling_sizes", fv.scalingSizes, bench.DefaultScalingSizes); err != nil {
		return cfg, err
	}
	if cfg.scalingIters, err = parseIntList("scaling_iters", fv.scalingIters, bench.DefaultScalingIterations); err != nil {
		return cfg, err
	}
	if len(cfg.scalingSizes) != len(cfg.scalingIters) {
		return cfg, errors.Wrapf(errUsage, "-scaling_sizes has %d entries but -scaling_iters has %d",
			len(cfg.scalingSizes), len(cfg.scalingIters))
	}
	if cfg.experBlocks, err = parseIntList("experiment_blocks", fv.experBlocks, bench.DefaultExperimentBlocks); err != nil {
		return cfg, err
	}
	gaxpySizes, err := parseIntList("gaxpy_sizes", fv.gaxpySizes, nil)
	if err != nil {
		return cfg, err
	}
	cfg.gaxpyShapes = bench.DefaultGaxpyShapes
	if gaxpySizes != nil {
		cfg.gaxpyShapes = squareShapes(gaxpySizes)
	}

	return cfg, nil
}
