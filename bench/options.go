// SPDX-License-Identifier: MIT

// Package bench: functional configuration for benchmark runs.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves defaults.

package bench

import (
	"io"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSize is the edge of the square matrices used by the suite.
	DefaultSize = 256

	// DefaultWarmup is the number of untimed runs per variant.
	DefaultWarmup = 3

	// DefaultRuns is the number of timed runs averaged per variant.
	DefaultRuns = 5

	// DefaultSeed seeds the random inputs so runs are reproducible.
	DefaultSeed int64 = 42

	// DefaultTolerance is the maximum absolute difference accepted between a
	// variant and the reference.
	DefaultTolerance = 1e-10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWarmupInvalid    = "bench: WithWarmup: n must be >= 0"
	panicRunsInvalid      = "bench: WithRuns: n must be > 0"
	panicToleranceInvalid = "bench: WithTolerance: tol must be finite, non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	warmup   int       // DefaultWarmup
	runs     int       // DefaultRuns
	seed     int64     // DefaultSeed
	tol      float64   // DefaultTolerance
	progress io.Writer // nil: no progress bar
}

// WithWarmup sets the number of untimed runs per variant (0 disables warm-up).
func WithWarmup(n int) Option {
	if n < 0 {
		panic(panicWarmupInvalid)
	}

	return func(o *Options) { o.warmup = n }
}

// WithRuns sets the number of timed runs averaged per variant.
func WithRuns(n int) Option {
	if n <= 0 {
		panic(panicRunsInvalid)
	}

	return func(o *Options) { o.runs = n }
}

// WithSeed sets the seed used for generated inputs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithTolerance sets the verification tolerance.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithProgress draws a progress bar on w while a suite runs; nil disables it.
func WithProgress(w io.Writer) Option {
	return func(o *Options) { o.progress = w }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Warmup returns the number of untimed runs.
func (o Options) Warmup() int { return o.warmup }

// Runs returns the number of timed runs.
func (o Options) Runs() int { return o.runs }

// Seed returns the input seed.
func (o Options) Seed() int64 { return o.seed }

// Tolerance returns the verification tolerance.
func (o Options) Tolerance() float64 { return o.tol }

func defaultOptions() Options {
	return Options{
		warmup: DefaultWarmup,
		runs:   DefaultRuns,
		seed:   DefaultSeed,
		tol:    DefaultTolerance,
	}
}

// gatherOptions applies user options in order; later options win.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
