// SPDX-License-Identifier: MIT

package fitter

import "go.uber.org/zap"

// FailurePolicy decides how non-converged samples are aggregated.
type FailurePolicy int

const (
	// Strict fails every aggregate while any sample failed.
	Strict FailurePolicy = iota
	// DropFailed removes failed non-central samples from aggregates.
	DropFailed
)

// String returns "strict" or "drop".
func (p FailurePolicy) String() string {
	if p == DropFailed {
		return "drop"
	}

	return "strict"
}

// Option configures a Fitter.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	workers  int
	settings Settings
	policy   FailurePolicy
	sigma    []float64
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers caps concurrent per-sample fits; n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithMaxIterations sets the hard iteration cap of every sample's solve.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.settings.MaxIterations = n
		}
	}
}

// WithTolerances sets xtol and gtol.
func WithTolerances(xtol, gtol float64) Option {
	return func(o *options) {
		o.settings.XTol = xtol
		o.settings.GTol = gtol
	}
}

// WithReductionTolerance sets ftol, the relative χ² change below which a
// fit counts as converged.
func WithReductionTolerance(ftol float64) Option {
	return func(o *options) {
		if ftol > 0 {
			o.settings.FTol = ftol
		}
	}
}

// WithFailurePolicy selects Strict or DropFailed.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithSigma replaces the per-point standard deviations taken from the data.
func WithSigma(sigma []float64) Option {
	return func(o *options) { o.sigma = append([]float64(nil), sigma...) }
}

func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop(), settings: DefaultSettings()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
