// SPDX-License-Identifier: MIT

package fitter

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/internal/parallel"
	"github.com/katalvlaran/npr/vecops"
)

type state int

const (
	unconfigured state = iota
	configured
	fitted
)

// Fitter fits one model to every value of a distribution of data vectors.
// All samples share the abscissae and the weights 1/σ_i², where σ is the
// standard deviation of the input distribution computed once in New.
//
// A Fitter is not safe for concurrent use; FitAll parallelises internally.
type Fitter struct {
	x       []float64
	y       *distribution.Distribution[vecops.Vector]
	weights []float64

	model   Model
	initial []float64
	results []Result
	state   state
	opts    options
}

// New prepares a fitter for data y at abscissae x. Every value of y must
// have len(x) entries.
//
// Non-positive or non-finite σ at any point switches every point to unit
// weights and logs a warning.
func New(y *distribution.Distribution[vecops.Vector], x []float64, opts ...Option) (*Fitter, error) {
	if y == nil || len(x) == 0 {
		return nil, fitErrorf(opNew, fmt.Errorf("no data: %w", ErrDimensionMismatch))
	}
	for i, v := range y.Values() {
		if len(v) != len(x) {
			return nil, fitErrorf(opNew, fmt.Errorf("value %d has %d points, want %d: %w", i, len(v), len(x), ErrDimensionMismatch))
		}
	}
	o := gatherOptions(opts)

	sigma := o.sigma
	if sigma == nil {
		s, err := distribution.Std(y)
		if err != nil {
			return nil, fitErrorf(opNew, err)
		}
		sigma = s
	}
	if len(sigma) != len(x) {
		return nil, fitErrorf(opNew, fmt.Errorf("sigma has %d points, want %d: %w", len(sigma), len(x), ErrDimensionMismatch))
	}

	f := &Fitter{
		x:       append([]float64(nil), x...),
		y:       y,
		weights: make([]float64, len(x)),
		opts:    o,
	}
	unit := false
	for i, s := range sigma {
		if !(s > 0) || math.IsInf(s, 1) {
			unit = true
			break
		}
		f.weights[i] = 1 / (s * s)
	}
	if unit {
		o.logger.Warn("non-positive standard deviation, fitting with unit weights",
			zap.Float64s("sigma", sigma))
		for i := range f.weights {
			f.weights[i] = 1
		}
	}

	return f, nil
}

// Weights returns a copy of the per-point weights.
func (f *Fitter) Weights() []float64 {
	return append([]float64(nil), f.weights...)
}

// AssignModel selects the model and its starting parameters; nil initial
// starts every parameter at 1. Assigning again discards previous results.
func (f *Fitter) AssignModel(m Model, initial []float64) error {
	if m == nil {
		return fitErrorf(opAssign, ErrUnknownModel)
	}
	if initial == nil {
		initial = make([]float64, m.NumParams())
		for k := range initial {
			initial[k] = 1
		}
	}
	if len(initial) != m.NumParams() {
		return fitErrorf(opAssign, fmt.Errorf("%d initial params, %s wants %d: %w",
			len(initial), m.Name(), m.NumParams(), ErrDimensionMismatch))
	}
	if len(f.x) < m.NumParams() {
		return fitErrorf(opAssign, fmt.Errorf("%d points, %s has %d params: %w",
			len(f.x), m.Name(), m.NumParams(), ErrTooFewPoints))
	}
	f.model = m
	f.initial = append([]float64(nil), initial...)
	f.results = nil
	f.state = configured

	return nil
}

// FitAll solves every sample independently. Non-convergence is recorded per
// sample and does not fail FitAll; aggregates apply the failure policy.
// Errors are limited to invalid input and cancellation.
func (f *Fitter) FitAll(ctx context.Context) error {
	if f.state == unconfigured {
		return fitErrorf(opFitAll, ErrNotConfigured)
	}
	values := f.y.Values()
	results := make([]Result, len(values))
	err := parallel.ForEach(ctx, len(values), f.opts.workers, func(_ context.Context, i int) error {
		r, err := Solve(f.model, f.x, values[i], f.weights, f.initial, f.opts.settings)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
		results[i] = r

		return nil
	})
	if err != nil {
		return fitErrorf(opFitAll, err)
	}

	f.results = results
	f.state = fitted
	if failed := f.failed(); len(failed) > 0 {
		f.opts.logger.Warn("samples did not converge",
			zap.String("model", f.model.Name()),
			zap.Int("failed", len(failed)),
			zap.Int("samples", len(results)),
			zap.Ints("indices", failed))
	} else {
		f.opts.logger.Debug("fit converged",
			zap.String("model", f.model.Name()),
			zap.Int("samples", len(results)))
	}

	return nil
}

// Results returns the per-sample outcomes in sample order.
func (f *Fitter) Results() ([]Result, error) {
	if f.state != fitted {
		return nil, fitErrorf(opParams, ErrNotFitted)
	}
	out := make([]Result, len(f.results))
	copy(out, f.results)

	return out, nil
}

func (f *Fitter) failed() []int {
	var idx []int
	for i, r := range f.results {
		if r.Err != nil {
			idx = append(idx, i)
		}
	}

	return idx
}

// kept returns the indices that contribute to aggregates under the policy.
func (f *Fitter) kept(tag string) ([]int, error) {
	if f.state != fitted {
		return nil, fitErrorf(tag, ErrNotFitted)
	}
	failed := f.failed()
	if len(failed) == 0 {
		idx := make([]int, len(f.results))
		for i := range idx {
			idx[i] = i
		}

		return idx, nil
	}
	if f.opts.policy == Strict {
		return nil, fitErrorf(tag, fmt.Errorf("%d of %d samples: %w", len(failed), len(f.results), ErrNotConverged))
	}
	central := len(f.results) - 1
	if f.y.Kind().Resampled() && f.results[central].Err != nil {
		return nil, fitErrorf(tag, fmt.Errorf("%w: %w", ErrCentralFailed, f.results[central].Err))
	}
	idx := make([]int, 0, len(f.results)-len(failed))
	for i, r := range f.results {
		if r.Err == nil {
			idx = append(idx, i)
		}
	}

	return idx, nil
}

func collect[T vecops.Element[T]](f *Fitter, tag string, fn func(Result) T) (*distribution.Distribution[T], error) {
	idx, err := f.kept(tag)
	if err != nil {
		return nil, err
	}
	values := make([]T, len(idx))
	for j, i := range idx {
		values[j] = fn(f.results[i])
	}
	d, err := distribution.NewResampled(values, f.y.Kind())
	if err != nil {
		return nil, fitErrorf(tag, err)
	}

	return d, nil
}

// ParamsDistribution returns the fitted parameter vectors with the input's
// resampling kind.
func (f *Fitter) ParamsDistribution() (*distribution.Distribution[vecops.Vector], error) {
	return collect(f, opParams, func(r Result) vecops.Vector {
		return append(vecops.Vector(nil), r.Params...)
	})
}

// ChiSqDistribution returns the final χ² of every kept sample.
func (f *Fitter) ChiSqDistribution() (*distribution.Distribution[vecops.Real], error) {
	return collect(f, opParams, func(r Result) vecops.Real { return vecops.Real(r.ChiSq) })
}

// Extrapolate evaluates the model at x0 with every kept sample's
// parameters, in sample order.
func (f *Fitter) Extrapolate(x0 float64) ([]float64, error) {
	d, err := f.ExtrapolateDistribution(x0)
	if err != nil {
		return nil, err
	}

	return vecops.Floats(d.Values()), nil
}

// ExtrapolateDistribution is Extrapolate packaged with the input's kind, so
// its Std propagates the resampling error through the fit.
func (f *Fitter) ExtrapolateDistribution(x0 float64) (*distribution.Distribution[vecops.Real], error) {
	return collect(f, opExtrapolate, func(r Result) vecops.Real {
		return vecops.Real(f.model.Eval(r.Params, x0))
	})
}

// Model returns the assigned model, or nil before AssignModel.
func (f *Fitter) Model() Model { return f.model }
