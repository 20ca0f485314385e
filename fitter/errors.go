// SPDX-License-Identifier: MIT

package fitter

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConverged marks a sample whose fit reached the iteration cap or
	// stalled before meeting a convergence test.
	ErrNotConverged = errors.New("fitter: fit did not converge")

	// ErrNotConfigured is returned by FitAll before AssignModel.
	ErrNotConfigured = errors.New("fitter: no model assigned")

	// ErrNotFitted is returned by result accessors before FitAll.
	ErrNotFitted = errors.New("fitter: FitAll has not run")

	// ErrUnknownModel is returned by Lookup.
	ErrUnknownModel = errors.New("fitter: unknown model")

	// ErrDimensionMismatch is returned when data, abscissae, weights or
	// parameters disagree in length.
	ErrDimensionMismatch = errors.New("fitter: dimension mismatch")

	// ErrTooFewPoints is returned when there are fewer data points than
	// parameters.
	ErrTooFewPoints = errors.New("fitter: fewer data points than parameters")

	// ErrCentralFailed is returned under DropFailed when the central sample
	// itself did not converge.
	ErrCentralFailed = errors.New("fitter: central sample did not converge")
)

const (
	opNew         = "fitter.New"
	opAssign      = "Fitter.AssignModel"
	opFitAll      = "Fitter.FitAll"
	opParams      = "Fitter.Params"
	opExtrapolate = "Fitter.Extrapolate"
	opSolve       = "fitter.Solve"
)

func fitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
