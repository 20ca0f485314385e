// SPDX-License-Identifier: MIT

// Package fitter runs one weighted nonlinear least-squares fit per sample of
// a resampled distribution and returns the fitted parameters, χ² and
// extrapolations as distributions of the same resampling kind.
//
// The solver is Levenberg–Marquardt with a hard iteration cap and the
// relative-step (xtol) and scaled-gradient (gtol) convergence tests of the
// classic MINPACK/GSL lmsder driver. Each sample's outcome is recorded
// individually; a sample that hits the iteration cap carries
// ErrNotConverged and never silently contributes parameters.
//
// Lifecycle: New → AssignModel → FitAll → Params / ChiSq / Extrapolate.
// Calling out of order yields ErrNotConfigured or ErrNotFitted.
package fitter
