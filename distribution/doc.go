// SPDX-License-Identifier: MIT

// Package distribution implements a generic ensemble of per-configuration or
// per-resample values, the carrier type of every statistical quantity in the
// NPR pipeline.
//
// A Distribution holds an ordered list of values of one Element type and a
// resampling Kind:
//
//   - None      : raw measurements; every value is a sample and the mean is
//     taken over all of them.
//   - Jackknife : N delete-one means followed by one trailing central value.
//   - Bootstrap : N resample means followed by one trailing central value.
//
// For the resampled kinds the effective sample count is len(values)-1 and the
// mean is taken over the first N values only; the trailing value is the
// central estimate. Std recentres on that central value and uses the
// jackknife factor (N-1)/N or the plain 1/N accordingly.
//
// Distributions are immutable: every combinator returns a new value and
// preserves the resampling kind of its operands. Combining two
// distributions requires equal length (ErrDimensionMismatch) and equal kind
// (ErrKindMismatch).
//
// Resampling randomness is always explicit: Bootstrap takes a *rand.Rand,
// and NewRand builds one from a configuration seed. Nothing reads the clock.
package distribution
