// SPDX-License-Identifier: MIT

package distribution

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/npr/vecops"
)

var (
	// ErrEmpty is returned when a distribution is built from no values.
	ErrEmpty = errors.New("distribution: no values")

	// ErrTooFewSamples is returned when resampling needs more samples than
	// are available (a resampled distribution needs at least one sample and
	// a central value; a jackknife needs at least two samples).
	ErrTooFewSamples = errors.New("distribution: too few samples")

	// ErrBadBootstrapCount is returned for a non-positive bootstrap count.
	ErrBadBootstrapCount = errors.New("distribution: bootstrap count must be > 0")

	// ErrKindMismatch is returned when combining distributions of different
	// resampling kinds.
	ErrKindMismatch = errors.New("distribution: resampling kind mismatch")

	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("distribution: unknown resampling kind")

	// ErrDimensionMismatch aliases the shared element-wise sentinel so that
	// callers can match either name.
	ErrDimensionMismatch = vecops.ErrDimensionMismatch
)

// Operation tags used when wrapping errors.
const (
	opNew       = "distribution.New"
	opJackknife = "Distribution.Jackknife"
	opBootstrap = "Distribution.Bootstrap"
	opZip       = "distribution.ZipWith"
	opMap       = "distribution.Map"
	opStd       = "distribution.Std"
	opJoin      = "distribution.Join"
)

// distErrorf wraps err with an operation tag.
func distErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
