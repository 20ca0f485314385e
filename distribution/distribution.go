// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/npr/vecops"
)

// Distribution is an immutable ensemble of values of one element type.
//
// Invariants:
//   - len(values) >= 1;
//   - kind == None      ⇒ every value is a sample, EffectiveCount() == Len();
//   - kind is resampled ⇒ the last value is the central estimate and
//     EffectiveCount() == Len()-1 >= 1;
//   - mean is the arithmetic mean of the first EffectiveCount() values.
type Distribution[T vecops.Element[T]] struct {
	values []T
	kind   Kind
	mean   T
}

// New builds an unresampled distribution from raw values.
// The slice is copied; the mean is taken over all values.
func New[T vecops.Element[T]](values []T) (*Distribution[T], error) {
	return NewResampled(values, None)
}

// NewResampled builds a distribution of the given kind. For Jackknife and
// Bootstrap the last value is the central estimate and the mean is taken over
// the values before it. kind None is equivalent to New.
//
// Errors: ErrEmpty for no values; ErrTooFewSamples when a resampled kind has
// fewer than two values; element shape errors from the mean.
func NewResampled[T vecops.Element[T]](values []T, kind Kind) (*Distribution[T], error) {
	if len(values) == 0 {
		return nil, distErrorf(opNew, ErrEmpty)
	}
	n := len(values)
	if kind.Resampled() {
		if n < 2 {
			return nil, distErrorf(opNew, fmt.Errorf("%s needs a central value and >= 1 sample, got %d values: %w", kind, n, ErrTooFewSamples))
		}
		n--
	}
	vals := make([]T, len(values))
	copy(vals, values)
	mean, err := vecops.Mean(vals[:n])
	if err != nil {
		return nil, distErrorf(opNew, err)
	}

	return &Distribution[T]{values: vals, kind: kind, mean: mean}, nil
}

// Len returns the number of stored values including any central value.
func (d *Distribution[T]) Len() int { return len(d.values) }

// EffectiveCount returns the number of samples (excluding the central value).
func (d *Distribution[T]) EffectiveCount() int {
	if d.kind.Resampled() {
		return len(d.values) - 1
	}

	return len(d.values)
}

// Kind returns the resampling kind.
func (d *Distribution[T]) Kind() Kind { return d.kind }

// Mean returns the mean over the first EffectiveCount() values.
func (d *Distribution[T]) Mean() T { return d.mean }

// Central returns the central estimate: the trailing value of a resampled
// distribution, the mean otherwise.
func (d *Distribution[T]) Central() T {
	if d.kind.Resampled() {
		return d.values[len(d.values)-1]
	}

	return d.mean
}

// Value returns the i-th stored value. Index len-1 of a resampled
// distribution is the central value.
func (d *Distribution[T]) Value(i int) T { return d.values[i] }

// Values returns a copy of all stored values, central value last.
func (d *Distribution[T]) Values() []T {
	out := make([]T, len(d.values))
	copy(out, d.values)

	return out
}

// Samples returns a copy of the non-central values.
func (d *Distribution[T]) Samples() []T {
	n := d.EffectiveCount()
	out := make([]T, n)
	copy(out, d.values[:n])

	return out
}

// Jackknife returns the delete-one jackknife of d: for each of the N samples,
// (mean·N - v_i)/(N-1), followed by the mean as central value.
// It needs at least two samples.
func (d *Distribution[T]) Jackknife() (*Distribution[T], error) {
	n := d.EffectiveCount()
	if n < 2 {
		return nil, distErrorf(opJackknife, fmt.Errorf("need >= 2 samples, got %d: %w", n, ErrTooFewSamples))
	}
	total := d.mean.Scale(float64(n))
	inv := 1 / float64(n-1)
	out := make([]T, n+1)
	for i := 0; i < n; i++ {
		rest, err := total.Sub(d.values[i])
		if err != nil {
			return nil, distErrorf(opJackknife, err)
		}
		out[i] = rest.Scale(inv)
	}
	out[n] = d.mean

	return NewResampled(out, Jackknife)
}

// Bootstrap returns nBoot bootstrap resamples of d followed by the original
// mean as central value. Each resample averages N uniform draws, with
// replacement, from the N samples. A nil rng uses NewRand(DefaultSeed).
//
// Errors: ErrBadBootstrapCount when nBoot <= 0.
func (d *Distribution[T]) Bootstrap(nBoot int, rng *rand.Rand) (*Distribution[T], error) {
	if nBoot <= 0 {
		return nil, distErrorf(opBootstrap, fmt.Errorf("nBoot=%d: %w", nBoot, ErrBadBootstrapCount))
	}
	if rng == nil {
		rng = NewRand(DefaultSeed)
	}
	n := d.EffectiveCount()
	inv := 1 / float64(n)
	out := make([]T, nBoot+1)
	var err error
	for b := 0; b < nBoot; b++ {
		acc := d.mean.Zero()
		for k := 0; k < n; k++ {
			if acc, err = acc.Add(d.values[rng.Intn(n)]); err != nil {
				return nil, distErrorf(opBootstrap, err)
			}
		}
		out[b] = acc.Scale(inv)
	}
	out[nBoot] = d.mean

	return NewResampled(out, Bootstrap)
}

// Resample dispatches on kind: Jackknife, Bootstrap(nBoot, rng) or, for None,
// returns d unchanged.
func (d *Distribution[T]) Resample(kind Kind, nBoot int, rng *rand.Rand) (*Distribution[T], error) {
	switch kind {
	case Jackknife:
		return d.Jackknife()
	case Bootstrap:
		return d.Bootstrap(nBoot, rng)
	case None:
		return d, nil
	}

	return nil, distErrorf(opNew, fmt.Errorf("%s: %w", kind, ErrUnknownKind))
}
