// SPDX-License-Identifier: MIT

package distribution

import (
	"math"

	"github.com/katalvlaran/npr/vecops"
)

// Std returns the element-wise standard deviation of d about its central
// value, summed over the N non-central samples:
//
//	jackknife: sqrt((N-1)/N · Σ (v_i - c)²)
//	otherwise: sqrt(1/N · Σ (v_i - c)²)
//
// For kind None the central value is the mean, so this is the population
// standard deviation.
func Std[T vecops.Measurable[T]](d *Distribution[T]) (T, error) {
	var zero T
	n := d.EffectiveCount()
	c := d.Central()
	acc := c.Zero()
	for i := 0; i < n; i++ {
		diff, err := d.values[i].Sub(c)
		if err != nil {
			return zero, distErrorf(opStd, err)
		}
		sq, err := diff.Mul(diff)
		if err != nil {
			return zero, distErrorf(opStd, err)
		}
		if acc, err = acc.Add(sq); err != nil {
			return zero, distErrorf(opStd, err)
		}
	}

	return acc.Scale(stdFactor(d.kind, n)).Sqrt(), nil
}

// stdFactor is the normalisation of the squared deviations of n samples.
func stdFactor(kind Kind, n int) float64 {
	if kind == Jackknife {
		return float64(n-1) / float64(n)
	}

	return 1 / float64(n)
}

// Summary is the central value and error of a scalar distribution.
type Summary struct {
	Central float64
	Std     float64
	N       int
	Kind    Kind
}

// Summarize reports central ± std of a real distribution, with Std's
// normalisation.
func Summarize(d *Distribution[vecops.Real]) Summary {
	n := d.EffectiveCount()
	c := float64(d.Central())
	var acc float64
	for _, v := range d.values[:n] {
		diff := float64(v) - c
		acc += diff * diff
	}

	return Summary{Central: c, Std: math.Sqrt(stdFactor(d.kind, n) * acc), N: n, Kind: d.kind}
}
