// SPDX-License-Identifier: MIT

package vecops

import "math"

// Real is a scalar distribution value.
type Real float64

// Zero returns 0.
func (r Real) Zero() Real { return 0 }

// Add returns r+o.
func (r Real) Add(o Real) (Real, error) { return r + o, nil }

// Sub returns r-o.
func (r Real) Sub(o Real) (Real, error) { return r - o, nil }

// Mul returns r*o.
func (r Real) Mul(o Real) (Real, error) { return r * o, nil }

// Div returns r/o. Division by zero follows IEEE-754 (±Inf or NaN).
func (r Real) Div(o Real) (Real, error) { return r / o, nil }

// Scale returns r*s.
func (r Real) Scale(s float64) Real { return r * Real(s) }

// Sqrt returns the square root of r.
func (r Real) Sqrt() Real { return Real(math.Sqrt(float64(r))) }

// Float returns r as a float64.
func (r Real) Float() float64 { return float64(r) }

// Reals converts a []float64 into []Real.
func Reals(xs []float64) []Real {
	out := make([]Real, len(xs))
	for i, x := range xs {
		out[i] = Real(x)
	}

	return out
}

// Floats converts a []Real into []float64.
func Floats(xs []Real) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}
