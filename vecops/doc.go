// SPDX-License-Identifier: MIT

// Package vecops defines the arithmetic capability shared by every value that
// can live inside a resampled distribution, together with a small set of
// element-wise combinators.
//
// The capability is expressed as the Element interface: a value knows its own
// additive identity (Zero), can be added to and subtracted from a value of the
// same shape, and can be scaled by a real number. Richer capabilities
// (Multiplier, Divider, Measurable) are layered on top and requested only by
// the operations that need them.
//
// Concrete element types provided here:
//   - Real   : a float64 scalar.
//   - Vector : a []float64 with element-wise arithmetic (gonum/floats kernels).
//   - Seq[E] : an ordered list of any Element, e.g. one vertex per gamma label.
//
// Shape mismatches are reported as ErrDimensionMismatch; nothing here panics
// on user input.
package vecops
