// SPDX-License-Identifier: MIT

package matrix

import "math"

// The methods below make *Dense a vecops.Element / Multiplier / Divider /
// Measurable so that a distribution of matrices (one per resample) can be
// averaged, combined and given an element-wise standard deviation.
// Mul and Div here are ELEMENT-WISE.

// Zero returns a zero matrix of the receiver's shape.
func (m *Dense) Zero() *Dense {
	return &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
}

// Add returns m+o.
func (m *Dense) Add(o *Dense) (*Dense, error) { return Add(m, o) }

// Sub returns m-o.
func (m *Dense) Sub(o *Dense) (*Dense, error) { return Sub(m, o) }

// Scale returns f·m.
func (m *Dense) Scale(f float64) *Dense {
	out := m.Zero()
	for i, v := range m.data {
		out.data[i] = f * v
	}

	return out
}

// Mul returns the element-wise (Hadamard) product m∘o.
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	return zipDense(opHadamard, m, o, func(a, b float64) float64 { return a * b })
}

// Div returns the element-wise quotient.
func (m *Dense) Div(o *Dense) (*Dense, error) {
	return zipDense(opDivElem, m, o, func(a, b float64) float64 { return a / b })
}

// Sqrt returns the element-wise square root.
func (m *Dense) Sqrt() *Dense {
	out := m.Zero()
	for i, v := range m.data {
		out.data[i] = math.Sqrt(v)
	}

	return out
}

// MatMul returns the matrix product a·b of two Dense matrices.
func MatMul(a, b *Dense) (*Dense, error) { return Mul(a, b) }

func zipDense(tag string, a, b *Dense, fn func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := a.Zero()
	for i := range a.data {
		out.data[i] = fn(a.data[i], b.data[i])
	}

	return out, nil
}

// AllClose reports whether |a_ij - b_ij| <= tol for every entry.
// Matrices of different shapes are never close.
func AllClose(a, b *Dense, tol float64) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}

	return true
}
