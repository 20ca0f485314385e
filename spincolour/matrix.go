// SPDX-License-Identifier: MIT

package spincolour

import (
	"math"
	"math/cmplx"
)

// Matrix is a 12×12 complex spin-colour matrix, row-major over the flat
// index s·Nc+c. The zero value is the zero matrix.
type Matrix [Dim * Dim]complex128

// Index returns the flat spin-colour index of (s, c).
func Index(s, c int) int { return s*Nc + c }

// Identity returns the 12×12 identity.
func Identity() Matrix { return ScalarMatrix(1) }

// ScalarMatrix returns z times the identity.
func ScalarMatrix(z complex128) Matrix {
	var m Matrix
	for i := 0; i < Dim; i++ {
		m[i*Dim+i] = z
	}

	return m
}

// FromSpin embeds a spin matrix as s ⊗ 1_colour.
func FromSpin(s SpinMatrix) Matrix {
	var m Matrix
	for s1 := 0; s1 < Ns; s1++ {
		for s2 := 0; s2 < Ns; s2++ {
			if s[s1][s2] == 0 {
				continue
			}
			for c := 0; c < Nc; c++ {
				m[Index(s1, c)*Dim+Index(s2, c)] = s[s1][s2]
			}
		}
	}

	return m
}

// At returns the entry at row (s1,c1), column (s2,c2).
func (m *Matrix) At(s1, c1, s2, c2 int) complex128 {
	return m[Index(s1, c1)*Dim+Index(s2, c2)]
}

// Set assigns the entry at row (s1,c1), column (s2,c2).
func (m *Matrix) Set(s1, c1, s2, c2 int, v complex128) {
	m[Index(s1, c1)*Dim+Index(s2, c2)] = v
}

// Entry returns the entry at flat row i, flat column j.
func (m *Matrix) Entry(i, j int) complex128 { return m[i*Dim+j] }

// Zero returns the zero matrix.
func (m Matrix) Zero() Matrix { return Matrix{} }

// Add returns m+o.
func (m Matrix) Add(o Matrix) (Matrix, error) {
	for i := range m {
		m[i] += o[i]
	}

	return m, nil
}

// Sub returns m-o.
func (m Matrix) Sub(o Matrix) (Matrix, error) {
	for i := range m {
		m[i] -= o[i]
	}

	return m, nil
}

// Scale returns f·m.
func (m Matrix) Scale(f float64) Matrix {
	return m.ScaleComplex(complex(f, 0))
}

// ScaleComplex returns z·m.
func (m Matrix) ScaleComplex(z complex128) Matrix {
	for i := range m {
		m[i] *= z
	}

	return m
}

// Mul returns the matrix product m·o. It never fails; the error result
// makes Matrix a vecops.Multiplier.
func (m Matrix) Mul(o Matrix) (Matrix, error) { return m.Times(o), nil }

// Times returns the matrix product m·o.
func (m Matrix) Times(o Matrix) Matrix {
	var out Matrix
	for i := 0; i < Dim; i++ {
		row := i * Dim
		for k := 0; k < Dim; k++ {
			a := m[row+k]
			if a == 0 {
				continue
			}
			ko := k * Dim
			for j := 0; j < Dim; j++ {
				out[row+j] += a * o[ko+j]
			}
		}
	}

	return out
}

// MulSpin returns m·(s ⊗ 1).
func (m Matrix) MulSpin(s SpinMatrix) Matrix {
	return m.Times(FromSpin(s))
}

// Trace returns the full spin-colour trace.
func (m Matrix) Trace() complex128 {
	var tr complex128
	for i := 0; i < Dim; i++ {
		tr += m[i*Dim+i]
	}

	return tr
}

// TraceSpin traces over spin, leaving a colour matrix.
func (m Matrix) TraceSpin() ColourMatrix {
	var out ColourMatrix
	for s := 0; s < Ns; s++ {
		for c1 := 0; c1 < Nc; c1++ {
			for c2 := 0; c2 < Nc; c2++ {
				out[c1][c2] += m.At(s, c1, s, c2)
			}
		}
	}

	return out
}

// TraceColour traces over colour, leaving a spin matrix.
func (m Matrix) TraceColour() SpinMatrix {
	var out SpinMatrix
	for c := 0; c < Nc; c++ {
		for s1 := 0; s1 < Ns; s1++ {
			for s2 := 0; s2 < Ns; s2++ {
				out[s1][s2] += m.At(s1, c, s2, c)
			}
		}
	}

	return out
}

// Adjoint returns the conjugate transpose.
func (m Matrix) Adjoint() Matrix {
	var out Matrix
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			out[j*Dim+i] = cmplx.Conj(m[i*Dim+j])
		}
	}

	return out
}

// MaxAbsDiff returns max |m_ij - o_ij|.
func (m Matrix) MaxAbsDiff(o Matrix) float64 {
	var worst float64
	for i := range m {
		worst = math.Max(worst, cmplx.Abs(m[i]-o[i]))
	}

	return worst
}
