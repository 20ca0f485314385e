// SPDX-License-Identifier: MIT

package spincolour

// Lattice dimensions.
const (
	Ns  = 4       // spin components
	Nc  = 3       // colours
	Nd  = 4       // space-time directions
	Dim = Ns * Nc // spin-colour dimension
)

// SpinMatrix is a 4×4 complex matrix acting on spin only.
type SpinMatrix [Ns][Ns]complex128

// SpinIdentity returns the 4×4 identity.
func SpinIdentity() SpinMatrix {
	var s SpinMatrix
	for i := 0; i < Ns; i++ {
		s[i][i] = 1
	}

	return s
}

// Mul returns a·b.
func (a SpinMatrix) Mul(b SpinMatrix) SpinMatrix {
	var out SpinMatrix
	for i := 0; i < Ns; i++ {
		for k := 0; k < Ns; k++ {
			if a[i][k] == 0 {
				continue
			}
			for j := 0; j < Ns; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// Add returns a+b.
func (a SpinMatrix) Add(b SpinMatrix) SpinMatrix {
	for i := range a {
		for j := range a[i] {
			a[i][j] += b[i][j]
		}
	}

	return a
}

// Sub returns a-b.
func (a SpinMatrix) Sub(b SpinMatrix) SpinMatrix {
	for i := range a {
		for j := range a[i] {
			a[i][j] -= b[i][j]
		}
	}

	return a
}

// Scale returns z·a.
func (a SpinMatrix) Scale(z complex128) SpinMatrix {
	for i := range a {
		for j := range a[i] {
			a[i][j] *= z
		}
	}

	return a
}

// Trace returns the spin trace.
func (a SpinMatrix) Trace() complex128 {
	var tr complex128
	for i := 0; i < Ns; i++ {
		tr += a[i][i]
	}

	return tr
}

// ColourMatrix is a 3×3 complex matrix acting on colour only.
type ColourMatrix [Nc][Nc]complex128

// Mul returns a·b.
func (a ColourMatrix) Mul(b ColourMatrix) ColourMatrix {
	var out ColourMatrix
	for i := 0; i < Nc; i++ {
		for k := 0; k < Nc; k++ {
			for j := 0; j < Nc; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// Trace returns the colour trace.
func (a ColourMatrix) Trace() complex128 {
	var tr complex128
	for i := 0; i < Nc; i++ {
		tr += a[i][i]
	}

	return tr
}
