// SPDX-License-Identifier: MIT

package spincolour

import (
	"fmt"
	"strings"
)

// Gamma labels one of the sixteen Dirac matrices.
type Gamma int

// Gamma labels. The numeric value is also the index of the matching vertex
// in per-configuration vertex lists.
const (
	GammaIdentity Gamma = iota
	Gamma5
	GammaX
	GammaY
	GammaZ
	GammaT
	GammaXGamma5
	GammaYGamma5
	GammaZGamma5
	GammaTGamma5
	SigmaXY
	SigmaXZ
	SigmaXT
	SigmaYZ
	SigmaYT
	SigmaZT

	// NumGammas is the number of gamma labels.
	NumGammas int = iota
)

var gammaNames = [NumGammas]string{
	"Identity", "Gamma5",
	"GammaX", "GammaY", "GammaZ", "GammaT",
	"GammaXGamma5", "GammaYGamma5", "GammaZGamma5", "GammaTGamma5",
	"SigmaXY", "SigmaXZ", "SigmaXT", "SigmaYZ", "SigmaYT", "SigmaZT",
}

// String returns the label name.
func (g Gamma) String() string {
	if g < 0 || int(g) >= NumGammas {
		return fmt.Sprintf("Gamma(%d)", int(g))
	}

	return gammaNames[g]
}

// Valid reports whether g is one of the sixteen labels.
func (g Gamma) Valid() bool { return g >= 0 && int(g) < NumGammas }

// ParseGamma resolves a label name (case-insensitive).
func ParseGamma(s string) (Gamma, error) {
	for i, n := range gammaNames {
		if strings.EqualFold(n, s) {
			return Gamma(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownGamma)
}

// Spin returns the 4×4 matrix of g. g must be Valid.
func (g Gamma) Spin() SpinMatrix { return gammaTable[g] }

// Matrix returns g ⊗ 1_colour. g must be Valid.
func (g Gamma) Matrix() Matrix { return FromSpin(gammaTable[g]) }

// ScalarSet returns the scalar label {1}.
func ScalarSet() []Gamma { return []Gamma{GammaIdentity} }

// PseudoscalarSet returns the pseudoscalar label {γ5}.
func PseudoscalarSet() []Gamma { return []Gamma{Gamma5} }

// VectorSet returns γ_μ in X, Y, Z, T order, the order of momentum components.
func VectorSet() []Gamma { return []Gamma{GammaX, GammaY, GammaZ, GammaT} }

// AxialSet returns γ_μγ5 in X, Y, Z, T order.
func AxialSet() []Gamma {
	return []Gamma{GammaXGamma5, GammaYGamma5, GammaZGamma5, GammaTGamma5}
}

// TensorSet returns γ_μγ_ν for μ<ν: XY, XZ, XT, YZ, YT, ZT.
func TensorSet() []Gamma {
	return []Gamma{SigmaXY, SigmaXZ, SigmaXT, SigmaYZ, SigmaYT, SigmaZT}
}

// Matrices realizes a list of labels.
func Matrices(gs []Gamma) []Matrix {
	out := make([]Matrix, len(gs))
	for i, g := range gs {
		out[i] = g.Matrix()
	}

	return out
}

var gammaTable = buildGammaTable()

func buildGammaTable() [NumGammas]SpinMatrix {
	const i = 1i
	var t [NumGammas]SpinMatrix
	t[GammaIdentity] = SpinIdentity()
	t[GammaX] = SpinMatrix{{0, 0, 0, i}, {0, 0, i, 0}, {0, -i, 0, 0}, {-i, 0, 0, 0}}
	t[GammaY] = SpinMatrix{{0, 0, 0, -1}, {0, 0, 1, 0}, {0, 1, 0, 0}, {-1, 0, 0, 0}}
	t[GammaZ] = SpinMatrix{{0, 0, i, 0}, {0, 0, 0, -i}, {-i, 0, 0, 0}, {0, i, 0, 0}}
	t[GammaT] = SpinMatrix{{0, 0, 1, 0}, {0, 0, 0, 1}, {1, 0, 0, 0}, {0, 1, 0, 0}}
	t[Gamma5] = t[GammaX].Mul(t[GammaY]).Mul(t[GammaZ]).Mul(t[GammaT])

	mu := [Nd]Gamma{GammaX, GammaY, GammaZ, GammaT}
	for k, g := range mu {
		t[GammaXGamma5+Gamma(k)] = t[g].Mul(t[Gamma5])
	}
	sigma := SigmaXY
	for a := 0; a < Nd; a++ {
		for b := a + 1; b < Nd; b++ {
			t[sigma] = t[mu[a]].Mul(t[mu[b]])
			sigma++
		}
	}

	return t
}
