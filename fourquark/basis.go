// SPDX-License-Identifier: MIT

package fourquark

import (
	"fmt"
	"math"
	"strings"

	sc "github.com/katalvlaran/npr/spincolour"
)

// Nop is the number of operators in the four-quark basis.
const Nop = 5

// DiracStructure is one operator of the basis: the gamma labels whose
// vertex tensors contribute, the realized spin matrices and a relative sign
// per component.
//
// As a vertex structure Indices select the vertex tensors and Gammas give
// the tree-level vertex; as a projector only Gammas and Signs are used.
type DiracStructure struct {
	Name    string
	Indices []sc.Gamma
	Gammas  []sc.SpinMatrix
	Signs   []float64
}

// validate checks that Gammas and Signs agree in length, and Indices too
// when asVertex is set.
func (d DiracStructure) validate(asVertex bool) error {
	if len(d.Gammas) != len(d.Signs) {
		return fmt.Errorf("%s: %d gammas, %d signs: %w", d.Name, len(d.Gammas), len(d.Signs), ErrMalformedStructure)
	}
	if asVertex && len(d.Indices) != len(d.Signs) {
		return fmt.Errorf("%s: %d indices, %d signs: %w", d.Name, len(d.Indices), len(d.Signs), ErrMalformedStructure)
	}

	return nil
}

func structure(name string, labels []sc.Gamma, signs []float64) DiracStructure {
	d := DiracStructure{Name: name, Indices: labels, Signs: signs}
	d.Gammas = make([]sc.SpinMatrix, len(labels))
	for i, g := range labels {
		d.Gammas[i] = g.Spin()
	}

	return d
}

// GammaBasis returns the gamma-scheme operator basis in the order
// VV+AA, VV-AA, SS-PP, SS+PP, TT.
func GammaBasis() []DiracStructure {
	vva := append(sc.VectorSet(), sc.AxialSet()...)
	sp := []sc.Gamma{sc.GammaIdentity, sc.Gamma5}

	return []DiracStructure{
		structure("VVpAA", vva, []float64{1, 1, 1, 1, 1, 1, 1, 1}),
		structure("VVmAA", vva, []float64{1, 1, 1, 1, -1, -1, -1, -1}),
		structure("SSmPP", sp, []float64{1, -1}),
		structure("SSpPP", sp, []float64{1, 1}),
		structure("TT", sc.TensorSet(), []float64{1, 1, 1, 1, 1, 1}),
	}
}

// GammaColourMix is the colour-mix pattern of the gamma scheme.
func GammaColourMix() []bool { return make([]bool, Nop) }

// QSlashColourMix is the colour-mix pattern of the q-slash scheme.
func QSlashColourMix() []bool { return []bool{false, false, true, true, false} }

// QSlashBasis returns the q-slash scheme projectors for incoming momentum p1
// and outgoing momentum p2 (X, Y, Z, T order), q = p1 - p2:
//
//   - VV±AA: components 0-3 use q̸γ5/|q|, components 4-7 use q̸/|q|, with
//     the VV±AA signs;
//   - TT: every component is Σ_{i<j} c_ij (σ_ij - σ_ij γ5)/2 with
//     c_ij = p1_j p2_i / sqrt(p1² p2² - (p1·p2)²).
//
// The basis is {VV+AA, VV-AA, VV-AA, TT, TT}; pair it with QSlashColourMix.
//
// Errors: ErrDegenerateMomenta when q² = 0 or p1 ∥ p2.
func QSlashBasis(p1, p2 []float64) ([]DiracStructure, error) {
	if len(p1) != sc.Nd || len(p2) != sc.Nd {
		return nil, fqErrorf(opQSlash, fmt.Errorf("momenta need %d components: %w", sc.Nd, ErrDegenerateMomenta))
	}
	var qsq, p1sq, p2sq, p1p2 float64
	q := make([]float64, sc.Nd)
	for i := 0; i < sc.Nd; i++ {
		q[i] = p1[i] - p2[i]
		qsq += q[i] * q[i]
		p1sq += p1[i] * p1[i]
		p2sq += p2[i] * p2[i]
		p1p2 += p1[i] * p2[i]
	}
	den := p1sq*p2sq - p1p2*p1p2
	if qsq <= 0 || den <= 0 {
		return nil, fqErrorf(opQSlash, fmt.Errorf("q²=%g, p1²p2²-(p1·p2)²=%g: %w", qsq, den, ErrDegenerateMomenta))
	}
	den = math.Sqrt(den)

	var qslash sc.SpinMatrix
	for i, g := range sc.VectorSet() {
		qslash = qslash.Add(g.Spin().Scale(complex(q[i], 0)))
	}
	g5 := sc.Gamma5.Spin()

	var psigp sc.SpinMatrix
	sigma := sc.TensorSet()
	count := 0
	for i := 0; i < sc.Nd; i++ {
		for j := i + 1; j < sc.Nd; j++ {
			c := complex(0.5*p1[j]*p2[i]/den, 0)
			s := sigma[count].Spin()
			psigp = psigp.Add(s.Scale(c)).Sub(s.Mul(g5).Scale(c))
			count++
		}
	}

	base := GammaBasis()
	norm := complex(1/math.Sqrt(qsq), 0)
	vq := make([]sc.SpinMatrix, len(base[0].Signs))
	for i := range vq {
		if i < sc.Nd {
			vq[i] = qslash.Mul(g5).Scale(norm)
		} else {
			vq[i] = qslash.Scale(norm)
		}
	}
	tq := make([]sc.SpinMatrix, len(base[4].Signs))
	for i := range tq {
		tq[i] = psigp
	}

	vvpaa := DiracStructure{Name: "VVpAAq", Indices: base[0].Indices, Gammas: vq, Signs: base[0].Signs}
	vvmaa := DiracStructure{Name: "VVmAAq", Indices: base[1].Indices, Gammas: vq, Signs: base[1].Signs}
	tt := DiracStructure{Name: "TTq", Indices: base[4].Indices, Gammas: tq, Signs: base[4].Signs}

	return []DiracStructure{vvpaa, vvmaa, vvmaa, tt, tt}, nil
}

// Scheme selects the projector basis.
type Scheme int

const (
	// SchemeGamma projects with the gamma basis itself.
	SchemeGamma Scheme = iota
	// SchemeQSlash projects with the momentum-dependent q-slash basis.
	SchemeQSlash
)

// Suffix returns the dataset-name tag of the scheme: "g" or "q".
func (s Scheme) Suffix() string {
	if s == SchemeQSlash {
		return "q"
	}

	return "g"
}

// String returns the scheme name.
func (s Scheme) String() string {
	if s == SchemeQSlash {
		return "qslash"
	}

	return "gamma"
}

// ParseScheme accepts "g"/"gamma" or "q"/"qslash".
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "g", "gamma":
		return SchemeGamma, nil
	case "q", "qslash":
		return SchemeQSlash, nil
	}

	return SchemeGamma, fmt.Errorf("%q: %w", s, ErrUnknownScheme)
}

// Projectors returns the projector basis and colour-mix pattern of scheme.
// p1 and p2 are only used by SchemeQSlash.
func Projectors(scheme Scheme, p1, p2 []float64) ([]DiracStructure, []bool, error) {
	if scheme == SchemeQSlash {
		b, err := QSlashBasis(p1, p2)
		if err != nil {
			return nil, nil, err
		}
		return b, QSlashColourMix(), nil
	}

	return GammaBasis(), GammaColourMix(), nil
}
