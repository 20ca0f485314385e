// SPDX-License-Identifier: MIT

package fourquark

import (
	"context"
	"fmt"

	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/matrix"
	sc "github.com/katalvlaran/npr/spincolour"
	"github.com/katalvlaran/npr/vecops"
)

// Vertices holds one rank-4 vertex tensor per gamma label, indexed by
// spincolour.Gamma.
type Vertices = vecops.Seq[sc.Tensor4]

// legs returns M_μ = inv1 · Γ_μ · inv2 for every projector component.
func legs(inv1, inv2 sc.Matrix, proj DiracStructure) []sc.Matrix {
	out := make([]sc.Matrix, len(proj.Gammas))
	for mu, g := range proj.Gammas {
		out[mu] = inv1.MulSpin(g).Times(inv2)
	}

	return out
}

// contract returns (fig8, circle) for one leg matrix against one vertex.
// Spin-colour pairs (s1,c1)..(s4,c4) are the four vertex indices a..d.
func contract(m *sc.Matrix, v sc.Tensor4, colourMix bool) (fig8, circle complex128) {
	for s1 := 0; s1 < sc.Ns; s1++ {
		for c1 := 0; c1 < sc.Nc; c1++ {
			a := sc.Index(s1, c1)
			for s2 := 0; s2 < sc.Ns; s2++ {
				for c2 := 0; c2 < sc.Nc; c2++ {
					b := sc.Index(s2, c2)
					for s3 := 0; s3 < sc.Ns; s3++ {
						for c3 := 0; c3 < sc.Nc; c3++ {
							c := sc.Index(s3, c3)
							for s4 := 0; s4 < sc.Ns; s4++ {
								for c4 := 0; c4 < sc.Nc; c4++ {
									x := v.At(a, b, c, sc.Index(s4, c4))
									if x == 0 {
										continue
									}
									if colourMix {
										fig8 += m.At(s2, c4, s1, c1) * x * m.At(s4, c2, s3, c3)
										circle += m.At(s4, c2, s1, c1) * x * m.At(s2, c4, s3, c3)
									} else {
										fig8 += m.At(s2, c2, s1, c1) * x * m.At(s4, c4, s3, c3)
										circle += m.At(s4, c4, s1, c1) * x * m.At(s2, c2, s3, c3)
									}
								}
							}
						}
					}
				}
			}
		}
	}

	return fig8, circle
}

// projectInverted is ProjectFourQuark with the propagators already inverted.
func projectInverted(inv1, inv2 sc.Matrix, vertices Vertices, vs, proj DiracStructure, colourMix bool) (float64, error) {
	if err := vs.validate(true); err != nil {
		return 0, fqErrorf(opProject, err)
	}
	if err := proj.validate(false); err != nil {
		return 0, fqErrorf(opProject, err)
	}
	ms := legs(inv1, inv2, proj)
	var tr complex128
	for nu, idx := range vs.Indices {
		if !idx.Valid() || int(idx) >= len(vertices) {
			return 0, fqErrorf(opProject, fmt.Errorf("%s of %d tensors: %w", idx, len(vertices), ErrMissingVertex))
		}
		v := vertices[idx]
		for mu := range ms {
			fig8, circle := contract(&ms[mu], v, colourMix)
			tr += complex(vs.Signs[nu]*proj.Signs[mu]*2, 0) * (fig8 - circle)
		}
	}

	return real(tr), nil
}

// ProjectFourQuark projects one sample of four-quark vertices with vertex
// structure vs onto projector proj. The leg matrices are
// prop1⁻¹ · Γ_μ · prop2⁻¹ (prop1 is the incoming, prop2 the outgoing
// propagator in the drivers).
//
// Errors: spincolour.ErrSingular, ErrMalformedStructure, ErrMissingVertex.
func ProjectFourQuark(prop1, prop2 sc.Matrix, vertices Vertices, vs, proj DiracStructure, colourMix bool) (float64, error) {
	inv1, err := prop1.Inverse()
	if err != nil {
		return 0, fqErrorf(opProject, err)
	}
	inv2, err := prop2.Inverse()
	if err != nil {
		return 0, fqErrorf(opProject, err)
	}

	return projectInverted(inv1, inv2, vertices, vs, proj, colourMix)
}

// ProjectFourQuarkMatrix returns the len(vertexBasis)×len(projBasis) matrix
// of projections; column j uses colourMix[j].
func ProjectFourQuarkMatrix(
	prop1, prop2 sc.Matrix, vertices Vertices,
	vertexBasis, projBasis []DiracStructure, colourMix []bool,
) (*matrix.Dense, error) {
	if len(projBasis) != len(colourMix) {
		return nil, fqErrorf(opProject, fmt.Errorf("%d projectors, %d flags: %w", len(projBasis), len(colourMix), ErrBasisMismatch))
	}
	inv1, err := prop1.Inverse()
	if err != nil {
		return nil, fqErrorf(opProject, err)
	}
	inv2, err := prop2.Inverse()
	if err != nil {
		return nil, fqErrorf(opProject, err)
	}
	out, err := matrix.NewDense(len(vertexBasis), len(projBasis))
	if err != nil {
		return nil, fqErrorf(opProject, err)
	}
	for i, vs := range vertexBasis {
		for j, proj := range projBasis {
			p, err := projectInverted(inv1, inv2, vertices, vs, proj, colourMix[j])
			if err != nil {
				return nil, err
			}
			if err = out.Set(i, j, p); err != nil {
				return nil, fqErrorf(opProject, err)
			}
		}
	}

	return out, nil
}

// ProjectFourQuarkDistribution applies ProjectFourQuarkMatrix sample by
// sample, concurrently, keeping the resampling kind of the inputs.
func ProjectFourQuarkDistribution(
	ctx context.Context,
	prop1, prop2 *distribution.Distribution[sc.Matrix],
	vertices *distribution.Distribution[Vertices],
	vertexBasis, projBasis []DiracStructure, colourMix []bool,
	opts ...Option,
) (*distribution.Distribution[*matrix.Dense], error) {
	o := gatherOptions(opts)

	return distribution.Zip3Samples(ctx, prop1, prop2, vertices, o.workers,
		func(p1, p2 sc.Matrix, v Vertices) (*matrix.Dense, error) {
			return ProjectFourQuarkMatrix(p1, p2, v, vertexBasis, projBasis, colourMix)
		})
}

// ProjectTree evaluates the projection at tree level: unit propagators and
// vertex Γ_ν⊗1 in each bilinear. With L = Γ_μ⊗1, V = Γ_ν⊗1:
//
//	unmixed: fig8 = Tr(LV)²,              circle = Tr(LVLV)
//	mixed:   fig8 = Tr_c[(Tr_s LV)²],     circle = Tr_s[(Tr_c LV)²]
func ProjectTree(vs, proj DiracStructure, colourMix bool) (float64, error) {
	if err := vs.validate(false); err != nil {
		return 0, fqErrorf(opTree, err)
	}
	if err := proj.validate(false); err != nil {
		return 0, fqErrorf(opTree, err)
	}
	var tr complex128
	for nu, gv := range vs.Gammas {
		v := sc.FromSpin(gv)
		for mu, gl := range proj.Gammas {
			lv := sc.FromSpin(gl).Times(v)
			var fig8, circle complex128
			if colourMix {
				ts := lv.TraceSpin()
				tc := lv.TraceColour()
				fig8 = ts.Mul(ts).Trace()
				circle = tc.Mul(tc).Trace()
			} else {
				t := lv.Trace()
				fig8 = t * t
				circle = lv.Times(lv).Trace()
			}
			tr += complex(vs.Signs[nu]*proj.Signs[mu]*2, 0) * (fig8 - circle)
		}
	}

	return real(tr), nil
}

// TreeMatrix returns tree(i, j) = ProjectTree(vertexBasis[i], projBasis[j], colourMix[j]).
func TreeMatrix(vertexBasis, projBasis []DiracStructure, colourMix []bool) (*matrix.Dense, error) {
	if len(projBasis) != len(colourMix) {
		return nil, fqErrorf(opTree, fmt.Errorf("%d projectors, %d flags: %w", len(projBasis), len(colourMix), ErrBasisMismatch))
	}
	out, err := matrix.NewDense(len(vertexBasis), len(projBasis))
	if err != nil {
		return nil, fqErrorf(opTree, err)
	}
	for i, vs := range vertexBasis {
		for j, proj := range projBasis {
			p, err := ProjectTree(vs, proj, colourMix[j])
			if err != nil {
				return nil, err
			}
			if err = out.Set(i, j, p); err != nil {
				return nil, fqErrorf(opTree, err)
			}
		}
	}

	return out, nil
}
