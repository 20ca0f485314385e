// SPDX-License-Identifier: MIT

// Package fourquark projects amputation-free four-quark vertex functions onto
// the five-operator basis (VV+AA, VV-AA, SS-PP, SS+PP, TT) and assembles the
// renormalization matrix Z_ij/Z_q² from them.
//
// For one sample, with propagators S1, S2 and projector component Γ_μ:
//
//	M_μ = S1⁻¹ · Γ_μ · S2⁻¹
//
//	unmixed: fig8   = Σ M(b,a) V(a,b,c,d) M(d,c)
//	         circle = Σ M(d,a) V(a,b,c,d) M(b,c)
//	mixed:   colour indices of the two M factors exchanged
//
//	P(vs, proj) = Re Σ_ν Σ_μ s_ν s_μ · 2 · (fig8 - circle)
//
// where V is the vertex tensor selected by vs.Indices[ν]. ProjectTree
// evaluates the same contraction for unit propagators and factorised
// tree-level vertices Γ_ν⊗Γ_ν, using partial traces; the resulting Nop×Nop
// matrix normalises the projected amplitudes.
package fourquark
