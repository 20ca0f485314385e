// SPDX-License-Identifier: MIT

// Package vertex amputates bilinear vertex functions and projects them onto
// the scalar renormalization factors Λ of the RI/SMOM gamma and q-slash
// schemes.
//
// Per sample, with S_out and S_in the outgoing and incoming momentum-space
// propagators and V_g the measured vertex for gamma label g:
//
//	Λ_g = S_out⁻¹ · V_g · S_in⁻¹
//
//	gamma scheme:   P_γ(Λ; G)   = Re Σ_{g∈G} Tr[Λ_g Γ_g] / (12·|G|)
//	q-slash scheme: P_q(Λ; q, G) = Re Σ_μ Σ_ν Tr[q_μ Λ_{G_μ} Γ_{G_ν} q_ν] / (12·q²)
//
// The distribution-level functions run the per-sample work concurrently and
// keep the resampling kind of their inputs.
package vertex
