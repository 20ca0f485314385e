// SPDX-License-Identifier: MIT

// Package npr is the analysis engine for non-perturbative renormalization
// of lattice QCD quark bilinears and ΔS=2 four-quark operators in the
// RI/SMOM schemes.
//
// Per-configuration propagators and vertex functions go in. Renormalization
// constants with statistical errors come out: the projected vertices Λ, the
// Z-factors and their chiral extrapolations.
//
// The work is organized in subpackages:
//
//	vecops/        element arithmetic shared by every sampled quantity
//	distribution/  jackknife and bootstrap ensembles with error estimates
//	spincolour/    12×12 spin-colour matrices, rank-4 tensors, gamma basis
//	matrix/        small dense real matrices: tree matrix, LU, inverse
//	vertex/        amputation and gamma / q-slash projection of bilinears
//	fourquark/     five-operator projection, normalization and Z-matrices
//	fitter/        per-sample Levenberg–Marquardt fits and extrapolation
//	store/         SQLite-backed dataset files for inputs and results
//	config/        YAML parameter files with validation and templates
//	cmd/npr/       the command-line drivers
//
// Data flow of one momentum point:
//
//	configs ──► distribution ──► vertex.Amputate ──► vertex.ProjectAll ──► Λ_S … Λ_Aq
//	                                   │
//	                                   └────────► fourquark.Renormalise ──► Z_ij / Z_V², Z_ij / Z_A²
//
// and across momenta fitter extrapolates any of these to a chosen scale.
//
//	go install github.com/katalvlaran/npr/cmd/npr@latest
package npr
