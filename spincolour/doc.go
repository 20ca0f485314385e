// SPDX-License-Identifier: MIT

// Package spincolour provides the small dense complex tensors of lattice QCD
// bookkeeping: 4×4 spin matrices, 3×3 colour matrices, their 12×12 tensor
// product (the spin-colour matrix, e.g. a momentum-space propagator), the
// sixteen Dirac gamma matrices and the rank-4 spin-colour tensor that holds
// a four-quark vertex.
//
// Index convention: the flat spin-colour index of spin s and colour c is
// s·Nc + c, so Matrix is stored row-major over 12×12 entries and
// Matrix.At(s1, c1, s2, c2) reads row (s1,c1), column (s2,c2).
//
// Gamma convention: Euclidean, chiral basis, with γ5 = γX·γY·γZ·γT =
// diag(1, 1, -1, -1). Composite labels are products in the written order:
// GammaXGamma5 = γX·γ5 and SigmaXY = γX·γY. Both square to -1, so a
// tree-level axial or tensor projection is -1 and drivers negate it.
//
// Matrix and Tensor4 implement vecops.Element and may be carried by
// distribution.Distribution.
package spincolour
