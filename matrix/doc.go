// SPDX-License-Identifier: MIT

// Package matrix provides small dense real matrices and the linear algebra
// the renormalization pipeline needs on them: the Nop×Nop tree-level
// projection matrix, bare four-quark projections and their inverses (the
// Z-factor matrices).
//
// The package provides:
//
//   - Matrix, a minimal interface over two-dimensional float64 arrays, and
//     Dense, its row-major implementation.
//   - Add, Sub, Mul, LU (partial pivoting) and Inverse,
//     each with a *Dense fast path and an interface fallback.
//   - Validators (ValidateNotNil, ValidateSquare, ...) returning plain
//     sentinels so call sites wrap uniformly.
//   - Element methods on *Dense (Zero, Add, Sub, Scale, Mul, Div, Sqrt) so a
//     *Dense can be carried by distribution.Distribution. Mul and Div on the
//     Element surface are ELEMENT-WISE; the matrix product is Mul/MatMul.
//
// All failures are reported through the sentinels in errors.go and matched
// with errors.Is; nothing panics on user input.
package matrix
