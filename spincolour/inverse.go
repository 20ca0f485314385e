// SPDX-License-Identifier: MIT

package spincolour

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Inverse returns m⁻¹.
//
// Implementation:
//   - Stage 1: embed M = A + iB as the real 24×24 block matrix [[A, -B], [B, A]].
//   - Stage 2: invert with gonum (LU with partial pivoting).
//   - Stage 3: read X + iY back from the [[X, -Y], [Y, X]] blocks.
//
// Errors: ErrSingular when gonum reports the matrix singular or its
// condition number above mat.ConditionTolerance.
//
// Complexity: O((2·12)³).
func (m Matrix) Inverse() (Matrix, error) {
	const n = 2 * Dim
	emb := mat.NewDense(n, n, nil)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			z := m[i*Dim+j]
			emb.Set(i, j, real(z))
			emb.Set(i, j+Dim, -imag(z))
			emb.Set(i+Dim, j, imag(z))
			emb.Set(i+Dim, j+Dim, real(z))
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(emb); err != nil {
		return Matrix{}, scErrorf(opInverse, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	var out Matrix
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			out[i*Dim+j] = complex(inv.At(i, j), inv.At(i+Dim, j))
		}
	}

	return out, nil
}
