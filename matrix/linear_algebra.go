// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// with fast paths for *Dense operands.
//
// Notes:
//   - Every kernel validates first, allocates one fresh *Dense result and
//     never mutates its operands.
//   - Fallbacks walk At/Set in a fixed i→j(→k) order so results are
//     deterministic regardless of the concrete type.

package matrix

import (
	"fmt"
	"math"
)

// addSub computes C = A + sign·B. Shared by Add and Sub.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: *Dense fast path over the flat data, else At/Set fallback.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := range res.data {
				res.data[i] = da.data[i] + sign*db.data[i]
			}
			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*res.c+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with zero-skip on A[i,k].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < aRows; i++ {
				rowA, rowR := i*aCols, i*bCols
				for k := 0; k < aCols; k++ {
					av := da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB := k * bCols
					for j := 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			acc := ZeroSum
			for k := 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// LUResult is a factorization P·A = L·U with unit-diagonal L.
// Perm[i] is the row of A that became row i of P·A.
type LUResult struct {
	L, U *Dense
	Perm []int
}

// LU factorizes a square matrix with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare and ValidateFinite; copy A into a working Dense.
//   - Stage 2: for each column k pick the row with the largest |a_ik|, swap,
//     eliminate below; a pivot no larger than PivotTolerance·max|a| is singular.
//   - Stage 3: split the working matrix into L (unit lower) and U (upper).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func LU(m Matrix) (*LUResult, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	w, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	var scale float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opLU, err)
			}
			w.data[i*n+j] = v
			scale = math.Max(scale, math.Abs(v))
		}
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	tol := PivotTolerance * scale

	for k := 0; k < n; k++ {
		p := k
		for i := k + 1; i < n; i++ {
			if math.Abs(w.data[i*n+k]) > math.Abs(w.data[p*n+k]) {
				p = i
			}
		}
		pivot := w.data[p*n+k]
		if pivot == 0 || math.Abs(pivot) <= tol {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		if p != k {
			for j := 0; j < n; j++ {
				w.data[k*n+j], w.data[p*n+j] = w.data[p*n+j], w.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i := k + 1; i < n; i++ {
			f := w.data[i*n+k] / pivot
			w.data[i*n+k] = f
			if f == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				w.data[i*n+j] -= f * w.data[k*n+j]
			}
		}
	}

	l, _ := NewIdentity(n)
	u, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j < i {
				l.data[i*n+j] = w.data[i*n+j]
			} else {
				u.data[i*n+j] = w.data[i*n+j]
			}
		}
	}

	return &LUResult{L: l, U: u, Perm: perm}, nil
}

// Inverse returns A⁻¹ by LU with partial pivoting and n forward/backward
// substitutions against the permuted identity columns.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	inv, _ := NewDense(n, n)
	y := make([]float64, n)
	for col := 0; col < n; col++ {
		// Forward: L·y = P·e_col.
		for i := 0; i < n; i++ {
			acc := ZeroSum
			if f.Perm[i] == col {
				acc = 1
			}
			for k := 0; k < i; k++ {
				acc -= f.L.data[i*n+k] * y[k]
			}
			y[i] = acc
		}
		// Backward: U·x = y.
		for i := n - 1; i >= 0; i-- {
			acc := y[i]
			for k := i + 1; k < n; k++ {
				acc -= f.U.data[i*n+k] * inv.data[k*n+col]
			}
			inv.data[i*n+col] = acc / f.U.data[i*n+i]
		}
	}

	return inv, nil
}
