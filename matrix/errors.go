// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Sentinels are returned wrapped with an operation tag; callers match them
// with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a pivot vanishes (see PivotTolerance)
	// during LU factorization or inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrRagged is returned by NewFromRows when rows have different lengths.
	ErrRagged = errors.New("matrix: ragged rows")
)

// Operation name constants for unified error wrapping.
const (
	opNewFromRows = "NewFromRows"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opHadamard    = "Hadamard"
	opDivElem     = "DivElem"
	opLU          = "LU"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, keeping a stable
// "Op: underlying" shape. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
