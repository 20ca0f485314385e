// SPDX-License-Identifier: MIT

package vecops

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when two operands of an element-wise
	// operation have different shapes or lengths.
	ErrDimensionMismatch = errors.New("vecops: dimension mismatch")

	// ErrEmpty is returned by reductions over an empty input.
	ErrEmpty = errors.New("vecops: empty input")

	// ErrRagged is returned by Transpose when the rows differ in length.
	ErrRagged = errors.New("vecops: ragged rows")
)

// mismatchf annotates ErrDimensionMismatch with the offending lengths.
func mismatchf(op string, a, b int) error {
	return fmt.Errorf("%s: len %d vs %d: %w", op, a, b, ErrDimensionMismatch)
}
