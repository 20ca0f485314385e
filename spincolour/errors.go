// SPDX-License-Identifier: MIT

package spincolour

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a spin-colour matrix cannot be inverted
	// (exactly singular or too ill-conditioned for a stable inverse).
	ErrSingular = errors.New("spincolour: singular matrix")

	// ErrDimensionMismatch is returned when tensors of different sizes are combined.
	ErrDimensionMismatch = errors.New("spincolour: dimension mismatch")

	// ErrUnknownGamma is returned by ParseGamma.
	ErrUnknownGamma = errors.New("spincolour: unknown gamma label")
)

const (
	opInverse   = "Matrix.Inverse"
	opTensorAdd = "Tensor4.Add"
	opTensorSub = "Tensor4.Sub"
)

func scErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
