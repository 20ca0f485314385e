// SPDX-License-Identifier: MIT

package fourquark

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedStructure is returned when a DiracStructure has mismatched
	// component counts.
	ErrMalformedStructure = errors.New("fourquark: malformed dirac structure")

	// ErrMissingVertex is returned when a structure index has no vertex tensor.
	ErrMissingVertex = errors.New("fourquark: no vertex for gamma label")

	// ErrDegenerateMomenta is returned by QSlashBasis for q² = 0 or parallel
	// external momenta.
	ErrDegenerateMomenta = errors.New("fourquark: degenerate momenta")

	// ErrBasisMismatch is returned when the projector basis and colour-mix
	// pattern differ in length.
	ErrBasisMismatch = errors.New("fourquark: basis and colour-mix lengths differ")

	// ErrUnknownScheme is returned by ParseScheme.
	ErrUnknownScheme = errors.New("fourquark: unknown scheme")
)

const (
	opProject    = "fourquark.ProjectFourQuark"
	opTree       = "fourquark.ProjectTree"
	opQSlash     = "fourquark.QSlashBasis"
	opRenormalis = "fourquark.Renormalise"
)

func fqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
