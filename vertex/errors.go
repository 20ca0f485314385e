// SPDX-License-Identifier: MIT

package vertex

import "errors"

var (
	// ErrNoGammas is returned when a projection is asked for an empty label set.
	ErrNoGammas = errors.New("vertex: empty gamma set")

	// ErrMissingVertex is returned when a label has no vertex in the sample.
	ErrMissingVertex = errors.New("vertex: no vertex for gamma label")

	// ErrZeroMomentum is returned by the q-slash projection when q² = 0.
	ErrZeroMomentum = errors.New("vertex: zero momentum")

	// ErrMomentumLength is returned when q and the label set differ in length.
	ErrMomentumLength = errors.New("vertex: momentum and gamma set lengths differ")
)

const (
	opAmputate      = "vertex.Amputate"
	opInvert        = "vertex.Invert"
	opProjectGamma  = "vertex.ProjectGamma"
	opProjectQSlash = "vertex.ProjectQSlash"
)
