// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"
	"strings"
)

// Kind is the resampling scheme a distribution was produced by.
type Kind int

const (
	// None marks raw, unresampled measurements.
	None Kind = iota
	// Jackknife marks delete-one jackknife resamples plus a central value.
	Jackknife
	// Bootstrap marks bootstrap resamples plus a central value.
	Bootstrap
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Jackknife:
		return "jackknife"
	case Bootstrap:
		return "bootstrap"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Resampled reports whether values of this kind carry a trailing central value.
func (k Kind) Resampled() bool { return k == Jackknife || k == Bootstrap }

// ParseKind maps "none", "jackknife" or "bootstrap" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, nil
	case "jackknife":
		return Jackknife, nil
	case "bootstrap":
		return Bootstrap, nil
	}

	return None, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}
