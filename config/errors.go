// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingParameter is wrapped by *MissingError.
	ErrMissingParameter = errors.New("config: missing required parameter")

	// ErrInvalidParameter is returned for values that do not decode or do
	// not satisfy their constraints.
	ErrInvalidParameter = errors.New("config: invalid parameter")
)

// MissingError lists every required key absent from a parameter file.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingParameter, strings.Join(e.Keys, ", "))
}

func (e *MissingError) Unwrap() error { return ErrMissingParameter }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
