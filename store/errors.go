// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for a missing file or dataset.
	ErrNotFound = errors.New("store: not found")

	// ErrKindMismatch is returned when a real dataset is read as complex or
	// the other way round.
	ErrKindMismatch = errors.New("store: dataset kind mismatch")

	// ErrShape is returned when a payload disagrees with its shape or with
	// the shape a loader expects.
	ErrShape = errors.New("store: bad dataset shape")
)

const (
	opOpen  = "store.Open"
	opWrite = "File.Write"
	opRead  = "File.Read"
	opList  = "File.List"
	opLoad  = "store.Load"
	opSave  = "store.Save"
)

func storeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
