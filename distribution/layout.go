// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"

	"github.com/katalvlaran/npr/vecops"
)

// Split turns a distribution of sequences into one distribution per
// sequence position. Every value must have the same length.
func Split[E vecops.Element[E]](d *Distribution[vecops.Seq[E]]) ([]*Distribution[E], error) {
	width := len(d.values[0])
	cols := make([][]E, width)
	for j := range cols {
		cols[j] = make([]E, len(d.values))
	}
	for i, v := range d.values {
		if len(v) != width {
			return nil, distErrorf(opJoin, fmt.Errorf("value %d has len %d, want %d: %w", i, len(v), width, ErrDimensionMismatch))
		}
		for j := range v {
			cols[j][i] = v[j]
		}
	}
	out := make([]*Distribution[E], width)
	var err error
	for j := range cols {
		if out[j], err = fromValues(cols[j], d.kind); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Join is the inverse of Split: position j of sample i is ds[j].Value(i).
// All inputs must share length and kind.
func Join[E vecops.Element[E]](ds []*Distribution[E]) (*Distribution[vecops.Seq[E]], error) {
	if len(ds) == 0 {
		return nil, distErrorf(opJoin, ErrEmpty)
	}
	n, kind := ds[0].Len(), ds[0].kind
	for _, d := range ds[1:] {
		if err := compatible(opJoin, n, d.Len(), kind, d.kind); err != nil {
			return nil, err
		}
	}
	values := make([]vecops.Seq[E], n)
	for i := range values {
		values[i] = make(vecops.Seq[E], len(ds))
		for j, d := range ds {
			values[i][j] = d.values[i]
		}
	}

	return fromValues(values, kind)
}

// JoinReal packs scalar distributions into one distribution of vectors, the
// layout a fitter consumes (one vector entry per data point).
func JoinReal(ds []*Distribution[vecops.Real]) (*Distribution[vecops.Vector], error) {
	if len(ds) == 0 {
		return nil, distErrorf(opJoin, ErrEmpty)
	}
	n, kind := ds[0].Len(), ds[0].kind
	for _, d := range ds[1:] {
		if err := compatible(opJoin, n, d.Len(), kind, d.kind); err != nil {
			return nil, err
		}
	}
	values := make([]vecops.Vector, n)
	for i := range values {
		values[i] = make(vecops.Vector, len(ds))
		for j, d := range ds {
			values[i][j] = float64(d.values[i])
		}
	}

	return fromValues(values, kind)
}

// Component extracts entry j of every vector as a scalar distribution.
func Component(d *Distribution[vecops.Vector], j int) (*Distribution[vecops.Real], error) {
	return Map(d, func(v vecops.Vector) (vecops.Real, error) {
		if j < 0 || j >= len(v) {
			return 0, fmt.Errorf("component %d of len %d: %w", j, len(v), ErrDimensionMismatch)
		}
		return vecops.Real(v[j]), nil
	})
}
