// SPDX-License-Identifier: MIT

package vecops

import "fmt"

const (
	opZipWith   = "ZipWith"
	opTranspose = "Transpose"
)

// ZipWith applies fn to corresponding elements of a and b.
// The inputs must have equal length; the first error returned by fn aborts
// the walk and is returned unchanged.
func ZipWith[A, B, C any](a []A, b []B, fn func(A, B) (C, error)) ([]C, error) {
	if len(a) != len(b) {
		return nil, mismatchf(opZipWith, len(a), len(b))
	}
	out := make([]C, len(a))
	var err error
	for i := range a {
		if out[i], err = fn(a[i], b[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MapScalar applies fn(a[i], s) to every element of a.
func MapScalar[A, S, C any](a []A, s S, fn func(A, S) C) []C {
	out := make([]C, len(a))
	for i := range a {
		out[i] = fn(a[i], s)
	}

	return out
}

// Transpose swaps the two outer levels of a nested slice.
// An empty input yields an empty output; rows of unequal length are ErrRagged.
func Transpose[T any](rows [][]T) ([][]T, error) {
	if len(rows) == 0 {
		return [][]T{}, nil
	}
	width := len(rows[0])
	for _, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%s: row len %d vs %d: %w", opTranspose, len(r), width, ErrRagged)
		}
	}
	out := make([][]T, width)
	for j := 0; j < width; j++ {
		out[j] = make([]T, len(rows))
		for i := range rows {
			out[j][i] = rows[i][j]
		}
	}

	return out, nil
}

// RealParts returns the real part of every entry of z.
func RealParts(z []complex128) []float64 {
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = real(v)
	}

	return out
}
