// SPDX-License-Identifier: MIT

package store

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

func encodeFloats(xs []float64) []byte {
	buf := make([]byte, 8*len(xs))
	for i, x := range xs {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(x))
	}

	return buf
}

func decodeFloats(buf []byte) ([]float64, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("payload of %d bytes: %w", len(buf), ErrShape)
	}
	xs := make([]float64, len(buf)/8)
	for i := range xs {
		xs[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}

	return xs, nil
}

func encodeComplex(zs []complex128) []byte {
	flat := make([]float64, 2*len(zs))
	for i, z := range zs {
		flat[2*i], flat[2*i+1] = real(z), imag(z)
	}

	return encodeFloats(flat)
}

func decodeComplex(buf []byte) ([]complex128, error) {
	flat, err := decodeFloats(buf)
	if err != nil {
		return nil, err
	}
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("odd number of complex components: %w", ErrShape)
	}
	zs := make([]complex128, len(flat)/2)
	for i := range zs {
		zs[i] = complex(flat[2*i], flat[2*i+1])
	}

	return zs, nil
}

func encodeShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, s := range shape {
		parts[i] = strconv.Itoa(s)
	}

	return strings.Join(parts, ",")
}

func decodeShape(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	shape := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("shape %q: %w", s, ErrShape)
		}
		shape[i] = n
	}

	return shape, nil
}

// volume is the number of entries a shape describes; a nil shape is a scalar.
func volume(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}

	return n
}
