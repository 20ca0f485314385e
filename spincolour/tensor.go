// SPDX-License-Identifier: MIT

package spincolour

import "fmt"

// TensorLen is the number of entries of a Tensor4.
const TensorLen = Dim * Dim * Dim * Dim

// Tensor4 is a rank-4 spin-colour tensor, the amputation-free four-quark
// vertex: a spin-colour matrix of spin-colour matrices. Entry (a, b, c, d)
// couples the first bilinear's row a and column b with the second
// bilinear's row c and column d, all flat spin-colour indices.
//
// Only values from NewTensor4, Tensor4FromSlice, Outer or arithmetic on them
// hold entries; arithmetic on the zero value Tensor4{} is ErrDimensionMismatch.
type Tensor4 struct {
	data []complex128
}

// NewTensor4 returns a zero tensor.
func NewTensor4() Tensor4 { return Tensor4{data: make([]complex128, TensorLen)} }

// Tensor4FromSlice wraps data, which must have TensorLen entries.
func Tensor4FromSlice(data []complex128) (Tensor4, error) {
	if len(data) != TensorLen {
		return Tensor4{}, fmt.Errorf("tensor of %d entries, want %d: %w", len(data), TensorLen, ErrDimensionMismatch)
	}
	cp := make([]complex128, TensorLen)
	copy(cp, data)

	return Tensor4{data: cp}, nil
}

// Outer returns the tensor product a ⊗ b: T(i,j,k,l) = a(i,j)·b(k,l).
func Outer(a, b Matrix) Tensor4 {
	t := NewTensor4()
	for ij, x := range a {
		if x == 0 {
			continue
		}
		base := ij * Dim * Dim
		for kl, y := range b {
			t.data[base+kl] = x * y
		}
	}

	return t
}

func tensorIndex(a, b, c, d int) int { return ((a*Dim+b)*Dim+c)*Dim + d }

// At returns entry (a, b, c, d).
func (t Tensor4) At(a, b, c, d int) complex128 { return t.data[tensorIndex(a, b, c, d)] }

// Set assigns entry (a, b, c, d).
func (t Tensor4) Set(a, b, c, d int, v complex128) { t.data[tensorIndex(a, b, c, d)] = v }

// Data returns the backing entries (not a copy).
func (t Tensor4) Data() []complex128 { return t.data }

// Zero returns a zero tensor.
func (t Tensor4) Zero() Tensor4 { return NewTensor4() }

// Add returns t+o.
func (t Tensor4) Add(o Tensor4) (Tensor4, error) {
	if len(t.data) != TensorLen || len(o.data) != TensorLen {
		return Tensor4{}, scErrorf(opTensorAdd, fmt.Errorf("%d and %d entries, want %d: %w", len(t.data), len(o.data), TensorLen, ErrDimensionMismatch))
	}
	out := NewTensor4()
	for i := range out.data {
		out.data[i] = t.data[i] + o.data[i]
	}

	return out, nil
}

// Sub returns t-o.
func (t Tensor4) Sub(o Tensor4) (Tensor4, error) {
	if len(t.data) != TensorLen || len(o.data) != TensorLen {
		return Tensor4{}, scErrorf(opTensorSub, fmt.Errorf("%d and %d entries, want %d: %w", len(t.data), len(o.data), TensorLen, ErrDimensionMismatch))
	}
	out := NewTensor4()
	for i := range out.data {
		out.data[i] = t.data[i] - o.data[i]
	}

	return out, nil
}

// Scale returns f·t.
func (t Tensor4) Scale(f float64) Tensor4 {
	out := NewTensor4()
	for i := range t.data {
		out.data[i] = t.data[i] * complex(f, 0)
	}

	return out
}
