// SPDX-License-Identifier: MIT

package vecops

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector is a real vector with element-wise arithmetic.
// The kernels come from gonum/floats; lengths are checked first because the
// gonum kernels panic on mismatch.
type Vector []float64

const (
	opVecAdd = "Vector.Add"
	opVecSub = "Vector.Sub"
	opVecMul = "Vector.Mul"
	opVecDiv = "Vector.Div"
)

// Zero returns a zero vector of the receiver's length.
func (v Vector) Zero() Vector { return make(Vector, len(v)) }

// Add returns v+o element-wise.
func (v Vector) Add(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, mismatchf(opVecAdd, len(v), len(o))
	}
	out := make(Vector, len(v))
	floats.AddTo(out, v, o)

	return out, nil
}

// Sub returns v-o element-wise.
func (v Vector) Sub(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, mismatchf(opVecSub, len(v), len(o))
	}
	out := make(Vector, len(v))
	floats.SubTo(out, v, o)

	return out, nil
}

// Mul returns the element-wise (Hadamard) product.
func (v Vector) Mul(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, mismatchf(opVecMul, len(v), len(o))
	}
	out := make(Vector, len(v))
	floats.MulTo(out, v, o)

	return out, nil
}

// Div returns the element-wise quotient.
func (v Vector) Div(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, mismatchf(opVecDiv, len(v), len(o))
	}
	out := make(Vector, len(v))
	floats.DivTo(out, v, o)

	return out, nil
}

// Scale returns s*v.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	floats.ScaleTo(out, s, v)

	return out
}

// Sqrt returns the element-wise square root.
func (v Vector) Sqrt() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = math.Sqrt(x)
	}

	return out
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}
