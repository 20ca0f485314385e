// SPDX-License-Identifier: MIT

package vecops

// Element is the additive capability required of distribution values.
//
// Zero must return the additive identity with the SAME shape as the receiver
// (a zero matrix of the receiver's dimensions, a sequence of zeros of the
// receiver's length). Add and Sub fail with ErrDimensionMismatch when the
// shapes differ. Scale never fails.
type Element[T any] interface {
	Zero() T
	Add(T) (T, error)
	Sub(T) (T, error)
	Scale(float64) T
}

// Multiplier is an Element with a product.
type Multiplier[T any] interface {
	Element[T]
	Mul(T) (T, error)
}

// Divider is a Multiplier with a quotient.
type Divider[T any] interface {
	Multiplier[T]
	Div(T) (T, error)
}

// Measurable values support an element-wise square (via Mul) and square root,
// which is what a standard deviation needs.
type Measurable[T any] interface {
	Multiplier[T]
	Sqrt() T
}

// Sum adds the elements of xs in order.
// Returns ErrEmpty for an empty slice, since there is no value to take a
// shape from.
func Sum[T Element[T]](xs []T) (T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, ErrEmpty
	}
	acc := xs[0].Zero()
	var err error
	for i := range xs {
		if acc, err = acc.Add(xs[i]); err != nil {
			return zero, err
		}
	}

	return acc, nil
}

// Mean returns Sum(xs)/len(xs).
func Mean[T Element[T]](xs []T) (T, error) {
	s, err := Sum(xs)
	if err != nil {
		return s, err
	}

	return s.Scale(1 / float64(len(xs))), nil
}
