// SPDX-License-Identifier: MIT

package distribution

import (
	"context"
	"fmt"

	"github.com/katalvlaran/npr/internal/parallel"
	"github.com/katalvlaran/npr/vecops"
)

// fromValues rebuilds a distribution with the given kind around freshly
// computed values.
func fromValues[T vecops.Element[T]](values []T, kind Kind) (*Distribution[T], error) {
	return NewResampled(values, kind)
}

// compatible checks that a and b can be combined sample-wise.
func compatible(tag string, la, lb int, ka, kb Kind) error {
	if la != lb {
		return distErrorf(tag, fmt.Errorf("len %d vs %d: %w", la, lb, ErrDimensionMismatch))
	}
	if ka != kb {
		return distErrorf(tag, fmt.Errorf("%s vs %s: %w", ka, kb, ErrKindMismatch))
	}

	return nil
}

// ZipWith combines a and b value-by-value (central values included) with fn.
// The result has the operands' kind.
func ZipWith[A vecops.Element[A], B vecops.Element[B], C vecops.Element[C]](
	a *Distribution[A], b *Distribution[B], fn func(A, B) (C, error),
) (*Distribution[C], error) {
	if err := compatible(opZip, a.Len(), b.Len(), a.kind, b.kind); err != nil {
		return nil, err
	}
	out, err := vecops.ZipWith(a.values, b.values, fn)
	if err != nil {
		return nil, distErrorf(opZip, err)
	}

	return fromValues(out, a.kind)
}

// Map applies fn to every value of d (central value included).
func Map[A vecops.Element[A], C vecops.Element[C]](d *Distribution[A], fn func(A) (C, error)) (*Distribution[C], error) {
	out := make([]C, len(d.values))
	var err error
	for i := range d.values {
		if out[i], err = fn(d.values[i]); err != nil {
			return nil, distErrorf(opMap, err)
		}
	}

	return fromValues(out, d.kind)
}

// MapSamples is Map with the values processed concurrently on at most
// workers goroutines (workers <= 0 means GOMAXPROCS). Results keep their
// positions, so the output is identical to the sequential Map.
func MapSamples[A vecops.Element[A], C vecops.Element[C]](
	ctx context.Context, d *Distribution[A], workers int, fn func(A) (C, error),
) (*Distribution[C], error) {
	out, err := parallel.Map(ctx, d.values, workers, fn)
	if err != nil {
		return nil, distErrorf(opMap, err)
	}

	return fromValues(out, d.kind)
}

// ZipSamples is ZipWith with the values processed concurrently.
func ZipSamples[A vecops.Element[A], B vecops.Element[B], C vecops.Element[C]](
	ctx context.Context, a *Distribution[A], b *Distribution[B], workers int, fn func(A, B) (C, error),
) (*Distribution[C], error) {
	if err := compatible(opZip, a.Len(), b.Len(), a.kind, b.kind); err != nil {
		return nil, err
	}
	out := make([]C, a.Len())
	err := parallel.ForEach(ctx, a.Len(), workers, func(_ context.Context, i int) error {
		v, err := fn(a.values[i], b.values[i])
		if err != nil {
			return err
		}
		out[i] = v
		return nil
	})
	if err != nil {
		return nil, distErrorf(opZip, err)
	}

	return fromValues(out, a.kind)
}

// Add returns a+b sample-wise.
func Add[T vecops.Element[T]](a, b *Distribution[T]) (*Distribution[T], error) {
	return ZipWith(a, b, func(x, y T) (T, error) { return x.Add(y) })
}

// Sub returns a-b sample-wise.
func Sub[T vecops.Element[T]](a, b *Distribution[T]) (*Distribution[T], error) {
	return ZipWith(a, b, func(x, y T) (T, error) { return x.Sub(y) })
}

// Mul returns a·b sample-wise.
func Mul[T vecops.Multiplier[T]](a, b *Distribution[T]) (*Distribution[T], error) {
	return ZipWith(a, b, func(x, y T) (T, error) { return x.Mul(y) })
}

// Div returns a/b sample-wise.
func Div[T vecops.Divider[T]](a, b *Distribution[T]) (*Distribution[T], error) {
	return ZipWith(a, b, func(x, y T) (T, error) { return x.Div(y) })
}

// Scale multiplies every value by s.
func Scale[T vecops.Element[T]](d *Distribution[T], s float64) *Distribution[T] {
	out := make([]T, len(d.values))
	for i := range d.values {
		out[i] = d.values[i].Scale(s)
	}

	return &Distribution[T]{values: out, kind: d.kind, mean: d.mean.Scale(s)}
}

// AddValue adds the constant v to every value.
func AddValue[T vecops.Element[T]](d *Distribution[T], v T) (*Distribution[T], error) {
	return Map(d, func(x T) (T, error) { return x.Add(v) })
}

// SubValue subtracts the constant v from every value.
func SubValue[T vecops.Element[T]](d *Distribution[T], v T) (*Distribution[T], error) {
	return Map(d, func(x T) (T, error) { return x.Sub(v) })
}

// MulValue multiplies every value by the constant v.
func MulValue[T vecops.Multiplier[T]](d *Distribution[T], v T) (*Distribution[T], error) {
	return Map(d, func(x T) (T, error) { return x.Mul(v) })
}

// DivValue divides every value by the constant v.
func DivValue[T vecops.Divider[T]](d *Distribution[T], v T) (*Distribution[T], error) {
	return Map(d, func(x T) (T, error) { return x.Div(v) })
}

// Zip3Samples combines three distributions value-by-value, concurrently.
// All three must share length and kind.
func Zip3Samples[A vecops.Element[A], B vecops.Element[B], C vecops.Element[C], R vecops.Element[R]](
	ctx context.Context, a *Distribution[A], b *Distribution[B], c *Distribution[C], workers int,
	fn func(A, B, C) (R, error),
) (*Distribution[R], error) {
	if err := compatible(opZip, a.Len(), b.Len(), a.kind, b.kind); err != nil {
		return nil, err
	}
	if err := compatible(opZip, a.Len(), c.Len(), a.kind, c.kind); err != nil {
		return nil, err
	}
	out := make([]R, a.Len())
	err := parallel.ForEach(ctx, a.Len(), workers, func(_ context.Context, i int) error {
		v, err := fn(a.values[i], b.values[i], c.values[i])
		if err != nil {
			return err
		}
		out[i] = v
		return nil
	})
	if err != nil {
		return nil, distErrorf(opZip, err)
	}

	return fromValues(out, a.kind)
}
