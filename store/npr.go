// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/katalvlaran/npr/internal/parallel"
	sc "github.com/katalvlaran/npr/spincolour"
	"github.com/katalvlaran/npr/vecops"
)

var (
	matrixShape = []int{sc.Dim, sc.Dim}
	tensorShape = []int{sc.Dim, sc.Dim, sc.Dim, sc.Dim}
)

// ConfigPath returns the per-configuration file name <stem>.<cfg>.db.
func ConfigPath(stem string, cfg int) string {
	return stem + "." + strconv.Itoa(cfg) + ".db"
}

// ResultPath returns <dir>/<name>.db.
func ResultPath(dir, name string) string {
	return filepath.Join(dir, name+".db")
}

// loadConfigs opens every configuration file of stem concurrently and
// decodes it with fn. Results follow the order of cfgs.
func loadConfigs[T any](ctx context.Context, stem string, cfgs []int, workers int, fn func(context.Context, *File) (T, error)) ([]T, error) {
	if len(cfgs) == 0 {
		return nil, storeErrorf(opLoad, fmt.Errorf("%s: no configurations: %w", stem, ErrNotFound))
	}

	return parallel.Map(ctx, cfgs, workers, func(cfg int) (T, error) {
		var zero T
		f, err := OpenExisting(ctx, ConfigPath(stem, cfg))
		if err != nil {
			return zero, err
		}
		defer f.Close()

		return fn(ctx, f)
	})
}

func readMatrices(ctx context.Context, f *File, name string) ([]sc.Matrix, error) {
	shape, data, err := f.ReadComplex(ctx, GroupData, name)
	if err != nil {
		return nil, err
	}
	var n int
	switch {
	case slices.Equal(shape, matrixShape):
		n = 1
	case len(shape) == 3 && shape[1] == sc.Dim && shape[2] == sc.Dim:
		n = shape[0]
	default:
		return nil, storeErrorf(opLoad, fmt.Errorf("%s: shape %v is not [n,]%d,%d: %w", name, shape, sc.Dim, sc.Dim, ErrShape))
	}
	out := make([]sc.Matrix, n)
	for i := range out {
		copy(out[i][:], data[i*sc.Dim*sc.Dim:])
	}

	return out, nil
}

// LoadPropagators reads the propagator dataset name from every
// configuration file of stem.
func LoadPropagators(ctx context.Context, stem, name string, cfgs []int, workers int) ([]sc.Matrix, error) {
	return loadConfigs(ctx, stem, cfgs, workers, func(ctx context.Context, f *File) (sc.Matrix, error) {
		ms, err := readMatrices(ctx, f, name)
		if err != nil {
			return sc.Matrix{}, err
		}
		if len(ms) != 1 {
			return sc.Matrix{}, storeErrorf(opLoad, fmt.Errorf("%s in %s: %d matrices, want 1: %w", name, f.Path(), len(ms), ErrShape))
		}

		return ms[0], nil
	})
}

// LoadBilinears reads the per-gamma vertex matrices (shape [16,12,12],
// indexed by spincolour.Gamma) from every configuration file of stem.
func LoadBilinears(ctx context.Context, stem, name string, cfgs []int, workers int) ([]vecops.Seq[sc.Matrix], error) {
	return loadConfigs(ctx, stem, cfgs, workers, func(ctx context.Context, f *File) (vecops.Seq[sc.Matrix], error) {
		ms, err := readMatrices(ctx, f, name)
		if err != nil {
			return nil, err
		}
		if len(ms) != sc.NumGammas {
			return nil, storeErrorf(opLoad, fmt.Errorf("%s in %s: %d vertices, want %d: %w", name, f.Path(), len(ms), sc.NumGammas, ErrShape))
		}

		return vecops.Seq[sc.Matrix](ms), nil
	})
}

// LoadFourQuark reads the per-gamma four-quark tensors (shape
// [16,12,12,12,12]) from every configuration file of stem.
func LoadFourQuark(ctx context.Context, stem, name string, cfgs []int, workers int) ([]vecops.Seq[sc.Tensor4], error) {
	return loadConfigs(ctx, stem, cfgs, workers, func(ctx context.Context, f *File) (vecops.Seq[sc.Tensor4], error) {
		shape, data, err := f.ReadComplex(ctx, GroupData, name)
		if err != nil {
			return nil, err
		}
		if len(shape) != 5 || shape[0] != sc.NumGammas || !slices.Equal(shape[1:], tensorShape) {
			return nil, storeErrorf(opLoad, fmt.Errorf("%s in %s: shape %v: %w", name, f.Path(), shape, ErrShape))
		}
		out := make(vecops.Seq[sc.Tensor4], sc.NumGammas)
		for g := range out {
			if out[g], err = sc.Tensor4FromSlice(data[g*sc.TensorLen : (g+1)*sc.TensorLen]); err != nil {
				return nil, storeErrorf(opLoad, err)
			}
		}

		return out, nil
	})
}

func withFile(ctx context.Context, path string, fn func(*File) error) (err error) {
	f, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = storeErrorf(opSave, cerr)
		}
	}()

	return fn(f)
}

// SavePropagator writes one propagator to path under GroupData.
func SavePropagator(ctx context.Context, path, name string, m sc.Matrix) error {
	return withFile(ctx, path, func(f *File) error {
		return f.WriteComplex(ctx, GroupData, name, matrixShape, m[:])
	})
}

// SaveBilinears writes the per-gamma vertex matrices to path.
func SaveBilinears(ctx context.Context, path, name string, v vecops.Seq[sc.Matrix]) error {
	data := make([]complex128, 0, len(v)*sc.Dim*sc.Dim)
	for i := range v {
		data = append(data, v[i][:]...)
	}

	return withFile(ctx, path, func(f *File) error {
		return f.WriteComplex(ctx, GroupData, name, []int{len(v), sc.Dim, sc.Dim}, data)
	})
}

// SaveFourQuark writes the per-gamma four-quark tensors to path.
func SaveFourQuark(ctx context.Context, path, name string, v vecops.Seq[sc.Tensor4]) error {
	data := make([]complex128, 0, len(v)*sc.TensorLen)
	for _, t := range v {
		data = append(data, t.Data()...)
	}
	shape := append([]int{len(v)}, tensorShape...)

	return withFile(ctx, path, func(f *File) error {
		return f.WriteComplex(ctx, GroupData, name, shape, data)
	})
}

// SaveResult writes the values of a result distribution to <dir>/<name>.db
// as dataset name of GroupResults.
func SaveResult(ctx context.Context, dir, name string, values []float64) error {
	return WriteResult(ctx, ResultPath(dir, name), name, values)
}

// WriteResult writes result dataset name to the file at path.
func WriteResult(ctx context.Context, path, name string, values []float64) error {
	return withFile(ctx, path, func(f *File) error {
		return f.WriteReal(ctx, GroupResults, name, []int{len(values)}, values)
	})
}

// LoadResult reads back a result written by SaveResult.
func LoadResult(ctx context.Context, dir, name string) ([]float64, error) {
	return ReadResult(ctx, ResultPath(dir, name), name)
}

// ReadResult reads result dataset name from the file at path.
func ReadResult(ctx context.Context, path, name string) ([]float64, error) {
	f, err := OpenExisting(ctx, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	_, data, err := f.ReadReal(ctx, GroupResults, name)

	return data, err
}
