// SPDX-License-Identifier: MIT
package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sc "github.com/katalvlaran/npr/spincolour"
	"github.com/katalvlaran/npr/store"
	"github.com/katalvlaran/npr/vecops"
)

func TestFile_RealAndComplexRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "round.db")

	f, err := store.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, f.WriteReal(ctx, "g", "r", []int{2, 2}, []float64{1, -2, 3.5, 0}))
	require.NoError(t, f.WriteComplex(ctx, "g", "c", []int{3}, []complex128{1 + 2i, -3i, 4}))
	require.NoError(t, f.WriteReal(ctx, "h", "r", nil, []float64{42}))
	require.NoError(t, f.Close())

	f, err = store.OpenExisting(ctx, path)
	require.NoError(t, err)
	defer f.Close()

	shape, data, err := f.ReadReal(ctx, "g", "r")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, shape)
	assert.Equal(t, []float64{1, -2, 3.5, 0}, data)

	shape, zs, err := f.ReadComplex(ctx, "g", "c")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, shape)
	assert.Equal(t, []complex128{1 + 2i, -3i, 4}, zs)

	_, scalar, err := f.ReadReal(ctx, "h", "r")
	require.NoError(t, err)
	assert.Equal(t, []float64{42}, scalar)

	list, err := f.List(ctx, "g")
	require.NoError(t, err)
	want := []store.Dataset{
		{Group: "g", Name: "c", Kind: store.KindComplex, Shape: []int{3}},
		{Group: "g", Name: "r", Kind: store.KindReal, Shape: []int{2, 2}},
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
	all, err := f.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFile_Overwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f, err := store.Open(ctx, filepath.Join(t.TempDir(), "o.db"))
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.WriteReal(ctx, "g", "x", []int{1}, []float64{1}))
	require.NoError(t, f.WriteReal(ctx, "g", "x", []int{2}, []float64{2, 3}))
	_, data, err := f.ReadReal(ctx, "g", "x")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, data)
}

func TestFile_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	_, err := store.OpenExisting(ctx, filepath.Join(dir, "missing.db"))
	assert.ErrorIs(t, err, store.ErrNotFound)

	f, err := store.Open(ctx, filepath.Join(dir, "e.db"))
	require.NoError(t, err)
	defer f.Close()

	assert.ErrorIs(t, f.WriteReal(ctx, "g", "x", []int{3}, []float64{1}), store.ErrShape)
	require.NoError(t, f.WriteReal(ctx, "g", "x", []int{1}, []float64{1}))

	_, _, err = f.ReadComplex(ctx, "g", "x")
	assert.ErrorIs(t, err, store.ErrKindMismatch)
	_, _, err = f.ReadReal(ctx, "g", "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestConfigLoaders(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	stem := filepath.Join(t.TempDir(), "prop")
	cfgs := []int{100, 140, 180}

	var vertices vecops.Seq[sc.Matrix]
	for g := 0; g < sc.NumGammas; g++ {
		vertices = append(vertices, sc.Gamma(g).Matrix())
	}
	fq := vecops.Seq[sc.Tensor4]{}
	for g := 0; g < sc.NumGammas; g++ {
		fq = append(fq, sc.Outer(vertices[g], sc.Identity()))
	}

	for i, cfg := range cfgs {
		path := store.ConfigPath(stem, cfg)
		require.NoError(t, store.SavePropagator(ctx, path, "SinAve", sc.ScalarMatrix(complex(float64(i+1), 0))))
		require.NoError(t, store.SaveBilinears(ctx, path, "bilinear", vertices))
		require.NoError(t, store.SaveFourQuark(ctx, path, "fourquark", fq))
	}
	assert.Equal(t, stem+".140.db", store.ConfigPath(stem, 140))

	props, err := store.LoadPropagators(ctx, stem, "SinAve", cfgs, 2)
	require.NoError(t, err)
	require.Len(t, props, 3)
	for i, p := range props {
		assert.Equal(t, complex(float64(i+1), 0), p.At(2, 1, 2, 1))
		assert.Zero(t, p.At(2, 1, 0, 1))
	}

	bil, err := store.LoadBilinears(ctx, stem, "bilinear", cfgs, 0)
	require.NoError(t, err)
	require.Len(t, bil, 3)
	assert.Zero(t, bil[1][sc.GammaT].MaxAbsDiff(sc.GammaT.Matrix()))

	four, err := store.LoadFourQuark(ctx, stem, "fourquark", cfgs[:1], 0)
	require.NoError(t, err)
	require.Len(t, four[0], sc.NumGammas)
	assert.Equal(t, fq[sc.GammaX].Data(), four[0][sc.GammaX].Data())

	_, err = store.LoadPropagators(ctx, stem, "bilinear", cfgs, 0)
	assert.ErrorIs(t, err, store.ErrShape)
	_, err = store.LoadPropagators(ctx, stem, "SinAve", []int{999}, 0)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = store.LoadPropagators(ctx, stem, "SinAve", nil, 0)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestResults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, store.SaveResult(ctx, dir, "LambdaSg", []float64{0.9, 1.1, 1.0}))
	got, err := store.LoadResult(ctx, dir, "LambdaSg")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 1.1, 1.0}, got)
	assert.Equal(t, filepath.Join(dir, "LambdaSg.db"), store.ResultPath(dir, "LambdaSg"))

	_, err = store.LoadResult(ctx, dir, "LambdaPg")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
