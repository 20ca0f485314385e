// SPDX-License-Identifier: MIT
package vecops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npr/vecops"
)

func TestVector_Arithmetic(t *testing.T) {
	t.Parallel()
	a := vecops.Vector{1, 2, 3}
	b := vecops.Vector{4, 5, 6}

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, vecops.Vector{5, 7, 9}, sum)

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, vecops.Vector{3, 3, 3}, diff)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, vecops.Vector{4, 10, 18}, prod)

	quo, err := b.Div(vecops.Vector{2, 5, 3})
	require.NoError(t, err)
	assert.Equal(t, vecops.Vector{2, 1, 2}, quo)

	assert.Equal(t, vecops.Vector{2, 4, 6}, a.Scale(2))
	assert.Equal(t, vecops.Vector{0, 0, 0}, a.Zero())
	assert.InDeltaSlice(t, []float64{1, 2}, []float64(vecops.Vector{1, 4}.Sqrt()), 1e-15)

	// Operands are never mutated.
	assert.Equal(t, vecops.Vector{1, 2, 3}, a)
}

func TestVector_DimensionMismatch(t *testing.T) {
	t.Parallel()
	a := vecops.Vector{1, 2}
	b := vecops.Vector{1, 2, 3}
	_, err := a.Add(b)
	assert.ErrorIs(t, err, vecops.ErrDimensionMismatch)
	_, err = a.Sub(b)
	assert.ErrorIs(t, err, vecops.ErrDimensionMismatch)
	_, err = a.Mul(b)
	assert.ErrorIs(t, err, vecops.ErrDimensionMismatch)
	_, err = a.Div(b)
	assert.ErrorIs(t, err, vecops.ErrDimensionMismatch)
}

func TestSeq_ZeroKeepsInnerShape(t *testing.T) {
	t.Parallel()
	s := vecops.Seq[vecops.Vector]{{1, 2}, {3, 4, 5}}
	z := s.Zero()
	require.Len(t, z, 2)
	assert.Len(t, z[0], 2)
	assert.Len(t, z[1], 3)

	sum, err := s.Add(s)
	require.NoError(t, err)
	assert.Equal(t, vecops.Vector{6, 8, 10}, sum[1])

	_, err = s.Add(vecops.Seq[vecops.Vector]{{1, 2}})
	assert.ErrorIs(t, err, vecops.ErrDimensionMismatch)

	// Inner mismatch propagates from the entries.
	_, err = s.Sub(vecops.Seq[vecops.Vector]{{1, 2}, {1}})
	assert.ErrorIs(t, err, vecops.ErrDimensionMismatch)
}

func TestSumMean(t *testing.T) {
	t.Parallel()
	m, err := vecops.Mean([]vecops.Real{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, float64(m), 1e-15)

	_, err = vecops.Sum([]vecops.Real{})
	assert.ErrorIs(t, err, vecops.ErrEmpty)
}

func TestZipWithTransposeRealParts(t *testing.T) {
	t.Parallel()
	out, err := vecops.ZipWith([]int{1, 2}, []float64{0.5, 0.25}, func(a int, b float64) (float64, error) {
		return float64(a) * b, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, out)

	_, err = vecops.ZipWith([]int{1}, []int{1, 2}, func(a, b int) (int, error) { return a + b, nil })
	assert.ErrorIs(t, err, vecops.ErrDimensionMismatch)

	tr, err := vecops.Transpose([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tr)

	_, err = vecops.Transpose([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, vecops.ErrRagged)

	assert.Equal(t, []float64{1, -2}, vecops.RealParts([]complex128{1 + 2i, -2 - 1i}))
	assert.Equal(t, []string{"a!", "b!"}, vecops.MapScalar([]string{"a", "b"}, "!", func(a, s string) string { return a + s }))
}
