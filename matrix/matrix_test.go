// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npr/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRagged)
	_, err = matrix.NewFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	require.NoError(t, m.Set(0, 1, 9))
	assert.Equal(t, [][]float64{{1, 9}, {3, 4}}, m.RowsCopy())

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrIndexOutOfBounds)
}

func TestAddSubMul_FastPathEqualsFallback(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{6, 5, 4}, {3, 2, 1}})
	c := MustRows(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, fast.RowsCopy(), slow.RowsCopy())
	assert.Equal(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, fast.RowsCopy())

	diff, err := matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-5, -3, -1}, {1, 3, 5}}, diff.RowsCopy())

	p1, err := matrix.Mul(a, c)
	require.NoError(t, err)
	p2, err := matrix.Mul(hide{a}, hide{c})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, 5}, {10, 11}}, p1.RowsCopy())
	assert.Equal(t, p1.RowsCopy(), p2.RowsCopy())

	_, err = matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(a, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, c)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLU_PivotingReconstructs(t *testing.T) {
	t.Parallel()
	// Leading zero pivot: fails without row exchanges.
	a := MustRows(t, [][]float64{{0, 2, 1}, {1, 1, 0}, {3, 0, 1}})
	f, err := matrix.LU(a)
	require.NoError(t, err)
	lu, err := matrix.Mul(f.L, f.U)
	require.NoError(t, err)
	rows := a.RowsCopy()
	for i, p := range f.Perm {
		got := lu.RowsCopy()[i]
		assert.InDeltaSlice(t, rows[p], got, 1e-14)
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{0, 2, 1}, {1, 1, 0}, {3, 0, 1}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	assert.True(t, matrix.AllClose(prod, MustIdentity(t, 3), 1e-14), prod.String())

	_, err = matrix.Inverse(MustRows(t, [][]float64{{1, 2}, {2, 4}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Inverse(MustRows(t, [][]float64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDense_ElementSurface(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 4}, {9, 16}})
	b := MustRows(t, [][]float64{{2, 2}, {3, 4}})

	h, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 8}, {27, 64}}, h.RowsCopy())

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 2}, {3, 4}}, q.RowsCopy())

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.Sqrt().RowsCopy())
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, a.Zero().RowsCopy())
	assert.Equal(t, [][]float64{{-1, -4}, {-9, -16}}, a.Scale(-1).RowsCopy())

	_, err = a.Mul(MustIdentity(t, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2}})
	require.NoError(t, matrix.ValidateFinite(m))
	require.NoError(t, m.Set(0, 1, math.Inf(1)))
	assert.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
}

func TestInverse_RejectsNonFinite(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 0}, {0, math.NaN()}})
	_, err := matrix.Inverse(m)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
