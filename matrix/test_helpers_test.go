// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npr/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths in code under test.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// MustIdentity builds an n×n identity or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	return m
}
