// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/garoute/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the NaN/Inf guard on Set.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 1, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 1, 7.89))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestNewDenseFromRows covers copying, ragged rejection and finite checks.
func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{
		{0, 2, 5},
		{2, 0, 4},
	}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	src[0][1] = 99 // source edits must not leak into the copy
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
	require.Equal(t, [][]float64{{0, 2, 5}, {2, 0, 4}}, m.RowsCopy())

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFromRows([][]float64{{0, math.NaN()}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence verifies that Clone produces an independent copy.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 2))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // original untouched
}

// TestDenseString checks the debug representation.
func TestDenseString(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1.5}, {2, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 1.5]\n[2, 0]\n", m.String())
}

// TestEuclidean builds a 3-4-5 triangle and checks symmetry and the zero diagonal.
func TestEuclidean(t *testing.T) {
	m, err := matrix.Euclidean([]matrix.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}})
	require.NoError(t, err)

	want := [][]float64{
		{0, 3, 5},
		{3, 0, 4},
		{5, 4, 0},
	}
	require.Equal(t, want, m.RowsCopy())

	_, err = matrix.Euclidean(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Euclidean([]matrix.Point{{X: math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
