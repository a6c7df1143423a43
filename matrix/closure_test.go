// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/garoute/matrix"
)

// TestRoadNetwork_Closure: a 4-node ring with one chord; indirect pairs take
// the shortest detour.
//
//	0 ─2─ 1
//	│     │
//	7     4
//	│     │
//	3 ─3─ 2      chord 0─2 costs 9
func TestRoadNetwork_Closure(t *testing.T) {
	edges := []matrix.Edge{
		{From: 0, To: 1, Cost: 2},
		{From: 1, To: 2, Cost: 4},
		{From: 2, To: 3, Cost: 3},
		{From: 3, To: 0, Cost: 7},
		{From: 0, To: 2, Cost: 9},
	}
	m, err := matrix.RoadNetwork(4, edges, false)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 2, 6, 7},
		{2, 0, 4, 7},
		{6, 4, 0, 3},
		{7, 7, 3, 0},
	}, m.RowsCopy())
}

func TestRoadNetwork_Directed(t *testing.T) {
	// one-way ring 0→1→2→0
	edges := []matrix.Edge{{From: 0, To: 1, Cost: 1}, {From: 1, To: 2, Cost: 1}, {From: 2, To: 0, Cost: 1}}
	m, err := matrix.RoadNetwork(3, edges, true)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 1, 2},
		{2, 0, 1},
		{1, 2, 0},
	}, m.RowsCopy())
}

func TestRoadNetwork_ParallelEdgesAndLoops(t *testing.T) {
	edges := []matrix.Edge{{From: 0, To: 1, Cost: 5}, {From: 1, To: 0, Cost: 3}, {From: 1, To: 1, Cost: 8}}
	m, err := matrix.RoadNetwork(2, edges, false)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 3}, {3, 0}}, m.RowsCopy())
}

func TestRoadNetwork_Errors(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		edges    []matrix.Edge
		directed bool
		want     error
	}{
		{"no nodes", 0, nil, false, matrix.ErrInvalidDimensions},
		{"endpoint", 2, []matrix.Edge{{From: 0, To: 2, Cost: 1}}, false, matrix.ErrOutOfRange},
		{"negative", 2, []matrix.Edge{{From: 0, To: 1, Cost: -1}}, false, matrix.ErrNegative},
		{"nan", 2, []matrix.Edge{{From: 0, To: 1, Cost: math.NaN()}}, false, matrix.ErrNaNInf},
		{"disconnected", 3, []matrix.Edge{{From: 0, To: 1, Cost: 1}}, false, matrix.ErrUnreachable},
		{"one way", 2, []matrix.Edge{{From: 0, To: 1, Cost: 1}}, true, matrix.ErrUnreachable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.RoadNetwork(tc.n, tc.edges, tc.directed)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
