// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/garoute/matrix"
	"github.com/katalvlaran/garoute/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)

	// epsTiny is the tolerance for fitness comparisons.
	epsTiny = 1e-12
)

// fourNode is the reference 4-node routing instance; its optimal cycle
// 0-1-2-3-0 costs 2+4+3+7 = 16.
func fourNode() [][]float64 {
	return [][]float64{
		{0, 2, 5, 7},
		{2, 0, 4, 8},
		{5, 4, 0, 3},
		{7, 8, 3, 0},
	}
}

// mustDense builds a *matrix.Dense or fails the test.
func mustDense(t testing.TB, a [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(a)
	require.NoError(t, err)

	return m
}

// randomMatrix returns an n×n asymmetric matrix with integer costs in [1, 100]
// and a zero diagonal, drawn from a fixed seed.
func randomMatrix(n int, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			if i != j {
				a[i][j] = float64(1 + r.Intn(100))
			}
		}
	}

	return a
}

// scaled returns a copy of a with every entry multiplied by k.
func scaled(a [][]float64, k float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(a[i]))
		for j, v := range a[i] {
			out[i][j] = v * k
		}
	}

	return out
}

// cyclicSum adds a[t[i]][t[i+1]] for i in 0..n-1, closing hop last.
func cyclicSum(a [][]float64, t tsp.Tour) float64 {
	var sum float64
	for i := range t {
		sum += a[t[i]][t[(i+1)%len(t)]]
	}

	return sum
}

// requirePermutation asserts that tour is a permutation of 0..n-1.
func requirePermutation(t testing.TB, tour tsp.Tour, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "not a permutation: %v", tour)
}

// scriptedRand replays fixed draws. Intn returns the next scripted int modulo
// n, Float64 the next scripted float; both wrap around when exhausted.
type scriptedRand struct {
	ints   []int
	floats []float64
	i, f   int
	calls  int
}

var _ tsp.Rand = (*scriptedRand)(nil)

func (s *scriptedRand) Intn(n int) int {
	s.calls++
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i%len(s.ints)]
	s.i++

	return v % n
}

func (s *scriptedRand) Float64() float64 {
	s.calls++
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.f%len(s.floats)]
	s.f++

	return v
}

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}
