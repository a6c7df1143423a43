package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/garoute/matrix"
	"github.com/katalvlaran/garoute/tsp"
	"github.com/stretchr/testify/require"
)

// TestTourDistance_FourNode checks the cyclic sum, including the closing hop.
func TestTourDistance_FourNode(t *testing.T) {
	m := mustDense(t, fourNode())

	tests := []struct {
		tour tsp.Tour
		want float64
	}{
		{tsp.Tour{0, 1, 2, 3}, 16},
		{tsp.Tour{3, 2, 1, 0}, 16},
		{tsp.Tour{2, 3, 0, 1}, 16},
		{tsp.Tour{0, 1, 3, 2}, 18},
		{tsp.Tour{0, 2, 1, 3}, 24},
	}
	for _, tc := range tests {
		got, err := tsp.TourDistance(m, tc.tour)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "tour %v", tc.tour)
	}
}

// TestTourDistance_Asymmetric uses the directed hop costs.
func TestTourDistance_Asymmetric(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 1, 9},
		{9, 0, 1},
		{1, 9, 0},
	})
	fwd, err := tsp.TourDistance(m, tsp.Tour{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 3.0, fwd)

	rev, err := tsp.TourDistance(m, tsp.Tour{2, 1, 0})
	require.NoError(t, err)
	require.Equal(t, 27.0, rev)
}

// TestTourDistance_Errors covers matrix and tour validation.
func TestTourDistance_Errors(t *testing.T) {
	m := mustDense(t, fourNode())

	_, err := tsp.TourDistance(m, tsp.Tour{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourDistance(m, tsp.Tour{0, 1, 1, 2})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourDistance(nil, tsp.Tour{0})
	require.ErrorIs(t, err, tsp.ErrInvalidMatrix)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	neg := mustDense(t, [][]float64{{0, -1}, {1, 0}})
	_, err = tsp.TourDistance(neg, tsp.Tour{0, 1})
	require.ErrorIs(t, err, matrix.ErrNegative)
}

// TestFitness_Inverse checks 1/d and the zero-distance cap.
func TestFitness_Inverse(t *testing.T) {
	require.Equal(t, 0.0625, tsp.Fitness(16))
	require.InDelta(t, 1.0/18, tsp.Fitness(18), epsTiny)
	require.Equal(t, tsp.MaxFitness, tsp.Fitness(0))
	require.False(t, math.IsInf(tsp.Fitness(0), 0))
}

// TestFitness_Monotone: a shorter tour always scores strictly higher, and the
// capped zero-distance tour outranks every positive distance.
func TestFitness_Monotone(t *testing.T) {
	ds := []float64{
		0, 1e-300, 1e-20, 3e-10, 6e-10, 1e-9, 0.5, 1, 2, 16, 18,
		1e6, 1e200, 1e300, math.MaxFloat64,
	}
	for i := 0; i+1 < len(ds); i++ {
		require.Greater(t, tsp.Fitness(ds[i]), tsp.Fitness(ds[i+1]), "d=%g vs d=%g", ds[i], ds[i+1])
		require.Greater(t, tsp.Fitness(ds[i+1]), 0.0)
	}

	// same property through TourDistance at tiny, unit and huge cost scales
	base := randomMatrix(7, seedDet)
	pop, err := tsp.NewPopulation(7, 40, tsp.NewRand(seedDet))
	require.NoError(t, err)
	for _, scale := range []float64{1e-12, 1, 1e290} {
		m := mustDense(t, scaled(base, scale))
		for i := 0; i+1 < len(pop); i++ {
			da, err := tsp.TourDistance(m, pop[i])
			require.NoError(t, err)
			db, err := tsp.TourDistance(m, pop[i+1])
			require.NoError(t, err)
			require.Greater(t, da, 0.0, "scale %g", scale)
			if da < db {
				require.Greater(t, tsp.Fitness(da), tsp.Fitness(db), "scale %g", scale)
			}
		}
	}
}

// TestFitness_SubnormalCapped: 1/d overflows for subnormal d, so the score
// stays at the finite cap.
func TestFitness_SubnormalCapped(t *testing.T) {
	require.Equal(t, tsp.MaxFitness, tsp.Fitness(math.SmallestNonzeroFloat64))
	require.Less(t, tsp.Fitness(1e-300), tsp.MaxFitness)
}

// TestTourDistance_TinyCostsStayPositive: costs far below 1e-9 are summed
// exactly and never collapse to the zero-distance cap.
func TestTourDistance_TinyCostsStayPositive(t *testing.T) {
	w := 1e-10
	want := w + w + w
	m := mustDense(t, [][]float64{{0, w, w}, {w, 0, w}, {w, w, 0}})

	got, err := tsp.TourDistance(m, tsp.Tour{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, want, got)

	res, err := tsp.Optimize(m.RowsCopy(), 4, 3, 0, 0, 1, tsp.WithSeed(seedDet))
	require.NoError(t, err)
	require.Equal(t, want, res[0].Distance)
	require.Equal(t, 1/want, res[0].Fitness)
	require.Less(t, res[0].Fitness, tsp.MaxFitness)

	h := 3e-10
	res, err = tsp.Optimize([][]float64{{0, h}, {h, 0}}, 2, 1, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, h+h, res[0].Distance)
	require.Equal(t, 1/(h+h), res[0].Fitness)
}

// TestTourDistance_HugeCosts: large finite sums are kept, sums that could
// overflow are rejected as an invalid matrix.
func TestTourDistance_HugeCosts(t *testing.T) {
	res, err := tsp.Optimize([][]float64{{0, 1e300}, {1e300, 0}}, 2, 1, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 2e300, res[0].Distance)
	require.Equal(t, 1/res[0].Distance, res[0].Fitness)
	require.Greater(t, res[0].Fitness, 0.0)

	edge := mustDense(t, [][]float64{{0, 8e307}, {8e307, 0}})
	d, err := tsp.TourDistance(edge, tsp.Tour{1, 0})
	require.NoError(t, err)
	require.False(t, math.IsInf(d, 0))

	over := [][]float64{{0, 1e308}, {1e308, 0}}
	_, err = tsp.Optimize(over, 2, 1, 0, 0, 1)
	require.ErrorIs(t, err, tsp.ErrInvalidConfig)
	require.ErrorIs(t, err, tsp.ErrInvalidMatrix)
	require.ErrorIs(t, err, tsp.ErrCostOverflow)

	_, err = tsp.TourDistance(mustDense(t, over), tsp.Tour{0, 1})
	require.ErrorIs(t, err, tsp.ErrCostOverflow)
}

// TestResult_DistanceIsExactSum: every reported Distance is the plain
// left-to-right cyclic sum of its tour, with no rounding applied.
func TestResult_DistanceIsExactSum(t *testing.T) {
	a := scaled(randomMatrix(9, seedDet), 1.0/3)
	res, err := tsp.Optimize(a, 30, 20, 0.1, 0.05, 5, tsp.WithSeed(seedDet))
	require.NoError(t, err)
	for _, r := range res {
		require.Equal(t, cyclicSum(a, r.Tour), r.Distance, "tour %v", r.Tour)
		require.Equal(t, 1/r.Distance, r.Fitness)
	}
}
