// Package tsp - cost utilities.
//
// This file provides small, allocation-conscious helpers to compute the total
// cyclic cost of a tour. A run snapshots the caller's matrix into a flat
// row-major costTable once, so the hot loop never goes through the
// interface and later edits to the caller's matrix cannot leak into a run.
//
// Design:
//   - Strict sentinels on invalid input (TourDistance is public).
//   - Exact left-to-right summation, no rounding.
//   - Matrices whose cyclic sum could overflow are rejected up front
//     (ErrCostOverflow), so a sum is always finite.
//
// Complexity:
//   - O(n) time for a tour of length n, O(1) extra space.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/garoute/matrix"
)

// costTable is a read-only n×n snapshot of a validated distance matrix.
type costTable struct {
	n    int
	data []float64 // row-major, len == n*n
}

// newCostTable copies dist into a flat table. dist must already be validated
// by validateCosts.
//
// Complexity: O(n²).
func newCostTable(dist matrix.Matrix, n int) (costTable, error) {
	ct := costTable{n: n, data: make([]float64, n*n)}

	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w, err = dist.At(i, j)
			if err != nil {
				return costTable{}, err
			}
			ct.data[i*n+j] = w
		}
	}

	return ct, nil
}

// distance sums the closed-cycle cost of t. t must be a permutation of 0..n-1.
//
// Complexity: O(n).
func (ct costTable) distance(t Tour) float64 {
	var (
		n   = ct.n
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += ct.data[t[i]*n+t[i+1]]
	}
	// closing hop back to the first node
	sum += ct.data[t[n-1]*n+t[0]]

	return sum
}

// TourDistance returns the total cyclic cost of tour over dist: the sum of
// dist[t[i]][t[(i+1) mod n]] for i in 0..n-1.
//
// Contract:
//   - dist must be a valid cost matrix (square, finite, non-negative).
//   - tour must be a permutation of 0..n-1.
//
// Errors: ErrInvalidMatrix (wrapping the matrix sentinel or ErrCostOverflow)
// or ErrDimensionMismatch.
//
// Complexity: O(n²) for the matrix check, O(n) for the sum.
func TourDistance(dist matrix.Matrix, tour Tour) (float64, error) {
	n, err := validateCosts(dist)
	if err != nil {
		return 0, err
	}
	if err = ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		i   int
	)
	for i = 0; i < n; i++ {
		w, err = dist.At(tour[i], tour[(i+1)%n])
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		sum += w
	}

	return sum, nil
}

// checkCostRange rejects a validated n×n matrix whose largest entry times n
// is not finite. Any cyclic sum is at most n·max, so it then always fits.
//
// Complexity: O(n²).
func checkCostRange(dist matrix.Matrix, n int) error {
	var (
		i, j int
		w    float64
		hi   float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if w, err = dist.At(i, j); err != nil {
				return err
			}
			hi = max(hi, w)
		}
	}
	if math.IsInf(float64(n)*hi, 1) {
		return fmt.Errorf("n=%d max=%g: %w", n, hi, ErrCostOverflow)
	}

	return nil
}
