// Package tsp - validation utilities run before any generation.
//
// This file contains small helpers that:
//  1. Validate Config (sizes, rates, result count).
//  2. Validate the distance matrix (shape, finite, non-negative, and small
//     enough that no cyclic sum overflows).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - configuration sentinels only.
//   - Config is checked before the matrix so cheap scalar errors win.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/garoute/matrix"
)

// validateAll verifies Config + distance matrix.
// It returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateAll(dist matrix.Matrix, cfg Config) (int, error) {
	// Stage 1: Config-only sanity.
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	// Stage 2: Matrix shape/values.
	return validateCosts(dist)
}

// validateCosts checks dist as a cost matrix and returns its order n.
// Every failure is a configuration error under ErrInvalidMatrix.
//
// Complexity: O(n²).
func validateCosts(dist matrix.Matrix) (int, error) {
	n, err := matrix.ValidateCostMatrix(dist)
	if err != nil {
		return 0, newConfigError(ErrInvalidMatrix, "", err)
	}
	if err = checkCostRange(dist, n); err != nil {
		return 0, newConfigError(ErrInvalidMatrix, "", err)
	}

	return n, nil
}

// Validate checks internal consistency of the Config without touching a matrix.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.PopulationSize < 2 {
		return newConfigError(ErrPopulationSize, fmt.Sprintf("got %d", c.PopulationSize), nil)
	}
	if c.Generations < 1 {
		return newConfigError(ErrGenerations, fmt.Sprintf("got %d", c.Generations), nil)
	}
	if !inUnit(c.ElitismRate) {
		return newConfigError(ErrElitismRate, fmt.Sprintf("got %g", c.ElitismRate), nil)
	}
	if !inUnit(c.MutationRate) {
		return newConfigError(ErrMutationRate, fmt.Sprintf("got %g", c.MutationRate), nil)
	}
	if c.BestCount < 1 || c.BestCount > c.Generations {
		return newConfigError(ErrBestCount,
			fmt.Sprintf("got %d with %d generations", c.BestCount, c.Generations), nil)
	}

	return nil
}

// inUnit reports whether x lies in the closed interval [0,1]. NaN is rejected.
func inUnit(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}
