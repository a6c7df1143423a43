// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the cost-matrix contract checks.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match with errors.Is and still print where the check failed.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and square.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateCostMatrix enforces the full cost-matrix contract:
//   - non-nil, non-empty, square,
//   - every entry finite (no NaN/±Inf),
//   - every entry non-negative.
//
// Returns n (matrix order) on success. The diagonal is not constrained; a tour
// never reads it unless n == 1.
//
// Complexity: O(n²).
func ValidateCostMatrix(m Matrix) (int, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, err
	}
	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, validatorErrorf("ValidateCostMatrix", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, validatorErrorf(fmt.Sprintf("ValidateCostMatrix(%d,%d)", i, j), ErrNaNInf)
			}
			if v < 0 {
				return 0, validatorErrorf(fmt.Sprintf("ValidateCostMatrix(%d,%d)", i, j), ErrNegative)
			}
		}
	}

	return n, nil
}
