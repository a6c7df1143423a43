// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Euclidean builds the symmetric n×n matrix of straight-line distances between
// points, with a zero diagonal.
//
// Errors: ErrInvalidDimensions for an empty point set, ErrNaNInf when a
// coordinate is not finite.
//
// Complexity: Time O(n²), Space O(n²).
func Euclidean(points []Point) (*Dense, error) {
	var n = len(points)
	if n == 0 {
		return nil, fmt.Errorf("Euclidean: %w", ErrInvalidDimensions)
	}
	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(points[i].X) || !isFinite(points[i].Y) {
			return nil, fmt.Errorf("Euclidean: point %d: %w", i, ErrNaNInf)
		}
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
