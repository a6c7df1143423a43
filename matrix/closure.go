// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Turn a sparse road network into the dense cost matrix the optimizer needs:
//     the cost of i→j is the length of the shortest path from i to j.
//   - Floyd–Warshall closure with deterministic loop order; in-place, O(n³) time.
//
// Contract:
//   - Nodes are 0..n-1; costs are finite and non-negative.
//   - Every ordered node pair must be connected after the closure.

package matrix

import (
	"fmt"
	"math"
)

const opRoadNetwork = "RoadNetwork"

// RoadNetwork builds the shortest-path cost matrix of n nodes joined by edges.
// Unless directed is set each edge is usable both ways. Parallel edges keep the
// cheapest cost.
//
// Errors: ErrInvalidDimensions (n<1), ErrOutOfRange (edge endpoint),
// ErrNaNInf / ErrNegative (edge cost), ErrUnreachable (disconnected network).
//
// Complexity: Time O(n³ + |edges|), Space O(n²).
func RoadNetwork(n int, edges []Edge, directed bool) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRoadNetwork, err)
	}

	var (
		inf  = math.Inf(1)
		data = d.data
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				data[i*n+j] = inf
			}
		}
	}

	for k, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", opRoadNetwork, k, e.From, e.To, ErrOutOfRange)
		}
		if math.IsNaN(e.Cost) || math.IsInf(e.Cost, 0) {
			return nil, fmt.Errorf("%s: edge %d: %w", opRoadNetwork, k, ErrNaNInf)
		}
		if e.Cost < 0 {
			return nil, fmt.Errorf("%s: edge %d: %w", opRoadNetwork, k, ErrNegative)
		}
		if e.From == e.To {
			continue
		}
		data[e.From*n+e.To] = math.Min(data[e.From*n+e.To], e.Cost)
		if !directed {
			data[e.To*n+e.From] = math.Min(data[e.To*n+e.From], e.Cost)
		}
	}

	floydWarshallInPlace(d)

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if math.IsInf(data[i*n+j], 1) {
				return nil, fmt.Errorf("%s: no path %d→%d: %w", opRoadNetwork, i, j, ErrUnreachable)
			}
		}
	}

	return d, nil
}

// floydWarshallInPlace runs the all-pairs shortest path closure on d.
//
// Policy:
//   - +Inf denotes "no path" off-diagonal; the diagonal is 0.
//   - Loop order is fixed (k → i → j); only strict improvements are written.
//
// Time: O(n³); Extra space: O(1).
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
