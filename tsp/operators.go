// Package tsp - genetic operators over permutation-encoded tours.
//
// Both operators keep the permutation invariant: their output is always a
// permutation of the same node set as their input.
//   - OrderedCrossover / Crossover: copy a contiguous segment from parent 1,
//     fill the rest left-to-right with parent 2's genes in parent-2 order,
//     skipping genes already placed. A single-point cut would duplicate or
//     drop nodes, so it is not offered.
//   - SwapMutate / Mutate: exchange two positions in place.
package tsp

import "fmt"

// OrderedCrossover builds a child from p1 and p2 with the inherited segment
// [start, end) taken verbatim from p1. The remaining child positions are filled
// in left-to-right order with p2's genes in p2's own order, skipping genes
// already copied from p1. start == end is legal and yields p2's order.
//
// Contract:
//   - p1 and p2 are permutations of the same n nodes (0..n-1).
//   - 0 ≤ start ≤ end ≤ n.
//
// Errors: ErrDimensionMismatch, ErrSegmentOutOfRange.
//
// Complexity: O(n) time, O(n) space (child + marker).
func OrderedCrossover(p1, p2 Tour, start, end int) (Tour, error) {
	var n = len(p1)
	if n == 0 || len(p2) != n {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start > end || end > n {
		return nil, fmt.Errorf("OrderedCrossover: [%d,%d) with n=%d: %w", start, end, n, ErrSegmentOutOfRange)
	}

	child := make(Tour, n)
	placed := make([]bool, n)

	var (
		i, v int
		j    int // cursor into p2
	)
	// Stage 1: inherit the segment from p1.
	for i = start; i < end; i++ {
		v = p1[i]
		if v < 0 || v >= n || placed[v] {
			return nil, ErrDimensionMismatch
		}
		child[i] = v
		placed[v] = true
	}

	// Stage 2: fill the free slots with p2's remaining genes, in p2 order.
	for i = 0; i < n; i++ {
		if i >= start && i < end {
			continue // inherited from p1
		}
		for j < n && p2[j] >= 0 && p2[j] < n && placed[p2[j]] {
			j++
		}
		if j == n {
			// p2 ran out of unplaced genes: the parents do not share a node set.
			return nil, ErrDimensionMismatch
		}
		v = p2[j]
		j++
		if v < 0 || v >= n {
			return nil, ErrDimensionMismatch
		}
		child[i] = v
		placed[v] = true
	}

	return child, nil
}

// Crossover draws a segment with start uniform in [0, n-1] and end uniform in
// [start, n-1], then applies OrderedCrossover. The last position is therefore
// never inherited from p1; start == end gives an empty segment.
//
// Complexity: O(n).
func Crossover(p1, p2 Tour, rng Rand) (Tour, error) {
	var n = len(p1)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	start := rng.Intn(n)
	end := start + rng.Intn(n-start)

	return OrderedCrossover(p1, p2, start, end)
}

// SwapMutate exchanges the genes at positions i and j in place.
// i == j leaves t unchanged.
//
// Errors: ErrDimensionMismatch when an index is out of range.
//
// Complexity: O(1).
func SwapMutate(t Tour, i, j int) error {
	if i < 0 || i >= len(t) || j < 0 || j >= len(t) {
		return ErrDimensionMismatch
	}
	t[i], t[j] = t[j], t[i]

	return nil
}

// Mutate picks two positions uniformly with replacement and swaps them in
// place. When both draws coincide the tour is unchanged.
//
// Complexity: O(1).
func Mutate(t Tour, rng Rand) {
	var n = len(t)
	if n == 0 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n)
	t[i], t[j] = t[j], t[i]
}
