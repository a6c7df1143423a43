package tsp

import "fmt"

// NewPopulation returns size independently shuffled permutations of 0..n-1.
// Each tour is an unbiased Fisher–Yates shuffle; duplicates across tours are
// allowed and not filtered.
//
// A nil rng falls back to the seed-0 default stream.
//
// Errors: ErrDimensionMismatch when n < 1, ErrPopulationSize when size < 1.
//
// Complexity: O(size·n) time and space.
func NewPopulation(n, size int, rng Rand) ([]Tour, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewPopulation: n=%d: %w", n, ErrDimensionMismatch)
	}
	if size < 1 {
		return nil, fmt.Errorf("NewPopulation: size=%d: %w", size, ErrPopulationSize)
	}
	if rng == nil {
		rng = randFromSeed(0)
	}

	pop := make([]Tour, size)
	var (
		i   int
		err error
	)
	for i = 0; i < size; i++ {
		if pop[i], err = permRange(n, rng); err != nil {
			return nil, err
		}
	}

	return pop, nil
}
