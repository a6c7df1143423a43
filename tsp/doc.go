// Package tsp finds near-minimal closed tours over a distance matrix with a
// genetic algorithm.
//
// A tour is a permutation of the node indices 0..n-1 read as a cycle; its
// fitness is 1/total_distance. Each run evolves a fixed-size population for
// an exact number of generations using:
//
//   - random permutations (Fisher–Yates) as the initial population,
//   - elitism: the top floor(ElitismRate·P) tours survive unchanged,
//   - ordered crossover of two distinct, uniformly drawn parents,
//   - swap mutation with probability MutationRate,
//
// and returns the best BestCount best-of-generation tours.
//
//   - Complexity: O(G·P·n) time, O(P·n) memory.
//   - Asymmetric matrices are supported: m[i][j] is the cost of the hop i→j.
//   - A tour of total distance 0 gets the capped fitness MaxFitness.
//   - The best-of-generation value is not guaranteed to improve monotonically:
//     only elitism carries good tours forward.
//
// Randomness goes through the Rand interface. The default source is a PCG
// stream seeded by WithSeed (seed 0 ⇒ a fixed default), so runs are
// reproducible. A run is strictly sequential.
//
// Invalid parameters are rejected before any generation runs with errors
// matching ErrInvalidConfig.
package tsp
