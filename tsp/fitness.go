package tsp

import "math"

// MaxFitness is the capped fitness assigned to a tour of total distance 0.
// It ranks above every tour with a positive distance of at least
// 1/MaxFitness.
const MaxFitness = math.MaxFloat64

// Fitness converts a total cyclic distance into a fitness score: 1/distance,
// or MaxFitness when distance is 0. Shorter tours score strictly higher down
// to distances near 5.6e-309, below which 1/distance no longer fits a float64
// and the score is capped at MaxFitness too.
//
// Complexity: O(1).
func Fitness(distance float64) float64 {
	if distance <= 0 {
		return MaxFitness
	}
	if f := 1 / distance; f <= MaxFitness {
		return f
	}

	return MaxFitness
}

// scored is one evaluated population slot.
type scored struct {
	idx      int     // index into the population being ranked
	distance float64 // total cyclic distance
	fitness  float64 // Fitness(distance)
}

// cmpScoredDesc orders by descending fitness; ties keep no particular order.
func cmpScoredDesc(a, b scored) int {
	switch {
	case a.fitness > b.fitness:
		return -1
	case a.fitness < b.fitness:
		return 1
	default:
		return 0
	}
}
