package tsp

import (
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes one evaluated generation. It is built after the
// generation barrier, so every field describes a complete population.
type GenerationStats struct {
	// Generation is the 0-based generation index.
	Generation int

	// Best is the best-of-generation record (the same value that is stored
	// for the final ranking).
	Best Result

	// MeanFitness and StdDevFitness describe the fitness distribution of the
	// population. A capped MaxFitness tour may push the mean to +Inf.
	MeanFitness   float64
	StdDevFitness float64

	// WorstFitness is the lowest fitness in the population.
	WorstFitness float64

	// MeanDistance is the mean total cyclic distance of the population.
	MeanDistance float64

	// Elites is the number of tours carried unchanged into the next generation.
	Elites int
}

// Observer receives per-generation statistics. Calls happen on the goroutine
// running the engine, one generation at a time, in order.
type Observer interface {
	OnGeneration(GenerationStats)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(GenerationStats)

// OnGeneration calls f(s).
func (f ObserverFunc) OnGeneration(s GenerationStats) { f(s) }

// MultiObserver fans every call out to each non-nil observer, in order.
func MultiObserver(obs ...Observer) Observer {
	var list = make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			list = append(list, o)
		}
	}

	return ObserverFunc(func(s GenerationStats) {
		for _, o := range list {
			o.OnGeneration(s)
		}
	})
}

// summarize fills the distribution fields of GenerationStats from the ranked
// scores. fits and dists are scratch buffers of len(ranked).
//
// Complexity: O(P).
func summarize(ranked []scored, fits, dists []float64) (mean, std, worst, meanDist float64) {
	var i int
	for i = range ranked {
		fits[i] = ranked[i].fitness
		dists[i] = ranked[i].distance
	}
	mean, std = stat.MeanStdDev(fits, nil)
	meanDist = stat.Mean(dists, nil)
	worst = ranked[len(ranked)-1].fitness

	return mean, std, worst, meanDist
}
