// Package garoute finds short closed delivery tours with a genetic algorithm.
//
// Given a matrix of travel costs between n locations, garoute evolves
// populations of candidate round trips and reports the best ones found.
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/           cost matrices: Dense storage, Euclidean and road-network builders
//	tsp/              the optimizer: population, fitness, operators, evolution engine
//	internal/config/  YAML run files and TSPLIB readers
//	internal/metrics/ Prometheus export of per-generation statistics
//	cmd/garoute/      command-line driver
//	examples/         runnable scenarios
//
// Quick example:
//
//	    0 ─2─ 1
//	    │ ╲ ╱ │
//	    7  ╳  4
//	    │ ╱ ╲ │
//	    3 ─3─ 2
//
//	res, _ := tsp.Optimize(dist, 20, 50, 0.1, 0.02, 1)
//	// res[0].Distance == 16: the ring 0→1→2→3→0
//
//	go install github.com/katalvlaran/garoute/cmd/garoute@latest
package garoute
