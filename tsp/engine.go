// Package tsp - evolution engine.
//
// This file provides the entry points of a genetic-algorithm run:
//
//   - Optimize: positional form over a literal [][]float64 matrix.
//   - OptimizeMatrix: structured form over matrix.Matrix + Config.
//   - NewEngine / Engine.Run: validated, reusable engine.
//
// A run is Initializing → Evolving(0..G-1) → Terminated. Each generation:
//  1. score every tour and rank by descending fitness;
//  2. copy the top floor(ElitismRate·P) tours unchanged;
//  3. fill the rest with children of two distinct parents drawn uniformly
//     from the whole population, each mutated with probability MutationRate;
//  4. record the head of the ranking from step 1;
//  5. swap populations.
//
// After exactly G generations the records are sorted by descending fitness
// and the first BestCount are returned. There is no early stop.
package tsp

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/garoute/matrix"
)

// Engine evolves tours over one distance matrix. An Engine is not safe for
// concurrent use; Run may be called repeatedly and each call is independent
// apart from consuming the engine's random stream.
type Engine struct {
	cfg      Config
	n        int
	elite    int
	costs    costTable
	rng      Rand
	observer Observer

	pop     []Tour   // current generation
	next    []Tour   // generation under construction
	ranked  []scored // scores of pop, ranked after evaluate+rank
	records []Result // best-of-generation accumulator

	fits, dists []float64 // observer scratch
}

// NewEngine validates cfg and dist and returns a ready Engine. The matrix is
// copied, so the caller may reuse or mutate it afterwards.
//
// Errors: configuration errors matching ErrInvalidConfig (see types.go).
//
// Complexity: O(n²) validation and snapshot.
func NewEngine(dist matrix.Matrix, cfg Config, opts ...Option) (*Engine, error) {
	n, err := validateAll(dist, cfg)
	if err != nil {
		return nil, err
	}
	ct, err := newCostTable(dist, n)
	if err != nil {
		return nil, newConfigError(ErrInvalidMatrix, "", err)
	}

	o := gatherOptions(opts...)
	rng := o.Rand
	if rng == nil {
		rng = randFromSeed(o.Seed)
	}
	e := &Engine{
		cfg:      cfg,
		n:        n,
		elite:    cfg.EliteCount(),
		costs:    ct,
		rng:      rng,
		observer: o.Observer,
		pop:      make([]Tour, cfg.PopulationSize),
		next:     make([]Tour, cfg.PopulationSize),
		ranked:   make([]scored, cfg.PopulationSize),
		records:  make([]Result, 0, cfg.Generations),
	}
	if e.observer != nil {
		e.fits = make([]float64, cfg.PopulationSize)
		e.dists = make([]float64, cfg.PopulationSize)
	}

	return e, nil
}

// Config returns the validated configuration of e.
func (e *Engine) Config() Config { return e.cfg }

// Nodes returns the number of nodes n of the distance matrix.
func (e *Engine) Nodes() int { return e.n }

// Run evolves a fresh random population for exactly cfg.Generations
// generations and returns the top cfg.BestCount best-of-generation records,
// sorted by descending fitness (earlier generations first among ties).
//
// ctx is checked between generations; a cancelled run returns an error
// wrapping ctx.Err() and no results.
//
// Complexity: O(G·P·n) time, O(P·n) space.
func (e *Engine) Run(ctx context.Context) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := e.init(); err != nil {
		return nil, err
	}

	var g int
	for g = 0; g < e.cfg.Generations; g++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("tsp: run stopped before generation %d: %w", g, err)
		}
		e.step(g)
	}

	return e.best(), nil
}

// init draws the initial population and clears the accumulator.
func (e *Engine) init() error {
	pop, err := NewPopulation(e.n, e.cfg.PopulationSize, e.rng)
	if err != nil {
		return err
	}
	copy(e.pop, pop)
	e.records = e.records[:0]

	return nil
}

// step runs one full generation g. When it returns, e.pop holds generation
// g+1 and nothing of generation g is still being written.
func (e *Engine) step(g int) {
	// 1) score + rank
	e.evaluate()
	slices.SortFunc(e.ranked, cmpScoredDesc)

	// 4) record the champion before the population is replaced
	head := e.ranked[0]
	best := Result{
		Tour:       e.pop[head.idx].Clone(),
		Fitness:    head.fitness,
		Distance:   head.distance,
		Generation: g,
	}
	e.records = append(e.records, best)

	// 2) + 3) elitism and reproduction into e.next
	e.breed()

	if e.observer != nil {
		mean, std, worst, meanDist := summarize(e.ranked, e.fits, e.dists)
		e.observer.OnGeneration(GenerationStats{
			Generation:    g,
			Best:          best,
			MeanFitness:   mean,
			StdDevFitness: std,
			WorstFitness:  worst,
			MeanDistance:  meanDist,
			Elites:        e.elite,
		})
	}

	// 5) swap
	e.pop, e.next = e.next, e.pop
}

// evaluate scores every slot of e.pop into e.ranked.
func (e *Engine) evaluate() {
	var (
		i int
		d float64
	)
	for i = 0; i < len(e.pop); i++ {
		d = e.costs.distance(e.pop[i])
		e.ranked[i] = scored{idx: i, distance: d, fitness: Fitness(d)}
	}
}

// breed writes the elites and the children of generation g+1 into e.next.
// e.ranked must already be sorted.
func (e *Engine) breed() {
	var (
		k     int
		a, b  int
		child Tour
		err   error
	)
	for k = 0; k < e.elite; k++ {
		e.next[k] = e.pop[e.ranked[k].idx].Clone()
	}
	for k = e.elite; k < len(e.next); k++ {
		a, b = pickParents(len(e.pop), e.rng)
		child, err = Crossover(e.pop[a], e.pop[b], e.rng)
		if err != nil {
			// Both parents are validated permutations of the same n nodes.
			panic(fmt.Sprintf("tsp: crossover on population tours failed: %v", err))
		}
		if e.rng.Float64() < e.cfg.MutationRate {
			Mutate(child, e.rng)
		}
		e.next[k] = child
	}
}

// pickParents draws two distinct indices uniformly from [0, p) without
// replacement. p must be >= 2.
//
// Complexity: O(1).
func pickParents(p int, rng Rand) (int, int) {
	a := rng.Intn(p)
	b := rng.Intn(p - 1)
	if b >= a {
		b++
	}

	return a, b
}

// best sorts the accumulated records and returns a copy of the top BestCount.
func (e *Engine) best() []Result {
	slices.SortStableFunc(e.records, func(a, b Result) int {
		return cmpScoredDesc(scored{fitness: a.Fitness}, scored{fitness: b.Fitness})
	})
	out := make([]Result, e.cfg.BestCount)
	copy(out, e.records[:e.cfg.BestCount])

	return out
}

// OptimizeMatrix validates the inputs, builds an Engine and runs it once.
//
// Errors: configuration errors (ErrInvalidConfig family) before any work;
// a wrapped ctx.Err() if ctx is cancelled mid-run.
func OptimizeMatrix(ctx context.Context, dist matrix.Matrix, cfg Config, opts ...Option) ([]Result, error) {
	e, err := NewEngine(dist, cfg, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run(ctx)
}

// Optimize is the positional entry point: it finds near-minimal closed tours
// over dist and returns numBestSequences records sorted by descending fitness.
//
// Preconditions (checked, reported as configuration errors):
//   - dist is a non-empty square matrix of finite, non-negative costs;
//   - populationSize >= 2, since parents are drawn without replacement;
//   - numGenerations >= 1;
//   - elitismRate and mutationRate in [0,1];
//   - 1 <= numBestSequences <= numGenerations.
func Optimize(
	dist [][]float64,
	populationSize, numGenerations int,
	elitismRate, mutationRate float64,
	numBestSequences int,
	opts ...Option,
) ([]Result, error) {
	cfg := Config{
		PopulationSize: populationSize,
		Generations:    numGenerations,
		ElitismRate:    elitismRate,
		MutationRate:   mutationRate,
		BestCount:      numBestSequences,
	}
	// Scalar checks first so a bad count is reported even with a bad matrix.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := matrix.NewDenseFromRows(dist)
	if err != nil {
		return nil, newConfigError(ErrInvalidMatrix, "", err)
	}

	return OptimizeMatrix(context.Background(), m, cfg, opts...)
}
