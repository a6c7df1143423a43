package tsp

// Test-Bridge (White-Box) for the evolution engine.
//
// Purpose:
//   - Expose the generation step and internal buffers to tsp_test ONLY, so
//     elitism and generation-barrier properties can be checked directly.
//   - Lives in a _test.go file: invisible in production builds.

// InitForTest draws the initial population.
func (e *Engine) InitForTest() error { return e.init() }

// StepForTest runs generation g.
func (e *Engine) StepForTest(g int) { e.step(g) }

// PopulationForTest returns deep copies of the current population.
func (e *Engine) PopulationForTest() []Tour {
	out := make([]Tour, len(e.pop))
	for i := range e.pop {
		out[i] = e.pop[i].Clone()
	}

	return out
}

// RankedIndicesForTest returns the ranking of the last evaluated generation as
// indices into that generation's population.
func (e *Engine) RankedIndicesForTest() []int {
	out := make([]int, len(e.ranked))
	for i := range e.ranked {
		out[i] = e.ranked[i].idx
	}

	return out
}

// EliteCountForTest returns the engine's elite count.
func (e *Engine) EliteCountForTest() int { return e.elite }

var (
	ExportedPickParents = pickParents
	ExportedPermRange   = permRange
)
