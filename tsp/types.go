package tsp

import (
	"errors"
	"strings"
)

// Configuration sentinels. Every one of them also matches ErrInvalidConfig
// through errors.Is, so callers can branch on the family or on the field.
var (
	// ErrInvalidConfig is the umbrella for every configuration failure detected
	// before a run starts.
	ErrInvalidConfig = errors.New("tsp: invalid configuration")

	// ErrInvalidMatrix is returned when the distance matrix is nil, empty,
	// non-square, holds negative / non-finite costs, or is large enough that
	// a tour cost overflows.
	ErrInvalidMatrix = errors.New("tsp: invalid distance matrix")

	// ErrPopulationSize is returned when PopulationSize < 2 (parent sampling
	// without replacement needs two distinct tours), and by NewPopulation
	// for a size < 1.
	ErrPopulationSize = errors.New("tsp: population size must be >= 2")

	// ErrGenerations is returned when Generations < 1.
	ErrGenerations = errors.New("tsp: number of generations must be >= 1")

	// ErrElitismRate is returned when ElitismRate is NaN or outside [0,1].
	ErrElitismRate = errors.New("tsp: elitism rate must be in [0,1]")

	// ErrMutationRate is returned when MutationRate is NaN or outside [0,1].
	ErrMutationRate = errors.New("tsp: mutation rate must be in [0,1]")

	// ErrBestCount is returned when BestCount < 1 or BestCount > Generations.
	ErrBestCount = errors.New("tsp: best-sequence count must be in [1, generations]")
)

// Structural sentinels for tours and operator inputs.
var (
	// ErrDimensionMismatch reports a tour of the wrong length, an out-of-range
	// node index, a duplicate node, or parents of unequal length.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrSegmentOutOfRange reports a crossover segment outside 0 ≤ start ≤ end ≤ n.
	ErrSegmentOutOfRange = errors.New("tsp: crossover segment out of range")

	// ErrCostOverflow reports a matrix whose n·max entry exceeds float64, so
	// a tour's total cost could overflow. It arrives wrapped in ErrInvalidMatrix.
	ErrCostOverflow = errors.New("tsp: tour cost overflows float64")
)

// configError carries a configuration sentinel plus optional detail and cause.
// It unwraps to ErrInvalidConfig, the specific sentinel and the cause.
type configError struct {
	kind   error
	detail string
	cause  error
}

func newConfigError(kind error, detail string, cause error) error {
	return &configError{kind: kind, detail: detail, cause: cause}
}

func (e *configError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.kind.Error())
	if e.detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.detail)
	}
	if e.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.cause.Error())
	}

	return sb.String()
}

func (e *configError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidConfig, e.kind}
	}

	return []error{ErrInvalidConfig, e.kind, e.cause}
}

// Tour is an ordered visit sequence over node indices 0..n-1, read as a closed
// cycle: the last node connects back to the first.
type Tour []int

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}

	return append(Tour(nil), t...)
}

// Result is one best-of-generation record.
type Result struct {
	// Tour is the champion tour of its generation (open form, length n).
	Tour Tour

	// Fitness is 1/Distance, or MaxFitness when Distance == 0.
	Fitness float64

	// Distance is the total cyclic cost of Tour.
	Distance float64

	// Generation is the 0-based generation the tour was recorded in.
	Generation int
}

// Config holds the algorithm parameters of a run.
type Config struct {
	// PopulationSize is the number of tours per generation. Must be >= 2.
	PopulationSize int

	// Generations is the exact number of generations evolved. Must be >= 1.
	Generations int

	// ElitismRate is the share of each generation copied unchanged into the
	// next; the elite count is floor(ElitismRate * PopulationSize).
	ElitismRate float64

	// MutationRate is the probability that a freshly bred child gets one swap.
	MutationRate float64

	// BestCount is how many best-of-generation records are returned.
	// Must be in [1, Generations].
	BestCount int
}

// Defaults mirror the reference routing scenario.
const (
	DefaultPopulationSize = 100
	DefaultGenerations    = 500
	DefaultElitismRate    = 0.1
	DefaultMutationRate   = 0.02
	DefaultBestCount      = 3
)

// DefaultConfig returns a Config initialized with the package defaults.
func DefaultConfig() Config {
	return Config{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		ElitismRate:    DefaultElitismRate,
		MutationRate:   DefaultMutationRate,
		BestCount:      DefaultBestCount,
	}
}

// EliteCount returns floor(ElitismRate * PopulationSize).
func (c Config) EliteCount() int {
	return int(c.ElitismRate * float64(c.PopulationSize))
}
