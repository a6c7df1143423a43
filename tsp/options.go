package tsp

// Panic messages for nonsensical option values (programmer error).
const (
	panicNilRand = "tsp: WithRand: rng must be non-nil"
)

// Options configures how a run is executed; the algorithm parameters live in Config.
//
// Seed     – seed of the default PCG stream (0 ⇒ defaultRNGSeed). Ignored when Rand is set.
// Rand     – caller-supplied random source; takes precedence over Seed.
// Observer – per-generation callback; nil disables statistics collection.
type Options struct {
	Seed     int64
	Rand     Rand
	Observer Observer
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// DefaultOptions returns seed-0 options without an observer.
func DefaultOptions() Options {
	return Options{
		Seed: 0,
	}
}

// WithSeed sets the seed of the default random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects a random source, e.g. a scripted one in tests or a
// *math/rand.Rand. The engine is its only user for the duration of a run.
// Panics if r is nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(o *Options) {
		o.Rand = r
	}
}

// WithObserver registers a per-generation callback.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// gatherOptions applies opts on top of DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
