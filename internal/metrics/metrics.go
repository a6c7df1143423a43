// Package metrics exports optimizer progress as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/garoute/tsp"
)

// Collector holds the per-run optimizer metrics on its own registry. It is
// safe for concurrent use by several runs.
type Collector struct {
	// Registry is the dedicated registry every metric of c is registered on.
	Registry *prometheus.Registry

	Generations   *prometheus.CounterVec
	BestDistance  *prometheus.GaugeVec
	BestFitness   *prometheus.GaugeVec
	MeanFitness   *prometheus.GaugeVec
	StdDevFitness *prometheus.GaugeVec
	MeanDistance  *prometheus.GaugeVec
	BestGen       *prometheus.HistogramVec
}

// New creates a Collector with all metrics registered.
func New() *Collector {
	c := &Collector{
		Registry: prometheus.NewRegistry(),
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "garoute_generations_total", Help: "Generations evolved."},
			[]string{"run"},
		),
		BestDistance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "garoute_best_distance", Help: "Total distance of the best tour of the latest generation."},
			[]string{"run"},
		),
		BestFitness: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "garoute_best_fitness", Help: "Fitness of the best tour of the latest generation."},
			[]string{"run"},
		),
		MeanFitness: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "garoute_mean_fitness", Help: "Mean population fitness of the latest generation."},
			[]string{"run"},
		),
		StdDevFitness: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "garoute_fitness_stddev", Help: "Population fitness standard deviation of the latest generation."},
			[]string{"run"},
		),
		MeanDistance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "garoute_mean_distance", Help: "Mean tour distance of the latest generation."},
			[]string{"run"},
		),
		BestGen: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "garoute_best_distance_observed",
				Help:    "Per-generation best tour distances.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 20),
			},
			[]string{"run"},
		),
	}
	c.Registry.MustRegister(
		c.Generations,
		c.BestDistance,
		c.BestFitness,
		c.MeanFitness,
		c.StdDevFitness,
		c.MeanDistance,
		c.BestGen,
	)

	return c
}

// Observer returns a tsp.Observer that records every generation of the run
// labelled name.
func (c *Collector) Observer(name string) tsp.Observer {
	var (
		gens  = c.Generations.WithLabelValues(name)
		bd    = c.BestDistance.WithLabelValues(name)
		bf    = c.BestFitness.WithLabelValues(name)
		mf    = c.MeanFitness.WithLabelValues(name)
		sd    = c.StdDevFitness.WithLabelValues(name)
		md    = c.MeanDistance.WithLabelValues(name)
		bgObs = c.BestGen.WithLabelValues(name)
	)

	return tsp.ObserverFunc(func(s tsp.GenerationStats) {
		gens.Inc()
		bd.Set(s.Best.Distance)
		bf.Set(s.Best.Fitness)
		mf.Set(s.MeanFitness)
		sd.Set(s.StdDevFitness)
		md.Set(s.MeanDistance)
		bgObs.Observe(s.Best.Distance)
	})
}

// WriteTextfile writes the current state of c in the text exposition format,
// e.g. for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.Registry)
}
