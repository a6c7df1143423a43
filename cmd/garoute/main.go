// Command garoute optimizes closed delivery tours with a genetic algorithm.
//
// Usage:
//
//	garoute [flags] run.yaml [more.yaml ...]
//
// Every run file is optimized independently; with -jobs > 1 several files are
// processed at the same time. Results are printed in argument order.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/garoute/internal/config"
	"github.com/katalvlaran/garoute/internal/metrics"
	"github.com/katalvlaran/garoute/tsp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "garoute:", err)
		os.Exit(1)
	}
}

var errDuplicateName = errors.New("duplicate run name")

// options are the parsed command-line flags.
type options struct {
	configPath string
	seed       int64
	seedSet    bool
	jobs       int
	logFormat  string
	logLevel   string
	metricsOut string
	files      []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("garoute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "run file (YAML); may also be given as arguments")
	fs.Int64Var(&o.seed, "seed", 0, "base seed; overrides the seeds of the run files")
	fs.IntVar(&o.jobs, "jobs", 1, "run files optimized at the same time")
	fs.StringVar(&o.logFormat, "log-format", "text", "log format: text or json")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&o.metricsOut, "metrics-out", "", "write Prometheus metrics to this file when done")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})

	if o.configPath != "" {
		o.files = append(o.files, o.configPath)
	}
	o.files = append(o.files, fs.Args()...)
	if len(o.files) == 0 {
		return o, errors.New("no run file given")
	}
	if o.jobs < 1 {
		return o, fmt.Errorf("-jobs must be >= 1, got %d", o.jobs)
	}

	return o, nil
}

func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("-log-format: unknown format %q", format)
	}
}

// job is one run file and what came out of it.
type job struct {
	file    config.File
	seed    int64
	results []tsp.Result
	took    time.Duration
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(stderr, o.logFormat, o.logLevel)
	if err != nil {
		return err
	}

	jobs := make([]*job, len(o.files))
	byName := make(map[string]string, len(o.files))
	for i, path := range o.files {
		f, err := config.Load(path)
		if err != nil {
			return err
		}
		// names label the metrics series, so two runs must not share one
		if prev, ok := byName[f.Name]; ok {
			return fmt.Errorf("%s and %s: %w %q", prev, path, errDuplicateName, f.Name)
		}
		byName[f.Name] = path
		jobs[i] = &job{file: f, seed: seedFor(o, f, i)}
	}

	collector := metrics.New()
	p := pool.New().WithMaxGoroutines(o.jobs).WithErrors().WithContext(ctx).WithCancelOnError()
	for _, j := range jobs {
		j := j
		p.Go(func(ctx context.Context) error {
			return optimize(ctx, j, collector, logger)
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	for _, j := range jobs {
		printResults(stdout, j, len(jobs) > 1)
	}

	if o.metricsOut != "" {
		if err := collector.WriteTextfile(o.metricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", "path", o.metricsOut)
	}

	return nil
}

// seedFor picks the seed of run i: the -seed flag wins (derived per run when
// there are several), then the run file's own seed.
func seedFor(o options, f config.File, i int) int64 {
	switch {
	case o.seedSet && len(o.files) == 1:
		return o.seed
	case o.seedSet:
		return tsp.DeriveSeed(o.seed, uint64(i))
	default:
		return f.Seed
	}
}

func optimize(ctx context.Context, j *job, collector *metrics.Collector, logger *slog.Logger) error {
	log := logger.With("run", j.file.Name)

	dist, err := j.file.DistanceMatrix()
	if err != nil {
		return fmt.Errorf("%s: %w", j.file.Name, err)
	}
	cfg := j.file.TSPConfig()

	progress := tsp.ObserverFunc(func(s tsp.GenerationStats) {
		log.Debug("generation",
			"gen", s.Generation,
			"best_distance", s.Best.Distance,
			"mean_fitness", s.MeanFitness,
			"stddev_fitness", s.StdDevFitness,
		)
	})
	engine, err := tsp.NewEngine(dist, cfg,
		tsp.WithSeed(j.seed),
		tsp.WithObserver(tsp.MultiObserver(collector.Observer(j.file.Name), progress)),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", j.file.Name, err)
	}

	log.Info("optimizing",
		"nodes", engine.Nodes(),
		"population", cfg.PopulationSize,
		"generations", cfg.Generations,
		"seed", j.seed,
	)
	start := time.Now()
	j.results, err = engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", j.file.Name, err)
	}
	j.took = time.Since(start)
	log.Info("done", "best_distance", j.results[0].Distance, "took", j.took)

	return nil
}

func printResults(w io.Writer, j *job, header bool) {
	if header {
		fmt.Fprintf(w, "== %s ==\n", j.file.Name)
	}
	for i, r := range j.results {
		fmt.Fprintf(w, "Sequence %d: %v\n", i+1, tsp.CanonicalRotation(r.Tour))
		fmt.Fprintf(w, "Fitness: %g\n", r.Fitness)
		fmt.Fprintf(w, "Distance: %g (generation %d)\n", r.Distance, r.Generation)
	}
}
