// Package config loads garoute run files.
//
// A run file is YAML. It names exactly one distance source (an inline matrix,
// a list of points, a road network of edges, or a TSPLIB file) plus the
// algorithm parameters; omitted parameters fall back to tsp.DefaultConfig.
//
//	name: depot-4
//	matrix:
//	  - [0, 2, 5, 7]
//	  - [2, 0, 4, 8]
//	  - [5, 4, 0, 3]
//	  - [7, 8, 3, 0]
//	population_size: 20
//	num_generations: 50
//	elitism_rate: 0.1
//	mutation_rate: 0.02
//	num_best_sequences: 3
//	seed: 42
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/garoute/matrix"
	"github.com/katalvlaran/garoute/tsp"
)

var (
	// ErrNoSource is returned when a run file names no distance source.
	ErrNoSource = errors.New("config: one of matrix, points, edges or tsplib is required")

	// ErrManySources is returned when a run file names more than one source.
	ErrManySources = errors.New("config: matrix, points, edges and tsplib are mutually exclusive")
)

// File is the decoded form of a run file.
type File struct {
	// Name labels the run in logs and metrics. Load defaults it to the file
	// name without extension.
	Name string `yaml:"name"`

	Matrix [][]float64    `yaml:"matrix"`
	Points []matrix.Point `yaml:"points"`
	TSPLIB string         `yaml:"tsplib"`

	// Edges describe a road network; the tour costs are its shortest paths.
	// Nodes defaults to the highest endpoint + 1. Edges are two-way unless
	// Directed is set.
	Edges    []matrix.Edge `yaml:"edges"`
	Nodes    int           `yaml:"nodes"`
	Directed bool          `yaml:"directed"`

	PopulationSize   int     `yaml:"population_size"`
	NumGenerations   int     `yaml:"num_generations"`
	ElitismRate      float64 `yaml:"elitism_rate"`
	MutationRate     float64 `yaml:"mutation_rate"`
	NumBestSequences int     `yaml:"num_best_sequences"`

	// Seed 0 selects the package default stream.
	Seed int64 `yaml:"seed"`

	dir string // base for a relative TSPLIB path
}

// Default returns a File holding the package defaults and no source.
func Default() File {
	d := tsp.DefaultConfig()

	return File{
		PopulationSize:   d.PopulationSize,
		NumGenerations:   d.Generations,
		ElitismRate:      d.ElitismRate,
		MutationRate:     d.MutationRate,
		NumBestSequences: d.BestCount,
	}
}

// Parse decodes a run file on top of Default. Unknown keys are rejected.
// A relative tsplib path is resolved against the working directory.
func Parse(r io.Reader) (File, error) {
	f := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("config: decode: %w", err)
	}

	return f, nil
}

// Load reads and parses the run file at path. A relative tsplib path is
// resolved against the directory of path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	if f.Name == "" {
		base := filepath.Base(path)
		f.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return f, nil
}

// TSPConfig returns the algorithm parameters of f. Validation is left to the
// tsp package so every caller sees the same sentinels.
func (f File) TSPConfig() tsp.Config {
	return tsp.Config{
		PopulationSize: f.PopulationSize,
		Generations:    f.NumGenerations,
		ElitismRate:    f.ElitismRate,
		MutationRate:   f.MutationRate,
		BestCount:      f.NumBestSequences,
	}
}

// DistanceMatrix builds the matrix from the single source named by f.
func (f File) DistanceMatrix() (*matrix.Dense, error) {
	var sources int
	if len(f.Matrix) > 0 {
		sources++
	}
	if len(f.Points) > 0 {
		sources++
	}
	if len(f.Edges) > 0 {
		sources++
	}
	if f.TSPLIB != "" {
		sources++
	}
	switch {
	case sources == 0:
		return nil, ErrNoSource
	case sources > 1:
		return nil, ErrManySources
	}

	switch {
	case len(f.Matrix) > 0:
		return matrix.NewDenseFromRows(f.Matrix)
	case len(f.Points) > 0:
		return matrix.Euclidean(f.Points)
	case len(f.Edges) > 0:
		return matrix.RoadNetwork(f.nodeCount(), f.Edges, f.Directed)
	}

	path := f.TSPLIB
	if !filepath.IsAbs(path) && f.dir != "" {
		path = filepath.Join(f.dir, path)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()

	inst, err := ReadTSPLIB(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst.Matrix, nil
}

func (f File) nodeCount() int {
	if f.Nodes > 0 {
		return f.Nodes
	}
	n := 0
	for _, e := range f.Edges {
		n = max(n, e.From+1, e.To+1)
	}

	return n
}
