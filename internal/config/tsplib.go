package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/garoute/matrix"
)

var (
	// ErrTSPLIB reports malformed TSPLIB input.
	ErrTSPLIB = errors.New("config: malformed TSPLIB data")

	// ErrTSPLIBUnsupported reports a valid but unsupported edge weight kind.
	ErrTSPLIBUnsupported = errors.New("config: unsupported TSPLIB edge weights")
)

// MaxTSPLIBDimension bounds DIMENSION; the optimizer holds a dense n×n
// matrix, which is already about 800 MB at this size.
const MaxTSPLIBDimension = 10000

// Instance is a TSPLIB problem reduced to what the optimizer needs.
type Instance struct {
	Name      string
	Dimension int
	Matrix    *matrix.Dense
}

const (
	secNone = iota
	secWeights
	secCoords
	secSkip
)

// ReadTSPLIB parses a TSPLIB file with explicit FULL_MATRIX edge weights or
// EUC_2D node coordinates. EUC_2D distances are rounded to the nearest
// integer as TSPLIB defines them. DIMENSION may not exceed
// MaxTSPLIBDimension; storage grows with the data actually read.
func ReadTSPLIB(r io.Reader) (*Instance, error) {
	var (
		sc      = bufio.NewScanner(r)
		inst    Instance
		wType   string
		wFormat string
		section = secNone
		weights []float64
		coords  map[int]matrix.Point // by 1-based node id
		line    int
	)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text == "EOF" {
			break
		}

		if key, ok := sectionName(text); ok {
			switch key {
			case "EDGE_WEIGHT_SECTION":
				section = secWeights
			case "NODE_COORD_SECTION":
				if inst.Dimension == 0 {
					return nil, fmt.Errorf("line %d: NODE_COORD_SECTION before DIMENSION: %w", line, ErrTSPLIB)
				}
				coords = make(map[int]matrix.Point)
				section = secCoords
			default:
				section = secSkip
			}
			continue
		}

		if key, val, ok := strings.Cut(text, ":"); ok && section == secNone {
			val = strings.TrimSpace(val)
			switch strings.TrimSpace(key) {
			case "NAME":
				inst.Name = val
			case "DIMENSION":
				n, err := strconv.Atoi(val)
				if err != nil || n < 1 {
					return nil, fmt.Errorf("line %d: DIMENSION %q: %w", line, val, ErrTSPLIB)
				}
				if n > MaxTSPLIBDimension {
					return nil, fmt.Errorf("line %d: DIMENSION %d exceeds %d: %w",
						line, n, MaxTSPLIBDimension, ErrTSPLIBUnsupported)
				}
				inst.Dimension = n
			case "EDGE_WEIGHT_TYPE":
				wType = val
			case "EDGE_WEIGHT_FORMAT":
				wFormat = val
			}
			continue
		}

		switch section {
		case secWeights:
			for _, tok := range strings.Fields(text) {
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: weight %q: %w", line, tok, ErrTSPLIB)
				}
				weights = append(weights, v)
			}
			if inst.Dimension > 0 && len(weights) > inst.Dimension*inst.Dimension {
				return nil, fmt.Errorf("line %d: more than %d weights: %w",
					line, inst.Dimension*inst.Dimension, ErrTSPLIB)
			}
		case secCoords:
			if err := readCoord(text, inst.Dimension, coords); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case secSkip:
		default:
			return nil, fmt.Errorf("line %d: unexpected %q: %w", line, text, ErrTSPLIB)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("config: read TSPLIB: %w", err)
	}
	if inst.Dimension == 0 {
		return nil, fmt.Errorf("missing DIMENSION: %w", ErrTSPLIB)
	}

	var err error
	switch wType {
	case "EXPLICIT":
		if wFormat != "FULL_MATRIX" {
			return nil, fmt.Errorf("EDGE_WEIGHT_FORMAT %q: %w", wFormat, ErrTSPLIBUnsupported)
		}
		inst.Matrix, err = fullMatrix(inst.Dimension, weights)
	case "EUC_2D":
		points := make([]matrix.Point, inst.Dimension)
		for i := range points {
			p, ok := coords[i+1]
			if !ok {
				return nil, fmt.Errorf("node %d has no coordinates: %w", i+1, ErrTSPLIB)
			}
			points[i] = p
		}
		inst.Matrix, err = euc2D(points)
	default:
		return nil, fmt.Errorf("EDGE_WEIGHT_TYPE %q: %w", wType, ErrTSPLIBUnsupported)
	}
	if err != nil {
		return nil, err
	}

	return &inst, nil
}

// sectionName reports whether text opens a data section ("XXX_SECTION",
// optionally followed by a colon).
func sectionName(text string) (string, bool) {
	key := strings.TrimSpace(strings.TrimSuffix(text, ":"))
	if strings.HasSuffix(key, "_SECTION") && !strings.ContainsAny(key, " \t") {
		return key, true
	}

	return "", false
}

// readCoord parses "id x y" into coords[id], 1 <= id <= n.
func readCoord(text string, n int, coords map[int]matrix.Point) error {
	f := strings.Fields(text)
	if len(f) != 3 {
		return fmt.Errorf("coordinate line %q: %w", text, ErrTSPLIB)
	}
	id, err := strconv.Atoi(f[0])
	if err != nil || id < 1 || id > n {
		return fmt.Errorf("node id %q: %w", f[0], ErrTSPLIB)
	}
	x, errX := strconv.ParseFloat(f[1], 64)
	y, errY := strconv.ParseFloat(f[2], 64)
	if errX != nil || errY != nil {
		return fmt.Errorf("coordinates of node %d: %w", id, ErrTSPLIB)
	}
	coords[id] = matrix.Point{X: x, Y: y}

	return nil
}

func fullMatrix(n int, weights []float64) (*matrix.Dense, error) {
	if len(weights) != n*n {
		return nil, fmt.Errorf("FULL_MATRIX has %d weights, want %d: %w", len(weights), n*n, ErrTSPLIB)
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = weights[i*n : (i+1)*n]
	}

	return matrix.NewDenseFromRows(rows)
}

func euc2D(coords []matrix.Point) (*matrix.Dense, error) {
	m, err := matrix.Euclidean(coords)
	if err != nil {
		return nil, err
	}
	var (
		n = len(coords)
		v float64
	)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = m.Set(i, j, math.Round(v)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
