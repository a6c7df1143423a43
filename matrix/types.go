// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface consumed by the tour optimizer.
// Errors live in errors.go, the concrete row-major storage in dense.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Point is a node position in the plane, used to derive Euclidean cost matrices.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Edge is a road segment of cost Cost between nodes From and To.
type Edge struct {
	From int     `yaml:"from" json:"from"`
	To   int     `yaml:"to" json:"to"`
	Cost float64 `yaml:"cost" json:"cost"`
}
