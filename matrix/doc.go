// Package matrix provides the dense cost-matrix primitives used by the tour
// optimizer.
//
// The matrix package provides:
//
//   - Matrix, a small mutable interface (Rows/Cols/At/Set/Clone) that lets
//     callers plug their own storage into the optimizer.
//   - Dense, a row-major implementation with bounds-checked accessors and an
//     optional finite-value guard on Set.
//   - NewDenseFromRows, Euclidean and RoadNetwork builders for the common
//     inputs: a literal [][]float64 table, node coordinates in the plane, or a
//     sparse road network closed under shortest paths (Floyd–Warshall).
//   - Validators that enforce the cost-matrix contract (square, finite,
//     non-negative) and return plain sentinels for errors.Is matching.
//
// Asymmetric matrices are legal everywhere: m.At(i, j) is the cost of the
// directed hop i→j.
package matrix
