// Package tsp - tour utilities.
//
// Helpers operating purely on tour structure (index sequences), without
// depending on distance matrices:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CanonicalRotation: rotate a cyclic tour so node 0 leads.
//   - EqualCycles: equality of closed tours under rotation and reversal.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var i, v int
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// Duplicate also violates the bijection contract.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CanonicalRotation returns a copy of t rotated so that node 0 is first.
// The cyclic order is preserved, so the tour distance is unchanged.
// A tour without node 0 is returned as a plain copy.
//
// Complexity: O(n).
func CanonicalRotation(t Tour) Tour {
	var (
		n     = len(t)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if t[i] == 0 {
			pivot = i
			break
		}
	}
	if pivot <= 0 {
		return t.Clone()
	}
	out := make(Tour, n)
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}

	return out
}

// EqualCycles reports whether a and b describe the same undirected cycle:
// equal up to rotation, or up to rotation of the reversed order.
// On asymmetric matrices the reversed cycle may have a different cost.
//
// Complexity: O(n).
func EqualCycles(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	var n = len(a)
	if n == 0 {
		return true
	}
	ca := CanonicalRotation(a)
	cb := CanonicalRotation(b)

	var (
		fwd = true
		rev = true
		i   int
	)
	for i = 0; i < n; i++ {
		if ca[i] != cb[i] {
			fwd = false
		}
		// reversed cycle keeps ca[0] and walks backwards
		if ca[(n-i)%n] != cb[i] {
			rev = false
		}
	}

	return fwd || rev
}
