// Package symplectic maps Pauli operators onto their binary symplectic
// representation over GF(2), the standard form consumed by
// stabilizer-code tooling.
//
// What
//
//   - Vector: the (x|z) bit pair of one operator — bit x[i] is set when
//     position i carries X or Y, bit z[i] when it carries Z or Y
//     (Y = X·Z sets both).
//   - Commutation via the symplectic inner product: two operators
//     commute iff Σ x1[i]·z2[i] + z1[i]·x2[i] ≡ 0 (mod 2), which agrees
//     with the operator-level anticommutation parity by construction.
//   - Reconstruction back to a sparse operator (ToSparse).
//   - Matrix export: a set of equal-length operators stacked into a
//     gonum mat.Dense of 0/1 entries with 2·length columns (x block
//     then z block) — the shape of stabilizer and parity-check
//     matrices — plus the pairwise commutation Gram matrix.
//
// Why
//
//	The symplectic picture turns commutation questions into GF(2)
//	linear algebra: finding logical operators, measuring stabilizer
//	ranks, checking group membership. Exporting to gonum hands those
//	matrix computations to numeric tooling without re-deriving the
//	representation each time.
//
// Complexity (n = length, k = operator count)
//
//   - FromSparse: O(n); Commutes: O(n); ToSparse: O(n)
//   - Matrix: O(k·n); GramMatrix: O(k²·n)
//
// Usage
//
//	v := symplectic.FromSparse(op)
//	w := symplectic.FromSparse(other)
//	ok, err := v.Commutes(w)
//	m, err := symplectic.Matrix(stabilizers) // rows: operators, cols: (x|z)
package symplectic
