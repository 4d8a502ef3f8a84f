// Package core provides the single-qubit primitives of the Pauli algebra:
// the Pauli enumeration {I, X, Y, Z} and the Phase group {1, -1, i, -i}.
//
// What
//
//   - Pauli: a closed 4-value enumeration forming a multiplicative group
//     with I as identity and every non-identity element self-inverse.
//   - Phase: the cyclic group of order 4 generated by i, stored as an
//     exact Gaussian-integer pair — never a floating-point complex.
//   - Phase-free multiplication (Mul) for contexts that ignore the global
//     phase, e.g. stabilizer-code bookkeeping.
//   - Phase-aware multiplication (MulWithPhase) returning the exact
//     correction phase alongside the product, e.g. X·Y = (i, Z).
//   - Commutation predicates: two Paulis commute iff either is I or they
//     are equal.
//
// Why
//
//	Every multi-qubit representation in this module (sparse, dense)
//	reduces its algebra position-wise to these two types. Keeping the
//	single-qubit tables total, exact and exhaustively testable makes the
//	higher-level invariants (phase closure, commutation parity) trivial
//	to verify.
//
// Determinism & Exactness
//
//	All operations are total lookup tables over at most 16 ordered pairs.
//	Phase multiplication is component-wise Gaussian-integer arithmetic
//	restricted to the four units; the group is closed, so no operation
//	can ever produce a value outside {1, -1, i, -i}.
//
// Complexity
//
//   - Time:   O(1) for every operation
//   - Memory: zero allocations; both types are copyable by value
//
// Usage
//
//	p := core.X.Mul(core.Y)                // Z
//	ph, q := core.X.MulWithPhase(core.Y)   // (i, Z)
//	core.X.CommutesWith(core.I)            // true
//	core.Y.AnticommutesWith(core.Z)        // true
//	core.MinusOne().Mul(core.Imag())       // -i
package core
