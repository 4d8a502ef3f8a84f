// Package dense provides a multi-qubit Pauli operator representation
// storing a full-length vector of single-qubit Paulis together with an
// explicit global phase from {1, -1, i, -i}.
//
// What
//
//   - Operator: a fixed-length ordered sequence of core.Pauli values
//     (identity entries materialized) plus one core.Phase.
//   - Construction from a Pauli sequence (phase defaults to 1) or from
//     an explicit (phase, sequence) pair; the length is fixed once
//     constructed and no implicit resizing or padding ever occurs.
//   - Commutation testing by position-wise anticommutation parity across
//     the full vectors.
//   - Operator, phase-scalar and Pauli-scalar multiplication, all
//     accumulating the exact global phase through the phase-aware
//     single-qubit table.
//
// Why
//
//	Where package sparse deliberately discards the global phase for
//	stabilizer bookkeeping, dense tracking matters when composing
//	physical gate sequences: X·Y = i·Z is not the same gate as Z. The
//	dense form keeps that bookkeeping closed-form and exact.
//
// Fail-fast contract
//
//	Binary operations (CommutesWith, AnticommutesWith, Mul) panic on
//	length mismatch. Dense operators are expected to be pre-validated at
//	construction boundaries, so differing lengths are a programmer
//	error, not a recoverable condition — the recoverable path is the
//	sparse representation.
//
// Complexity (n = length)
//
//   - Construction, Mul, commutation: O(n)
//   - Accessors: O(1); derived position listings: O(n)
//
// Usage
//
//	first := dense.NewWithPhase(core.Imag(), []core.Pauli{core.I, core.X, core.Y, core.Z})
//	second := dense.New([]core.Pauli{core.X, core.Z, core.X, core.Z})
//	product := first.Mul(second) // -i·XYZI
package dense
