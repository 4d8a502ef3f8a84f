// Package pauli is an exact, allocation-light toolkit for the algebra of
// quantum Pauli operators — single-qubit generators, multi-qubit tensor
// products, and the {1, -1, i, -i} global phase group.
//
// 🚀 What is pauli?
//
//	A pure-Go library for stabilizer-code and error-correction tooling:
//		• Single-qubit algebra: I, X, Y, Z with phase-free and phase-aware products
//		• Exact phases: the cyclic group {1, -1, i, -i} with closed-form arithmetic
//		• Sparse operators: sorted position/value pairs for low-weight, large codes
//		• Dense operators: full Pauli words carrying an explicit global phase
//		• Symplectic bridge: GF(2) (x|z) vectors and stabilizer-matrix export
//		• Text & wire forms: Pauli-word parsing/printing and msgpack round-trips
//
// ✨ Why choose pauli?
//
//   - Exact by construction – no floating-point phases, no drift, ever
//   - Immutable values – every operation returns a fresh operator, safe to share
//   - Merge-scan algorithms – commutation and products in O(weight), not O(length)
//   - Typed sentinel errors – match with errors.Is, no panics on user input
//
// Everything is organized under six subpackages:
//
//	core/       — Pauli and Phase primitives and their group multiplication
//	sparse/     — sparse multi-qubit operators (non-identity positions only)
//	dense/      — dense multi-qubit operators with a global phase
//	paulitext/  — human-readable formatting and parsing of operators
//	symplectic/ — binary symplectic vectors and gonum matrix export
//	codec/      — msgpack serialization preserving all invariants
//
// Quick taste:
//
//	op, _ := sparse.New(5, []int{1, 2, 3}, []core.Pauli{core.X, core.Y, core.Z})
//	stabilizer, _ := sparse.New(5, []int{2, 3, 4}, []core.Pauli{core.X, core.X, core.X})
//	fmt.Println(op.CommutesWith(stabilizer)) // true
//
// Dive into README.md and the package examples for full usage patterns.
//
//	go get github.com/katalvlaran/pauli
package pauli
