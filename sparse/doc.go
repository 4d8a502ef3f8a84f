// Package sparse provides a multi-qubit Pauli operator representation
// storing only non-identity positions, optimized for stabilizer-code
// work where qubit counts are large but operator weights stay low.
//
// What
//
//   - Operator: a declared length plus a sorted, unique-keyed association
//     list of (position, Pauli) pairs; identity on unlisted positions is
//     implicit and never materialized.
//   - Validated construction via New (sorts, drops identities, combines
//     duplicates) with typed sentinel errors; MustNew for pre-validated
//     inputs.
//   - Commutation testing by merge-scanning both sorted position lists
//     and counting anticommuting overlaps; operators commute iff that
//     count is even. Lengths need not match — positions present in only
//     one operand contribute nothing.
//   - Multiplication (equal lengths required) via a sorted merge that
//     carries singleton entries through and drops identity products, so
//     the result is canonical by construction.
//   - X/Z symplectic projections (XPart, ZPart, PartitionXZ) and raw
//     position/value extraction for serialization collaborators.
//
// Why
//
//	Error-correction codes routinely handle thousands of qubits while
//	individual stabilizers touch only a handful. All binary operations
//	here cost O(w1 + w2) in the operands' weights, independent of the
//	declared length, and the global phase is deliberately ignored
//	(irrelevant in stabilizer formalism — use package dense when it
//	matters).
//
// Determinism
//
//	Entries are kept sorted by position at all times, so iteration
//	order, String output and structural equality are fully reproducible.
//
// Complexity (w = weight, n = length)
//
//   - Construction: O(w log w) for the canonical sort
//   - CommutesWith / Mul: O(w1 + w2)
//   - Get: O(log w) binary search
//   - Memory: O(w) per operator, never O(n)
//
// Usage
//
//	op, err := sparse.New(5, []int{1, 2, 3}, []core.Pauli{core.X, core.Y, core.Z})
//	if err != nil {
//	    // handle ErrLengthMismatch or ErrOutOfBound
//	}
//	other := sparse.MustNew(5, []int{2, 3, 4}, []core.Pauli{core.X, core.X, core.X})
//	op.CommutesWith(other)   // true: two anticommuting overlaps, even parity
//	prod, err := op.Mul(other)
package sparse
