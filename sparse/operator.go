package sparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/pauli/core"
)

// Operator is a multi-qubit Pauli operator optimized for sparse
// operations.
//
// A Pauli operator is a string of Paulis such as IXIX or XIYIZ; we
// usually only care about the non-identity positions and refer to the
// previous operators as X_1 X_3 and X_0 Y_2 Z_4. An Operator stores the
// declared qubit count and the sorted (position, Pauli) pairs of its
// non-identity entries; identity on every other position is implicit.
//
// Operators are immutable once built: every derived operator is a new
// canonical instance, so values may be shared freely across goroutines.
// The global phase is deliberately not tracked.
type Operator struct {
	length    int
	positions []int
	paulis    []core.Pauli
}

// Entry is one (position, Pauli) pair of an operator's support.
type Entry struct {
	Position int
	Pauli    core.Pauli
}

// New builds a validated Operator of the given length from parallel
// position and Pauli slices.
//
// New is the single validation point of the package:
//   - ErrLengthMismatch when the two slices differ in count;
//   - ErrOutOfBound when any position is negative or ≥ length.
//
// Inputs are copied and canonicalized: explicit identities are dropped,
// entries are sorted by position, and entries sharing a position are
// combined via the phase-free single-qubit product (identity results
// are dropped as well). Derived operators produced by Mul, XPart, etc.
// preserve the same invariants without re-validating.
// Complexity: O(w log w) in the number of entries.
func New(length int, positions []int, paulis []core.Pauli) (*Operator, error) {
	if len(positions) != len(paulis) {
		return nil, fmt.Errorf("%d positions for %d paulis: %w", len(positions), len(paulis), ErrLengthMismatch)
	}
	for _, pos := range positions {
		if pos < 0 || pos >= length {
			return nil, fmt.Errorf("position %d with length %d: %w", pos, length, ErrOutOfBound)
		}
	}

	entries := make([]Entry, 0, len(positions))
	for i, pos := range positions {
		if paulis[i].IsNonTrivial() {
			entries = append(entries, Entry{Position: pos, Pauli: paulis[i]})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })

	op := &Operator{
		length:    length,
		positions: make([]int, 0, len(entries)),
		paulis:    make([]core.Pauli, 0, len(entries)),
	}
	for _, e := range entries {
		last := len(op.positions) - 1
		if last >= 0 && op.positions[last] == e.Position {
			// Duplicate position: fold into the existing entry.
			product := op.paulis[last].Mul(e.Pauli)
			if product.IsTrivial() {
				op.positions = op.positions[:last]
				op.paulis = op.paulis[:last]
			} else {
				op.paulis[last] = product
			}

			continue
		}
		op.positions = append(op.positions, e.Position)
		op.paulis = append(op.paulis, e.Pauli)
	}

	return op, nil
}

// MustNew is like New but panics on invalid input.
// Reserved for inputs known to satisfy the construction contract.
func MustNew(length int, positions []int, paulis []core.Pauli) *Operator {
	op, err := New(length, positions, paulis)
	if err != nil {
		panic(fmt.Sprintf("sparse: invalid operator: %v", err))
	}

	return op
}

// Empty returns the Pauli operator of zero length.
func Empty() *Operator {
	return &Operator{}
}

// Identity returns the all-identity operator of the given length.
func Identity(length int) *Operator {
	return &Operator{length: length}
}

// Len returns the declared qubit count of the operator.
func (op *Operator) Len() int {
	return op.length
}

// Weight returns the number of non-identity entries.
func (op *Operator) Weight() int {
	return len(op.positions)
}

// Get returns the Pauli at the given position, with I for positions
// inside the declared length that hold no entry. The second result is
// false only when position is outside [0, Len()).
// Complexity: O(log w).
func (op *Operator) Get(position int) (core.Pauli, bool) {
	if position < 0 || position >= op.length {
		return core.I, false
	}
	idx := sort.SearchInts(op.positions, position)
	if idx < len(op.positions) && op.positions[idx] == position {
		return op.paulis[idx], true
	}

	return core.I, true
}

// NonTrivialPositions returns the positions of non-identity entries in
// ascending order. The slice is a copy owned by the caller.
func (op *Operator) NonTrivialPositions() []int {
	positions := make([]int, len(op.positions))
	copy(positions, op.positions)

	return positions
}

// NonTrivialPaulis returns the non-identity Pauli values ordered by
// their positions. The slice is a copy owned by the caller.
func (op *Operator) NonTrivialPaulis() []core.Pauli {
	paulis := make([]core.Pauli, len(op.paulis))
	copy(paulis, op.paulis)

	return paulis
}

// Entries returns the (position, Pauli) pairs of the operator's support
// in ascending position order. The slice is a copy owned by the caller.
func (op *Operator) Entries() []Entry {
	entries := make([]Entry, len(op.positions))
	for i, pos := range op.positions {
		entries[i] = Entry{Position: pos, Pauli: op.paulis[i]}
	}

	return entries
}

// CommutesWith reports whether op and other commute.
//
// Both sorted position lists are merge-scanned; at every position
// present in both operators the single-qubit anticommutation is tested,
// and the operators commute iff the number of anticommuting overlaps is
// even. Positions present in only one operand never contribute (the
// missing side is implicitly I, which commutes with everything), so the
// two operands may have different declared lengths.
// Complexity: O(w1 + w2).
func (op *Operator) CommutesWith(other *Operator) bool {
	var i, j, anticommuting int
	for i < len(op.positions) && j < len(other.positions) {
		switch {
		case op.positions[i] < other.positions[j]:
			i++
		case op.positions[i] > other.positions[j]:
			j++
		default:
			if op.paulis[i].AnticommutesWith(other.paulis[j]) {
				anticommuting++
			}
			i++
			j++
		}
	}

	return anticommuting%2 == 0
}

// AnticommutesWith reports whether op and other anticommute.
func (op *Operator) AnticommutesWith(other *Operator) bool {
	return !op.CommutesWith(other)
}

// Mul returns the element-wise product op·other, ignoring the global
// phase. Unlike commutation, multiplication requires equal declared
// lengths and returns ErrLengthMismatch (wrapped with both lengths)
// otherwise.
//
// The sorted position lists are merged: entries present in only one
// operand carry through unchanged, entries present in both are replaced
// by their phase-free product, and identity products are dropped, so
// the result is canonical by construction.
// Complexity: O(w1 + w2).
func (op *Operator) Mul(other *Operator) (*Operator, error) {
	if op.length != other.length {
		return nil, fmt.Errorf("lengths %d and %d: %w", op.length, other.length, ErrLengthMismatch)
	}

	positions := make([]int, 0, len(op.positions)+len(other.positions))
	paulis := make([]core.Pauli, 0, len(op.positions)+len(other.positions))
	var i, j int
	for i < len(op.positions) || j < len(other.positions) {
		switch {
		case j >= len(other.positions) || (i < len(op.positions) && op.positions[i] < other.positions[j]):
			positions = append(positions, op.positions[i])
			paulis = append(paulis, op.paulis[i])
			i++
		case i >= len(op.positions) || other.positions[j] < op.positions[i]:
			positions = append(positions, other.positions[j])
			paulis = append(paulis, other.paulis[j])
			j++
		default:
			if product := op.paulis[i].Mul(other.paulis[j]); product.IsNonTrivial() {
				positions = append(positions, op.positions[i])
				paulis = append(paulis, product)
			}
			i++
			j++
		}
	}

	return &Operator{length: op.length, positions: positions, paulis: paulis}, nil
}

// XPart returns the X component of the operator's symplectic
// decomposition: every entry that is not exactly Z surfaces as X (so X
// and Y both map to X) and Z entries are dropped.
func (op *Operator) XPart() *Operator {
	return op.part(core.Z, core.X)
}

// ZPart returns the Z component of the operator's symplectic
// decomposition: every entry that is not exactly X surfaces as Z (so Y
// and Z both map to Z) and X entries are dropped.
func (op *Operator) ZPart() *Operator {
	return op.part(core.X, core.Z)
}

// PartitionXZ returns (XPart, ZPart). Up to a phase, the product of the
// two parts is the original operator, the first containing only Xs and
// the second only Zs (Y = X·Z; the phase is not tracked here).
func (op *Operator) PartitionXZ() (*Operator, *Operator) {
	return op.XPart(), op.ZPart()
}

// part projects each entry differing from excluded onto keep.
func (op *Operator) part(excluded, keep core.Pauli) *Operator {
	positions := make([]int, 0, len(op.positions))
	paulis := make([]core.Pauli, 0, len(op.paulis))
	for i, p := range op.paulis {
		if p != excluded {
			positions = append(positions, op.positions[i])
			paulis = append(paulis, keep)
		}
	}

	return &Operator{length: op.length, positions: positions, paulis: paulis}
}

// RawPositions extracts the operator's backing position list for
// collaborators that persist or display the state. The slice is a copy.
func (op *Operator) RawPositions() []int {
	return op.NonTrivialPositions()
}

// RawPaulis extracts the operator's backing value list. The slice is a
// copy.
func (op *Operator) RawPaulis() []core.Pauli {
	return op.NonTrivialPaulis()
}

// Raw extracts both backing lists at once. Feeding them back through
// New reconstructs an equal operator.
func (op *Operator) Raw() ([]int, []core.Pauli) {
	return op.NonTrivialPositions(), op.NonTrivialPaulis()
}

// Equal reports structural equality: same length, same support, same
// values. Canonical form makes this a plain pairwise comparison.
func (op *Operator) Equal(other *Operator) bool {
	if op.length != other.length || len(op.positions) != len(other.positions) {
		return false
	}
	for i := range op.positions {
		if op.positions[i] != other.positions[i] || op.paulis[i] != other.paulis[i] {
			return false
		}
	}

	return true
}

// String renders the support as [(position, Pauli), ...].
func (op *Operator) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, pos := range op.positions {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d, %v)", pos, op.paulis[i])
	}
	sb.WriteByte(']')

	return sb.String()
}
