package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pauli/core"
)

// Operator is a dense multi-qubit Pauli operator: a global phase and a
// fixed-length list of single-qubit Paulis, identities included.
//
// Operators are immutable once built; every operation returns a fresh
// instance, so values may be shared freely across goroutines.
type Operator struct {
	paulis []core.Pauli
	phase  core.Phase
}

// New creates an operator from the given Paulis with a phase of 1.
// The slice is copied, never aliased.
func New(paulis []core.Pauli) *Operator {
	return NewWithPhase(core.One(), paulis)
}

// NewWithPhase creates an operator from the given phase and Paulis.
// The slice is copied, never aliased.
func NewWithPhase(phase core.Phase, paulis []core.Pauli) *Operator {
	owned := make([]core.Pauli, len(paulis))
	copy(owned, paulis)

	return &Operator{paulis: owned, phase: phase}
}

// Empty creates an operator of zero length with phase 1.
func Empty() *Operator {
	return &Operator{phase: core.One()}
}

// Len returns the qubit count of the operator.
func (op *Operator) Len() int {
	return len(op.paulis)
}

// IsEmpty reports whether the operator contains no Paulis.
func (op *Operator) IsEmpty() bool {
	return len(op.paulis) == 0
}

// Phase returns the global phase of the operator.
func (op *Operator) Phase() core.Phase {
	return op.phase
}

// At returns the Pauli at the given position.
// Panics if position is outside [0, Len()).
func (op *Operator) At(position int) core.Pauli {
	return op.paulis[position]
}

// Paulis returns all single-qubit Paulis in order, identities included.
// The slice is a copy owned by the caller.
func (op *Operator) Paulis() []core.Pauli {
	paulis := make([]core.Pauli, len(op.paulis))
	copy(paulis, op.paulis)

	return paulis
}

// NonTrivialPositions returns the positions holding non-identity
// Paulis, in ascending order.
func (op *Operator) NonTrivialPositions() []int {
	positions := make([]int, 0, len(op.paulis))
	for pos, p := range op.paulis {
		if p.IsNonTrivial() {
			positions = append(positions, pos)
		}
	}

	return positions
}

// NonTrivialPaulis returns the (position, Pauli) pairs of non-identity
// entries in ascending position order.
func (op *Operator) NonTrivialPaulis() []PositionPauli {
	pairs := make([]PositionPauli, 0, len(op.paulis))
	for pos, p := range op.paulis {
		if p.IsNonTrivial() {
			pairs = append(pairs, PositionPauli{Position: pos, Pauli: p})
		}
	}

	return pairs
}

// PositionPauli is one (position, Pauli) pair of an operator's support.
type PositionPauli struct {
	Position int
	Pauli    core.Pauli
}

// Weight returns the number of non-identity entries.
func (op *Operator) Weight() int {
	var w int
	for _, p := range op.paulis {
		if p.IsNonTrivial() {
			w++
		}
	}

	return w
}

// CommutesWith reports whether op and other commute: the count of
// position-wise anticommuting pairs across the full vectors is even.
// Panics if the operators have different lengths (no implicit
// identity padding occurs in this representation).
// Complexity: O(n).
func (op *Operator) CommutesWith(other *Operator) bool {
	assertSameLength(op, other)
	var anticommuting int
	for pos, p := range op.paulis {
		if p.AnticommutesWith(other.paulis[pos]) {
			anticommuting++
		}
	}

	return anticommuting%2 == 0
}

// AnticommutesWith reports whether op and other anticommute.
// Panics if the operators have different lengths.
func (op *Operator) AnticommutesWith(other *Operator) bool {
	return !op.CommutesWith(other)
}

// Mul returns the product op·other. Each position is multiplied through
// the phase-aware single-qubit table; the result's phase is the
// accumulated per-position phase times both operands' phases.
// Panics if the operators have different lengths.
// Complexity: O(n).
func (op *Operator) Mul(other *Operator) *Operator {
	assertSameLength(op, other)
	total := core.One()
	paulis := make([]core.Pauli, len(op.paulis))
	for pos, p := range op.paulis {
		phase, product := p.MulWithPhase(other.paulis[pos])
		paulis[pos] = product
		total = total.Mul(phase)
	}

	return &Operator{paulis: paulis, phase: total.Mul(op.phase).Mul(other.phase)}
}

// MulPhase returns a new operator with an identical Pauli sequence and
// the phase multiplied by the given phase. Scalar phase multiplication
// is commutative, so sidedness does not matter.
func (op *Operator) MulPhase(phase core.Phase) *Operator {
	return &Operator{paulis: op.Paulis(), phase: op.phase.Mul(phase)}
}

// MulPauli applies the single given Pauli to every position through the
// phase-aware table, folding all per-position phases into the
// operator's phase.
// Complexity: O(n).
func (op *Operator) MulPauli(pauli core.Pauli) *Operator {
	total := core.One()
	paulis := make([]core.Pauli, len(op.paulis))
	for pos, p := range op.paulis {
		phase, product := p.MulWithPhase(pauli)
		paulis[pos] = product
		total = total.Mul(phase)
	}

	return &Operator{paulis: paulis, phase: op.phase.Mul(total)}
}

// Equal reports structural equality: same phase and same Pauli
// sequence.
func (op *Operator) Equal(other *Operator) bool {
	if op.phase != other.phase || len(op.paulis) != len(other.paulis) {
		return false
	}
	for pos, p := range op.paulis {
		if p != other.paulis[pos] {
			return false
		}
	}

	return true
}

// String renders the operator as phase·word, e.g. "-i·XIYZ".
// A phase of 1 is omitted; the empty operator renders its phase only.
func (op *Operator) String() string {
	var sb strings.Builder
	if op.phase != core.One() || len(op.paulis) == 0 {
		sb.WriteString(op.phase.String())
		if len(op.paulis) > 0 {
			sb.WriteString("·")
		}
	}
	for _, p := range op.paulis {
		sb.WriteString(p.String())
	}

	return sb.String()
}

// assertSameLength enforces the fail-fast dense length contract.
func assertSameLength(first, second *Operator) {
	if first.Len() != second.Len() {
		panic(fmt.Sprintf("dense: operators have different lengths %d and %d", first.Len(), second.Len()))
	}
}
