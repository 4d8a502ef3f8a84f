package symplectic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pauli/core"
	"github.com/katalvlaran/pauli/dense"
	"github.com/katalvlaran/pauli/sparse"
)

// Sentinel errors for symplectic conversions and exports.
var (
	// ErrLengthMismatch indicates operands or stacked operators of
	// differing lengths.
	ErrLengthMismatch = errors.New("symplectic: length mismatch")

	// ErrNoOperators indicates an empty operator set where at least one
	// operator is required.
	ErrNoOperators = errors.New("symplectic: no operators")
)

// Vector is the binary symplectic (x|z) representation of one Pauli
// operator: x[i] is set for X or Y at position i, z[i] for Z or Y.
// The global phase is not represented.
type Vector struct {
	x, z []bool
}

// FromSparse builds the symplectic vector of a sparse operator.
// Complexity: O(n) in the declared length.
func FromSparse(op *sparse.Operator) *Vector {
	v := &Vector{
		x: make([]bool, op.Len()),
		z: make([]bool, op.Len()),
	}
	for _, e := range op.Entries() {
		setBits(v, e.Position, e.Pauli)
	}

	return v
}

// FromDense builds the symplectic vector of a dense operator.
// The operator's phase is dropped.
func FromDense(op *dense.Operator) *Vector {
	v := &Vector{
		x: make([]bool, op.Len()),
		z: make([]bool, op.Len()),
	}
	for _, pair := range op.NonTrivialPaulis() {
		setBits(v, pair.Position, pair.Pauli)
	}

	return v
}

// setBits records one non-identity Pauli in the bit pair.
func setBits(v *Vector, position int, p core.Pauli) {
	switch p {
	case core.X:
		v.x[position] = true
	case core.Z:
		v.z[position] = true
	case core.Y:
		v.x[position] = true
		v.z[position] = true
	}
}

// Len returns the qubit count of the vector.
func (v *Vector) Len() int {
	return len(v.x)
}

// XBit reports whether the x bit is set at the given position.
func (v *Vector) XBit(position int) bool {
	return v.x[position]
}

// ZBit reports whether the z bit is set at the given position.
func (v *Vector) ZBit(position int) bool {
	return v.z[position]
}

// Weight returns the number of positions with either bit set.
func (v *Vector) Weight() int {
	var w int
	for i := range v.x {
		if v.x[i] || v.z[i] {
			w++
		}
	}

	return w
}

// Commutes reports whether the operators behind v and w commute, via
// the symplectic inner product mod 2. Unlike sparse commutation this
// form materializes full-length vectors, so equal lengths are required;
// returns ErrLengthMismatch otherwise.
// Complexity: O(n).
func (v *Vector) Commutes(w *Vector) (bool, error) {
	if v.Len() != w.Len() {
		return false, fmt.Errorf("lengths %d and %d: %w", v.Len(), w.Len(), ErrLengthMismatch)
	}

	var parity int
	for i := range v.x {
		if v.x[i] && w.z[i] {
			parity++
		}
		if v.z[i] && w.x[i] {
			parity++
		}
	}

	return parity%2 == 0, nil
}

// ToSparse reconstructs the sparse operator of the vector: X where only
// the x bit is set, Z where only the z bit is set, Y where both are.
func (v *Vector) ToSparse() *sparse.Operator {
	positions := make([]int, 0, v.Weight())
	paulis := make([]core.Pauli, 0, v.Weight())
	for i := range v.x {
		switch {
		case v.x[i] && v.z[i]:
			positions = append(positions, i)
			paulis = append(paulis, core.Y)
		case v.x[i]:
			positions = append(positions, i)
			paulis = append(paulis, core.X)
		case v.z[i]:
			positions = append(positions, i)
			paulis = append(paulis, core.Z)
		}
	}

	return sparse.MustNew(v.Len(), positions, paulis)
}
