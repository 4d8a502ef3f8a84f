package symplectic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pauli/sparse"
)

// Matrix stacks a set of equal-length operators into their binary
// symplectic matrix: one row per operator, 2·length columns with the x
// block first and the z block second, entries 0 or 1. This is the shape
// of stabilizer and parity-check matrices in the GF(2) picture.
//
// Returns ErrNoOperators for an empty set and ErrLengthMismatch
// (wrapped with both lengths) when the operators are ragged.
// Complexity: O(k·n) for k operators of length n.
func Matrix(ops []*sparse.Operator) (*mat.Dense, error) {
	if len(ops) == 0 {
		return nil, ErrNoOperators
	}
	length := ops[0].Len()
	for _, op := range ops[1:] {
		if op.Len() != length {
			return nil, fmt.Errorf("lengths %d and %d: %w", length, op.Len(), ErrLengthMismatch)
		}
	}

	m := mat.NewDense(len(ops), 2*length, nil)
	for row, op := range ops {
		v := FromSparse(op)
		for i := 0; i < length; i++ {
			if v.XBit(i) {
				m.Set(row, i, 1)
			}
			if v.ZBit(i) {
				m.Set(row, length+i, 1)
			}
		}
	}

	return m, nil
}

// GramMatrix returns the pairwise commutation matrix of a set of
// equal-length operators: entry (i, j) is 0 when operators i and j
// commute and 1 when they anticommute. A stabilizer group yields the
// zero matrix.
//
// Returns ErrNoOperators for an empty set and ErrLengthMismatch for
// ragged input.
// Complexity: O(k²·n).
func GramMatrix(ops []*sparse.Operator) (*mat.Dense, error) {
	if len(ops) == 0 {
		return nil, ErrNoOperators
	}
	length := ops[0].Len()
	vectors := make([]*Vector, len(ops))
	for i, op := range ops {
		if op.Len() != length {
			return nil, fmt.Errorf("lengths %d and %d: %w", length, op.Len(), ErrLengthMismatch)
		}
		vectors[i] = FromSparse(op)
	}

	g := mat.NewDense(len(ops), len(ops), nil)
	for i := range vectors {
		for j := i + 1; j < len(vectors); j++ {
			commutes, err := vectors[i].Commutes(vectors[j])
			if err != nil {
				return nil, err
			}
			if !commutes {
				g.Set(i, j, 1)
				g.Set(j, i, 1)
			}
		}
	}

	return g, nil
}
