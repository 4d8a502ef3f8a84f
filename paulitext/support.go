package paulitext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pauli/core"
	"github.com/katalvlaran/pauli/sparse"
)

// FormatSupport renders a sparse operator as letter+position tokens,
// e.g. "X0 Y2 Z4". The all-identity operator renders as "I".
// The output round-trips through ParseSupport given the same length.
func FormatSupport(op *sparse.Operator) string {
	if op.Weight() == 0 {
		return "I"
	}

	tokens := make([]string, 0, op.Weight())
	for _, e := range op.Entries() {
		tokens = append(tokens, fmt.Sprintf("%v%d", e.Pauli, e.Position))
	}

	return strings.Join(tokens, " ")
}

// ParseSupport parses a sparse support string ("X0 Y2 Z4") into an
// operator of the given length. The single token "I" (or "1") denotes
// the all-identity operator. Tokens may appear in any order; identity
// tokens such as "I3" are accepted and dropped.
//
// Returns ErrEmptyInput for a blank string, ErrBadSymbol (wrapped with
// the offending token) for malformed tokens, and sparse construction
// errors (e.g. sparse.ErrOutOfBound) unchanged.
func ParseSupport(s string, length int) (*sparse.Operator, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}
	if trimmed == "I" || trimmed == "1" {
		return sparse.Identity(length), nil
	}

	fields := strings.Fields(trimmed)
	positions := make([]int, 0, len(fields))
	paulis := make([]core.Pauli, 0, len(fields))
	for _, tok := range fields {
		runes := []rune(tok)
		p, ok := pauliFromRune(runes[0])
		if !ok {
			return nil, fmt.Errorf("token %q: %w", tok, ErrBadSymbol)
		}
		pos, err := strconv.Atoi(string(runes[1:]))
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, ErrBadSymbol)
		}
		positions = append(positions, pos)
		paulis = append(paulis, p)
	}

	return sparse.New(length, positions, paulis)
}
