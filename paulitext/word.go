package paulitext

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pauli/core"
	"github.com/katalvlaran/pauli/dense"
)

// FormatWord renders a dense operator as phase·word, e.g. "-i·XIYZ".
// A phase of 1 is omitted; the empty operator renders its phase alone.
// The output round-trips through ParseWord.
func FormatWord(op *dense.Operator) string {
	return op.String()
}

// ParseWord parses a dense Pauli word with an optional phase prefix.
//
// Accepted grammar, in order: an optional sign ('+' or '-'), an
// optional unit ('1' or 'i'), an optional '·' separator, then zero or
// more of the letters I, X, Y, Z. Whitespace around the input is
// ignored. Examples: "XIYZ", "-XX", "+i·IZ", "-iXYZI", "i" (empty word
// with phase i).
//
// Returns ErrEmptyInput for a blank string and ErrBadSymbol (wrapped
// with rune and index) for anything outside the grammar.
func ParseWord(s string) (*dense.Operator, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	phase := core.One()
	runes := []rune(trimmed)
	idx := 0

	if runes[idx] == '+' || runes[idx] == '-' {
		if runes[idx] == '-' {
			phase = core.MinusOne()
		}
		idx++
	}
	if idx < len(runes) && (runes[idx] == '1' || runes[idx] == 'i') {
		if runes[idx] == 'i' {
			phase = phase.Mul(core.Imag())
		}
		idx++
	}
	if idx < len(runes) && runes[idx] == '·' {
		idx++
	}

	paulis := make([]core.Pauli, 0, len(runes)-idx)
	for ; idx < len(runes); idx++ {
		p, ok := pauliFromRune(runes[idx])
		if !ok {
			return nil, fmt.Errorf("%q at index %d: %w", runes[idx], idx, ErrBadSymbol)
		}
		paulis = append(paulis, p)
	}

	return dense.NewWithPhase(phase, paulis), nil
}

// pauliFromRune maps an uppercase Pauli letter to its value.
func pauliFromRune(r rune) (core.Pauli, bool) {
	switch r {
	case 'I':
		return core.I, true
	case 'X':
		return core.X, true
	case 'Y':
		return core.Y, true
	case 'Z':
		return core.Z, true
	default:
		return core.I, false
	}
}
