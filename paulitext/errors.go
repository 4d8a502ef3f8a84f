package paulitext

import "errors"

var (
	// ErrEmptyInput indicates the input string holds no operator at all.
	ErrEmptyInput = errors.New("paulitext: empty input")

	// ErrBadSymbol indicates a character that belongs to neither the
	// phase prefix nor the Pauli alphabet. Returned wrapped with the
	// offending rune and its index.
	ErrBadSymbol = errors.New("paulitext: unexpected symbol")
)
