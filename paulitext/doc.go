// Package paulitext converts Pauli operators to and from their
// conventional text forms, for display, logging and lightweight
// interchange.
//
// Two forms are supported:
//
//   - Dense words: a phase prefix and one letter per qubit, identities
//     included — "XIYZ", "-XX", "i·IZ", "-i·XYZI". The phase prefix is
//     omitted when it is 1 and the "·" separator is optional on input.
//   - Sparse supports: one letter+position token per non-identity entry —
//     "X0 Y2 Z4"; the all-identity operator renders as "I".
//
// Parsing re-enters the core through the validating constructors, so any
// operator obtained here satisfies every representation invariant, and
// parse(format(op)) always reproduces op exactly.
//
// Errors are the package sentinels ErrEmptyInput and ErrBadSymbol
// (wrapped with the offending rune and index); sparse construction
// failures (out-of-bound positions) surface unchanged from package
// sparse. Match all of them with errors.Is.
package paulitext
