// Package codec serializes Pauli operators to and from a compact
// msgpack wire form.
//
// Records mirror the raw-extraction surface of the operator types:
// sparse operators travel as {length, positions, paulis}, dense
// operators as {re, im, paulis} with the phase carried as its exact
// Gaussian-integer pair. Decoding re-enters through the validating
// constructors, so a round-trip preserves every representation
// invariant — sorted unique positions and no stored identities for the
// sparse form, fixed length and a valid unit phase for the dense form —
// and malformed or hostile input is rejected, never silently corrected.
//
// Errors: ErrBadPauli (a symbol outside the four Pauli codes),
// ErrBadPhase (a phase pair outside the four units), sparse
// construction sentinels unchanged, and msgpack decoding errors from
// the underlying library. Match the sentinels with errors.Is.
package codec
