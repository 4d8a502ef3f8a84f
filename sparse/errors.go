package sparse

import "errors"

// Sentinel errors for sparse operator construction and arithmetic.
// All are returned wrapped with the offending values; match with errors.Is.
var (
	// ErrLengthMismatch indicates two operands (or the position/value
	// slices at construction) have incompatible lengths.
	ErrLengthMismatch = errors.New("sparse: length mismatch")

	// ErrOutOfBound indicates a declared non-trivial position is not
	// strictly less than the declared operator length.
	ErrOutOfBound = errors.New("sparse: position out of bound")
)
