package core

// Pauli is a single-qubit Pauli operator without a phase.
//
// The four values form a multiplicative group with I as identity and
// follow the usual commutation and anti-commutation relations.
// The zero value is I.
type Pauli uint8

const (
	// I is the identity operator.
	I Pauli = iota
	// X is the bit-flip operator.
	X
	// Y is the combined bit- and phase-flip operator (Y = i·X·Z).
	Y
	// Z is the phase-flip operator.
	Z
)

// Valid reports whether p is one of the four Pauli values.
// Useful when ingesting raw numeric codes from external sources.
func (p Pauli) Valid() bool {
	return p <= Z
}

// IsTrivial reports whether p is the identity.
func (p Pauli) IsTrivial() bool {
	return p == I
}

// IsNonTrivial reports whether p is not the identity.
func (p Pauli) IsNonTrivial() bool {
	return p != I
}

// CommutesWith reports whether p and q commute.
// Two Paulis commute iff either is I or they are equal.
func (p Pauli) CommutesWith(q Pauli) bool {
	return p == I || q == I || p == q
}

// AnticommutesWith reports whether p and q anticommute.
func (p Pauli) AnticommutesWith(q Pauli) bool {
	return !p.CommutesWith(q)
}

// Mul returns the phase-free product of p and q.
//
// Identity absorbs, equal elements annihilate to I, and the non-identity
// pairs follow the cyclic rule X·Y=Z, Y·Z=X, Z·X=Y. Because the sign is
// dropped, this variant is commutative: the three reversed pairs fall
// through to q.Mul(p).
// Complexity: O(1).
func (p Pauli) Mul(q Pauli) Pauli {
	switch {
	case p == I:
		return q
	case q == I:
		return p
	case p == q:
		return I
	case p == X && q == Y:
		return Z
	case p == Y && q == Z:
		return X
	case p == Z && q == X:
		return Y
	}

	return q.Mul(p)
}

// MulWithPhase returns the exact product of p and q as a (Phase, Pauli)
// pair, per the Pauli commutation algebra, e.g. X·Y = (i, Z) while
// Y·X = (-i, Z). Identity cases and equal elements carry phase 1.
//
// The dispatch is a fixed 16-entry table; it is total over all ordered
// pairs of valid Paulis.
// Complexity: O(1).
func (p Pauli) MulWithPhase(q Pauli) (Phase, Pauli) {
	switch {
	case p == I:
		return One(), q
	case q == I:
		return One(), p
	case p == q:
		return One(), I
	case p == X && q == Y:
		return Imag(), Z
	case p == X && q == Z:
		return MinusImag(), Y
	case p == Y && q == X:
		return MinusImag(), Z
	case p == Y && q == Z:
		return Imag(), X
	case p == Z && q == X:
		return Imag(), Y
	default: // p == Z && q == Y
		return MinusImag(), X
	}
}

// String returns the conventional one-letter name of p.
func (p Pauli) String() string {
	switch p {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// Paulis returns the four Pauli values in canonical order.
// Handy for exhaustive table iteration in callers and tests.
func Paulis() [4]Pauli {
	return [4]Pauli{I, X, Y, Z}
}
