package core

// Phase is a global phase for Pauli operators, limited to the four exact
// units 1, -1, i and -i, which each have their own constructor.
//
// Internally a Phase is a Gaussian-integer pair (re, im) restricted to
// {(1,0), (-1,0), (0,1), (0,-1)}. The group is closed under
// multiplication, so arithmetic never leaves the four units and no
// floating-point representation is ever involved.
//
// The zero Phase (0, 0) is not a valid phase; always build phases
// through the constructors or operations on existing phases.
type Phase struct {
	re, im int8
}

// One returns the phase 1.
func One() Phase {
	return Phase{re: 1}
}

// MinusOne returns the phase -1.
func MinusOne() Phase {
	return Phase{re: -1}
}

// Imag returns the phase i.
func Imag() Phase {
	return Phase{im: 1}
}

// MinusImag returns the phase -i.
func MinusImag() Phase {
	return Phase{im: -1}
}

// PhaseFromComponents builds a Phase from raw Gaussian-integer
// components. The second result is false when (re, im) is not one of
// the four unit pairs. Intended for ingestion boundaries (decoding,
// parsing); in-process code should use the constructors.
func PhaseFromComponents(re, im int8) (Phase, bool) {
	p := Phase{re: re, im: im}

	return p, p.Valid()
}

// Valid reports whether p is one of the four unit phases.
func (p Phase) Valid() bool {
	return (p.re == 0) != (p.im == 0) && p.re >= -1 && p.re <= 1 && p.im >= -1 && p.im <= 1
}

// Components returns the Gaussian-integer (re, im) pair backing p.
func (p Phase) Components() (re, im int8) {
	return p.re, p.im
}

// Mul returns the exact group product p·q via component-wise complex
// multiplication. Closure of the unit group guarantees the result is
// again one of the four phases.
// Complexity: O(1).
func (p Phase) Mul(q Phase) Phase {
	return Phase{
		re: p.re*q.re - p.im*q.im,
		im: p.re*q.im + p.im*q.re,
	}
}

// Inverse returns the multiplicative inverse of p (its complex
// conjugate, since all four phases are units).
func (p Phase) Inverse() Phase {
	return Phase{re: p.re, im: -p.im}
}

// Neg returns -p.
func (p Phase) Neg() Phase {
	return Phase{re: -p.re, im: -p.im}
}

// String renders p as one of "1", "-1", "i" or "-i".
// An invalid phase renders as "--".
func (p Phase) String() string {
	switch p {
	case One():
		return "1"
	case MinusOne():
		return "-1"
	case Imag():
		return "i"
	case MinusImag():
		return "-i"
	default:
		return "--"
	}
}

// PhaseValues returns the four phases in cyclic order 1, i, -1, -i.
func PhaseValues() [4]Phase {
	return [4]Phase{One(), Imag(), MinusOne(), MinusImag()}
}
