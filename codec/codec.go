package codec

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/pauli/core"
	"github.com/katalvlaran/pauli/dense"
	"github.com/katalvlaran/pauli/sparse"
)

// Sentinel errors for decoding. Encoding cannot fail structurally since
// encoders consume already-valid operators.
var (
	// ErrBadPauli indicates a wire symbol outside the four Pauli codes.
	ErrBadPauli = errors.New("codec: invalid pauli code")

	// ErrBadPhase indicates a wire phase pair outside the four units.
	ErrBadPhase = errors.New("codec: invalid phase components")
)

// sparseRecord is the wire form of a sparse operator.
type sparseRecord struct {
	Length    int     `msgpack:"length"`
	Positions []int   `msgpack:"positions"`
	Paulis    []uint8 `msgpack:"paulis"`
}

// denseRecord is the wire form of a dense operator; the phase travels
// as its exact Gaussian-integer components.
type denseRecord struct {
	Re     int8    `msgpack:"re"`
	Im     int8    `msgpack:"im"`
	Paulis []uint8 `msgpack:"paulis"`
}

// EncodeSparse serializes a sparse operator.
func EncodeSparse(op *sparse.Operator) ([]byte, error) {
	positions, paulis := op.Raw()

	return msgpack.Marshal(sparseRecord{
		Length:    op.Len(),
		Positions: positions,
		Paulis:    pauliCodes(paulis),
	})
}

// DecodeSparse deserializes a sparse operator, re-validating through
// sparse.New so the canonical invariants hold on any input.
// Returns ErrBadPauli for out-of-range symbols and sparse construction
// errors unchanged.
func DecodeSparse(data []byte) (*sparse.Operator, error) {
	var rec sparseRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("codec: decode sparse: %w", err)
	}
	paulis, err := codePaulis(rec.Paulis)
	if err != nil {
		return nil, err
	}

	return sparse.New(rec.Length, rec.Positions, paulis)
}

// EncodeDense serializes a dense operator.
func EncodeDense(op *dense.Operator) ([]byte, error) {
	re, im := op.Phase().Components()

	return msgpack.Marshal(denseRecord{
		Re:     re,
		Im:     im,
		Paulis: pauliCodes(op.Paulis()),
	})
}

// DecodeDense deserializes a dense operator.
// Returns ErrBadPhase when the phase pair is not one of the four units
// and ErrBadPauli for out-of-range symbols.
func DecodeDense(data []byte) (*dense.Operator, error) {
	var rec denseRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("codec: decode dense: %w", err)
	}
	phase, ok := core.PhaseFromComponents(rec.Re, rec.Im)
	if !ok {
		return nil, fmt.Errorf("(%d, %d): %w", rec.Re, rec.Im, ErrBadPhase)
	}
	paulis, err := codePaulis(rec.Paulis)
	if err != nil {
		return nil, err
	}

	return dense.NewWithPhase(phase, paulis), nil
}

// pauliCodes lowers Paulis to their wire codes.
func pauliCodes(paulis []core.Pauli) []uint8 {
	codes := make([]uint8, len(paulis))
	for i, p := range paulis {
		codes[i] = uint8(p)
	}

	return codes
}

// codePaulis lifts wire codes back to Paulis, rejecting anything
// outside the four values.
func codePaulis(codes []uint8) ([]core.Pauli, error) {
	paulis := make([]core.Pauli, len(codes))
	for i, c := range codes {
		p := core.Pauli(c)
		if !p.Valid() {
			return nil, fmt.Errorf("code %d at index %d: %w", c, i, ErrBadPauli)
		}
		paulis[i] = p
	}

	return paulis, nil
}
