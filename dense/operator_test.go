package dense_test

import (
	"testing"

	"github.com/katalvlaran/pauli/core"
	"github.com/katalvlaran/pauli/dense"
	"github.com/stretchr/testify/assert"
)

// TestNew_Defaults verifies construction defaults and input ownership.
func TestNew_Defaults(t *testing.T) {
	paulis := []core.Pauli{core.X, core.I, core.Z}
	op := dense.New(paulis)

	assert.Equal(t, 3, op.Len())
	assert.False(t, op.IsEmpty())
	assert.Equal(t, core.One(), op.Phase(), "phase defaults to 1")

	// The backing slice is copied, not aliased.
	paulis[0] = core.Y
	assert.Equal(t, core.X, op.At(0))

	// And the accessor hands out a copy too.
	out := op.Paulis()
	out[2] = core.I
	assert.Equal(t, core.Z, op.At(2))
}

// TestNewWithPhase_And_Empty covers the explicit-phase constructor and
// the zero-length operator.
func TestNewWithPhase_And_Empty(t *testing.T) {
	op := dense.NewWithPhase(core.MinusImag(), []core.Pauli{core.X, core.X})
	assert.Equal(t, core.MinusImag(), op.Phase())
	assert.Equal(t, []core.Pauli{core.X, core.X}, op.Paulis())

	empty := dense.Empty()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, core.One(), empty.Phase())
}

// TestNonTrivialAccessors covers positions, pairs and weight over a
// vector with interleaved identities.
func TestNonTrivialAccessors(t *testing.T) {
	op := dense.New([]core.Pauli{core.X, core.I, core.Y, core.I, core.Z, core.I})

	assert.Equal(t, []int{0, 2, 4}, op.NonTrivialPositions())
	assert.Equal(t, []dense.PositionPauli{
		{Position: 0, Pauli: core.X},
		{Position: 2, Pauli: core.Y},
		{Position: 4, Pauli: core.Z},
	}, op.NonTrivialPaulis())
	assert.Equal(t, 3, op.Weight())
}

// TestCommutesWith verifies parity over materialized full vectors.
func TestCommutesWith(t *testing.T) {
	first := dense.New([]core.Pauli{core.X, core.Y, core.Z})
	second := dense.New([]core.Pauli{core.Y, core.Y, core.Y})
	third := dense.New([]core.Pauli{core.I, core.X, core.I})

	assert.True(t, first.CommutesWith(second), "X-Y and Z-Y overlaps, even parity")
	assert.False(t, first.CommutesWith(third), "single Y-X overlap, odd parity")
	assert.False(t, second.CommutesWith(third))

	assert.False(t, first.AnticommutesWith(second))
	assert.True(t, first.AnticommutesWith(third))
	assert.True(t, second.AnticommutesWith(third))
}

// TestCommutesWith_Symmetric verifies symmetry across a mixed set.
func TestCommutesWith_Symmetric(t *testing.T) {
	ops := []*dense.Operator{
		dense.New([]core.Pauli{core.X, core.Y, core.Z}),
		dense.New([]core.Pauli{core.Y, core.Y, core.Y}),
		dense.New([]core.Pauli{core.I, core.X, core.I}),
	}
	for _, a := range ops {
		for _, b := range ops {
			assert.Equal(t, a.CommutesWith(b), b.CommutesWith(a))
		}
	}
}

// TestLengthMismatch_Panics verifies the fail-fast contract of all
// binary dense operations: no implicit identity padding, ever.
func TestLengthMismatch_Panics(t *testing.T) {
	long := dense.New([]core.Pauli{core.X, core.X, core.X})
	short := dense.New([]core.Pauli{core.X, core.X})

	assert.Panics(t, func() { long.CommutesWith(short) })
	assert.Panics(t, func() { short.AnticommutesWith(long) })
	assert.Panics(t, func() { long.Mul(short) })
}

// TestMul pins the reference scenario: i·IXYZ times XZXZ gives -i·XYZI,
// and the phase-free sequence with exact phase accumulation in both
// orders.
func TestMul(t *testing.T) {
	first := dense.NewWithPhase(core.Imag(), []core.Pauli{core.I, core.X, core.Y, core.Z})
	second := dense.New([]core.Pauli{core.X, core.Z, core.X, core.Z})
	want := dense.NewWithPhase(core.MinusImag(), []core.Pauli{core.X, core.Y, core.Z, core.I})

	assert.True(t, first.Mul(second).Equal(want), "got %v want %v", first.Mul(second), want)
	// Position-wise phases happen to cancel pairwise here, so the
	// reversed product carries the same total phase.
	assert.True(t, second.Mul(first).Equal(want), "got %v want %v", second.Mul(first), want)
}

// TestMul_PhaseClosure verifies the resulting phase is always one of
// the four units for every pair drawn from a mixed pool.
func TestMul_PhaseClosure(t *testing.T) {
	pool := []*dense.Operator{
		dense.New([]core.Pauli{core.X, core.Y, core.Z, core.I}),
		dense.NewWithPhase(core.Imag(), []core.Pauli{core.Y, core.Y, core.I, core.X}),
		dense.NewWithPhase(core.MinusOne(), []core.Pauli{core.Z, core.I, core.X, core.Y}),
		dense.NewWithPhase(core.MinusImag(), []core.Pauli{core.I, core.Z, core.Y, core.X}),
	}
	for _, a := range pool {
		for _, b := range pool {
			assert.True(t, a.Mul(b).Phase().Valid(), "%v * %v", a, b)
		}
	}
}

// TestMulPhase verifies scalar phase multiplication leaves the word
// untouched and composes phases exactly.
func TestMulPhase(t *testing.T) {
	op := dense.NewWithPhase(core.MinusOne(), []core.Pauli{core.X, core.Z, core.I, core.Y})
	product := op.MulPhase(core.Imag())

	want := dense.NewWithPhase(core.MinusImag(), []core.Pauli{core.X, core.Z, core.I, core.Y})
	assert.True(t, product.Equal(want), "got %v want %v", product, want)
	assert.True(t, op.Equal(dense.NewWithPhase(core.MinusOne(), []core.Pauli{core.X, core.Z, core.I, core.Y})),
		"receiver is untouched")
}

// TestMulPauli applies Z across the whole word: Y·Z=iX, X·Z=-iY, Z·Z=I,
// I·Z=Z, with the i and -i contributions cancelling.
func TestMulPauli(t *testing.T) {
	op := dense.NewWithPhase(core.MinusOne(), []core.Pauli{core.Y, core.X, core.Z, core.I})
	product := op.MulPauli(core.Z)

	want := dense.NewWithPhase(core.MinusOne(), []core.Pauli{core.X, core.Y, core.I, core.Z})
	assert.True(t, product.Equal(want), "got %v want %v", product, want)
}

// TestEqual covers phase, length and word differences.
func TestEqual(t *testing.T) {
	op := dense.NewWithPhase(core.Imag(), []core.Pauli{core.X, core.Y})
	assert.True(t, op.Equal(dense.NewWithPhase(core.Imag(), []core.Pauli{core.X, core.Y})))
	assert.False(t, op.Equal(dense.NewWithPhase(core.MinusImag(), []core.Pauli{core.X, core.Y})), "phase differs")
	assert.False(t, op.Equal(dense.NewWithPhase(core.Imag(), []core.Pauli{core.X})), "length differs")
	assert.False(t, op.Equal(dense.NewWithPhase(core.Imag(), []core.Pauli{core.X, core.Z})), "word differs")
}

// TestString pins the phase·word rendering.
func TestString(t *testing.T) {
	assert.Equal(t, "XIYZ", dense.New([]core.Pauli{core.X, core.I, core.Y, core.Z}).String())
	assert.Equal(t, "-i·XX", dense.NewWithPhase(core.MinusImag(), []core.Pauli{core.X, core.X}).String())
	assert.Equal(t, "1", dense.Empty().String())
}
