package dense_test

import (
	"testing"

	"github.com/katalvlaran/pauli/core"
	"github.com/katalvlaran/pauli/dense"
)

// makeWord builds a deterministic length-n word cycling through all
// four Paulis, offset to vary overlap patterns between operands.
func makeWord(n, offset int) *dense.Operator {
	paulis := make([]core.Pauli, n)
	for i := range paulis {
		paulis[i] = core.Pauli((i + offset) % 4)
	}

	return dense.New(paulis)
}

// BenchmarkMul measures full-vector phase-aware multiplication.
func BenchmarkMul(b *testing.B) {
	first := makeWord(1000, 0)
	second := makeWord(1000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = first.Mul(second)
	}
}

// BenchmarkCommutesWith measures full-vector anticommutation parity.
func BenchmarkCommutesWith(b *testing.B) {
	first := makeWord(1000, 0)
	second := makeWord(1000, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = first.CommutesWith(second)
	}
}

// BenchmarkMulPauli measures single-Pauli application across the word.
func BenchmarkMulPauli(b *testing.B) {
	op := makeWord(1000, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = op.MulPauli(core.Z)
	}
}
