package sparse_test

import (
	"testing"

	"github.com/katalvlaran/pauli/core"
	"github.com/katalvlaran/pauli/sparse"
)

// randomish deterministic operator of the given weight on length qubits,
// entries spread evenly with a cycling X, Y, Z pattern.
func makeOperator(b *testing.B, length, weight, offset int) *sparse.Operator {
	positions := make([]int, weight)
	paulis := make([]core.Pauli, weight)
	stride := length / weight
	for i := 0; i < weight; i++ {
		positions[i] = (i*stride + offset) % length
		paulis[i] = core.Pauli(1 + (i % 3))
	}
	op, err := sparse.New(length, positions, paulis)
	if err != nil {
		b.Fatalf("makeOperator: %v", err)
	}

	return op
}

// BenchmarkCommutesWith_LowWeight measures the common stabilizer-code
// case: huge length, tiny weight.
func BenchmarkCommutesWith_LowWeight(b *testing.B) {
	op1 := makeOperator(b, 10000, 8, 0)
	op2 := makeOperator(b, 10000, 8, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = op1.CommutesWith(op2)
	}
}

// BenchmarkCommutesWith_HeavyOverlap measures dense support overlap.
func BenchmarkCommutesWith_HeavyOverlap(b *testing.B) {
	op1 := makeOperator(b, 10000, 1000, 0)
	op2 := makeOperator(b, 10000, 1000, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = op1.CommutesWith(op2)
	}
}

// BenchmarkMul measures the sorted-merge product at moderate weight.
func BenchmarkMul(b *testing.B) {
	op1 := makeOperator(b, 10000, 100, 0)
	op2 := makeOperator(b, 10000, 100, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := op1.Mul(op2); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkNew measures validated canonical construction.
func BenchmarkNew(b *testing.B) {
	length, weight := 10000, 100
	positions := make([]int, weight)
	paulis := make([]core.Pauli, weight)
	for i := 0; i < weight; i++ {
		positions[i] = i * (length / weight)
		paulis[i] = core.Pauli(1 + (i % 3))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparse.New(length, positions, paulis); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}
