package core_test

import (
	"fmt"

	"github.com/katalvlaran/pauli/core"
)

// ExamplePauli_Mul demonstrates the phase-free cyclic rule.
func ExamplePauli_Mul() {
	fmt.Println(core.X.Mul(core.Y))
	fmt.Println(core.Y.Mul(core.Z))
	fmt.Println(core.Z.Mul(core.Z))
	// Output:
	// Z
	// X
	// I
}

// ExamplePauli_MulWithPhase shows the exact correction phase:
// X·Y = i·Z while the reversed order picks up the inverse phase.
func ExamplePauli_MulWithPhase() {
	phase, pauli := core.X.MulWithPhase(core.Y)
	fmt.Printf("%v·%v\n", phase, pauli)

	phase, pauli = core.Y.MulWithPhase(core.X)
	fmt.Printf("%v·%v\n", phase, pauli)
	// Output:
	// i·Z
	// -i·Z
}

// ExamplePhase_Mul walks the cyclic group generated by i.
func ExamplePhase_Mul() {
	fmt.Println(core.MinusOne().Mul(core.Imag()))
	fmt.Println(core.Imag().Mul(core.MinusImag()))
	// Output:
	// -i
	// 1
}
