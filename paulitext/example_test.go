package paulitext_test

import (
	"fmt"

	"github.com/katalvlaran/pauli/paulitext"
)

// ExampleParseWord reads a phase-prefixed dense word.
func ExampleParseWord() {
	op, err := paulitext.ParseWord("-i·XIYZ")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(op.Phase(), op.Len(), op.NonTrivialPositions())
	// Output:
	// -i 4 [0 2 3]
}

// ExampleParseSupport reads a sparse support over nine qubits.
func ExampleParseSupport() {
	op, err := paulitext.ParseSupport("X0 Y4 Z8", 9)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(op, "weight:", op.Weight())
	// Output:
	// [(0, X), (4, Y), (8, Z)] weight: 3
}

// ExampleFormatSupport prints a stabilizer in its conventional form.
func ExampleFormatSupport() {
	op, err := paulitext.ParseSupport("Z0 Z1", 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(paulitext.FormatSupport(op))
	// Output:
	// Z0 Z1
}
