package codec_test

import (
	"fmt"

	"github.com/katalvlaran/pauli/codec"
	"github.com/katalvlaran/pauli/core"
	"github.com/katalvlaran/pauli/sparse"
)

// ExampleEncodeSparse round-trips a stabilizer through the wire form.
func ExampleEncodeSparse() {
	op := sparse.MustNew(5, []int{1, 2, 3}, []core.Pauli{core.X, core.Y, core.Z})

	data, err := codec.EncodeSparse(op)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	back, err := codec.DecodeSparse(data)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(back.Equal(op), back)
	// Output:
	// true [(1, X), (2, Y), (3, Z)]
}
