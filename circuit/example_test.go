// SPDX-License-Identifier: MIT

package circuit_test

import (
	"fmt"

	"github.com/katalvlaran/qpauli/circuit"
)

// ExampleCircuit_H builds a block and its mirror image.
func ExampleCircuit_H() {
	block := circuit.New(circuit.SqrtYH(0), circuit.CNOT(0, 1))
	fmt.Println(circuit.New().Extend(block).Add(circuit.RZ(0.5, 1)).Extend(block.H()))
	// Output:
	// SqrtY_H 0
	// CNOT 0 1
	// RZ(0.5) 1
	// CNOT 0 1
	// SqrtY 0
}
