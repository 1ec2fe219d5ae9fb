package circuit_test

import (
	"fmt"

	"github.com/katalvlaran/cliffordsim/circuit"
	"github.com/katalvlaran/cliffordsim/quantum"
)

// ExampleFormat builds a GHZ preparation in code and renders it.
func ExampleFormat() {
	p := circuit.NewProgram(3, 1).
		Add(quantum.GateH, 0).
		Add(quantum.GateCX, 0, 1).
		Add(quantum.GateCX, 1, 2).
		Measure(quantum.GateMZR, 2, 0)

	fmt.Print(circuit.Format(p))

	// Output:
	// @pragma total_num_qubits 3
	// @pragma total_num_cbits 1
	// h q0
	// cx q0 q1
	// cx q1 q2
	// mzr q2 c0
}
