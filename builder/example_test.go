package builder_test

import (
	"fmt"

	"github.com/katalvlaran/cliffordsim/builder"
	"github.com/katalvlaran/cliffordsim/circuit"
)

func ExampleBuildCircuit() {
	p, err := builder.BuildCircuit(3, nil, builder.Cluster(false))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(circuit.Format(p))
	// Output:
	// @pragma total_num_qubits 3
	// @pragma total_num_cbits 0
	// h q0
	// h q1
	// h q2
	// cz q0 q1
	// cz q1 q2
}
