package graphstate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cliffordsim/circuit"
	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/vector"
)

// MaxVectorQubits bounds ToVector.
const MaxVectorQubits = 20

// DebugCircuit returns a circuit that prepares this state from |0…0⟩: an
// H layer, one CZ per edge, then each VOP spelled in H and S.
func (s *State) DebugCircuit() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "@pragma total_num_qubits %d\n", s.n)
	sb.WriteString("@pragma total_num_cbits 0\n")
	for i := 0; i < s.n; i++ {
		fmt.Fprintf(&sb, "h q%d\n", i)
	}
	for _, e := range s.g.Edges() {
		fmt.Fprintf(&sb, "cz q%d q%d\n", e[0], e[1])
	}
	for i := 0; i < s.n; i++ {
		for _, op := range hsDecomps[s.g.Value(i)] {
			fmt.Fprintf(&sb, "%c q%d\n", op, i)
		}
	}

	return sb.String()
}

// ToVector runs DebugCircuit on a fresh vector state. The result has
// been through FinishExecution and compares with vector.State.Equal. It
// panics with quantum.ErrUnsupported above MaxVectorQubits.
func (s *State) ToVector(opts ...quantum.Option) *vector.State {
	if s.n > MaxVectorQubits {
		quantum.Unsupported("graphstate.ToVector", fmt.Sprintf("%d qubits", s.n))
	}
	p, err := circuit.ParseString(s.DebugCircuit())
	if err == nil {
		v := vector.New(s.n, opts...)
		if _, err = circuit.Run(v, p); err == nil {
			return v
		}
	}

	panic(fmt.Errorf("graphstate.ToVector: %w", err))
}
