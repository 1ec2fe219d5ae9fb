package sweep

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/cliffordsim/chp"
	"github.com/katalvlaran/cliffordsim/graphstate"
	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/vector"
)

// NewState builds the |0…0⟩ state of n qubits in the named representation.
func NewState(kind Simulator, n int, opts ...quantum.Option) (quantum.Simulator, error) {
	switch kind {
	case SimulatorCHP:
		return chp.New(n, opts...), nil
	case SimulatorGraph:
		return graphstate.New(n, opts...), nil
	case SimulatorVector:
		return vector.New(n, opts...), nil
	}

	return nil, fmt.Errorf("NewState: %q: %w", kind, ErrUnknownSimulator)
}

// cloneState deep-copies st. Each clone draws from a fork of st's
// random source.
func cloneState(st quantum.Simulator) quantum.Simulator {
	switch s := st.(type) {
	case *chp.State:
		return s.Clone()
	case *graphstate.State:
		return s.Clone()
	case *vector.State:
		return s.Clone()
	}
	panic(fmt.Errorf("sweep: cannot clone %T: %w", st, ErrUnknownSimulator))
}

// decodeState restores a snapshot of the named representation.
func decodeState(kind Simulator, data []byte) (quantum.Simulator, error) {
	var st quantum.Simulator
	switch kind {
	case SimulatorCHP:
		st = new(chp.State)
	case SimulatorGraph:
		st = new(graphstate.State)
	case SimulatorVector:
		st = new(vector.State)
	default:
		return nil, fmt.Errorf("decodeState: %q: %w", kind, ErrUnknownSimulator)
	}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, err
	}

	return st, nil
}
