package graphstate

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/cliffordsim/core"
	"github.com/katalvlaran/cliffordsim/quantum"
)

type stateJSON struct {
	NumQubits int      `json:"num_qubits"`
	VOPs      []int    `json:"vops"`
	Adjacency [][]int  `json:"adjacency"`
	RNG       []byte   `json:"rng"`
}

// MarshalJSON encodes the VOPs, the neighbor lists and the random source.
// Neighbor lists keep their internal order, which measurement uses to pick
// a neighbor, so a restored state evolves exactly like the original.
func (s *State) MarshalJSON() ([]byte, error) {
	rng, err := s.rng.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("graphstate.MarshalJSON: %w", err)
	}

	vops := make([]int, s.n)
	for i, v := range s.g.Values() {
		vops[i] = int(v)
	}

	return json.Marshal(stateJSON{NumQubits: s.n, VOPs: vops, Adjacency: s.g.Adjacency(), RNG: rng})
}

// UnmarshalJSON restores a state written by MarshalJSON.
func (s *State) UnmarshalJSON(data []byte) error {
	var in stateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("graphstate.UnmarshalJSON: %w: %w", ErrSnapshot, err)
	}
	n := in.NumQubits
	if n < 0 || len(in.VOPs) != n {
		return fmt.Errorf("graphstate.UnmarshalJSON: %d vops for %d qubits: %w", len(in.VOPs), n, ErrSnapshot)
	}

	g := core.NewGraph[uint8](core.WithCapacity(n))
	for i, v := range in.VOPs {
		if v < 0 || v >= numVOPs {
			return fmt.Errorf("graphstate.UnmarshalJSON: vop %d of qubit %d: %w", v, i, ErrSnapshot)
		}
		g.AddVertex(uint8(v))
	}
	if in.Adjacency == nil {
		in.Adjacency = make([][]int, n)
	}
	if err := g.SetAdjacency(in.Adjacency); err != nil {
		return fmt.Errorf("graphstate.UnmarshalJSON: %w: %w", ErrSnapshot, err)
	}

	rng := new(quantum.RNG)
	if err := rng.UnmarshalBinary(in.RNG); err != nil {
		return fmt.Errorf("graphstate.UnmarshalJSON: %w: %w", ErrSnapshot, err)
	}
	s.n, s.g, s.rng = n, g, rng

	return nil
}
