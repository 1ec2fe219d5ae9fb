package chp

import (
	"encoding/json"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/cliffordsim/quantum"
)

type rowJSON struct {
	X *bitset.BitSet `json:"x"`
	Z *bitset.BitSet `json:"z"`
	R bool           `json:"r"`
}

type stateJSON struct {
	NumQubits int       `json:"num_qubits"`
	Rows      []rowJSON `json:"rows"`
	RNG       []byte    `json:"rng"`
}

// MarshalJSON encodes the 2n generator rows and the random source.
func (s *State) MarshalJSON() ([]byte, error) {
	rng, err := s.rng.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("chp.MarshalJSON: %w", err)
	}
	out := stateJSON{NumQubits: s.n, Rows: make([]rowJSON, 2*s.n), RNG: rng}
	for i := range out.Rows {
		r := s.tab.rows[i]
		out.Rows[i] = rowJSON{X: r.x, Z: r.z, R: r.r}
	}

	return json.Marshal(out)
}

// UnmarshalJSON restores a state written by MarshalJSON. The stabilizer
// rows must commute pairwise.
func (s *State) UnmarshalJSON(data []byte) error {
	var in stateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("chp.UnmarshalJSON: %w: %w", ErrSnapshot, err)
	}
	n := in.NumQubits
	if n < 0 || len(in.Rows) != 2*n {
		return fmt.Errorf("chp.UnmarshalJSON: %d rows for %d qubits: %w", len(in.Rows), n, ErrSnapshot)
	}

	tab := NewTableau(n)
	for i, r := range in.Rows {
		if r.X == nil || r.Z == nil || r.X.Len() != uint(n) || r.Z.Len() != uint(n) {
			return fmt.Errorf("chp.UnmarshalJSON: row %d width: %w", i, ErrSnapshot)
		}
		tab.rows[i].x, tab.rows[i].z, tab.rows[i].r = r.X, r.Z, r.R
	}
	for i := n; i < 2*n; i++ {
		for j := i + 1; j < 2*n; j++ {
			if !tab.rows[i].Commutes(tab.rows[j]) {
				return fmt.Errorf("chp.UnmarshalJSON: rows %d,%d anticommute: %w", i, j, ErrSnapshot)
			}
		}
	}

	rng := new(quantum.RNG)
	if err := rng.UnmarshalBinary(in.RNG); err != nil {
		return fmt.Errorf("chp.UnmarshalJSON: %w: %w", ErrSnapshot, err)
	}
	s.n, s.tab, s.rng = n, tab, rng

	return nil
}
