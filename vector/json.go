package vector

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/cliffordsim/quantum"
)

type basisJSON struct {
	Bits uint64  `json:"bits"`
	Re   float64 `json:"re"`
	Im   float64 `json:"im"`
}

type stateJSON struct {
	NumQubits int         `json:"num_qubits"`
	Basis     []basisJSON `json:"basis"`
	RNG       []byte      `json:"rng"`
}

// MarshalJSON encodes the components and the random source state.
func (s *State) MarshalJSON() ([]byte, error) {
	rng, err := s.rng.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("vector.MarshalJSON: %w", err)
	}
	out := stateJSON{NumQubits: s.n, Basis: make([]basisJSON, len(s.basis)), RNG: rng}
	for i, b := range s.basis {
		out.Basis[i] = basisJSON{Bits: b.Bits, Re: real(b.Amp), Im: imag(b.Amp)}
	}

	return json.Marshal(out)
}

// UnmarshalJSON restores a state written by MarshalJSON.
func (s *State) UnmarshalJSON(data []byte) error {
	var in stateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("vector.UnmarshalJSON: %w: %w", ErrSnapshot, err)
	}
	if in.NumQubits < 0 || in.NumQubits > MaxQubits || len(in.Basis) == 0 {
		return fmt.Errorf("vector.UnmarshalJSON: %d qubits, %d components: %w", in.NumQubits, len(in.Basis), ErrSnapshot)
	}

	basis := make([]BasisState, len(in.Basis))
	seen := make(map[uint64]struct{}, len(in.Basis))
	for i, b := range in.Basis {
		if in.NumQubits < MaxQubits && b.Bits>>uint(in.NumQubits) != 0 {
			return fmt.Errorf("vector.UnmarshalJSON: bits %b: %w", b.Bits, ErrSnapshot)
		}
		if _, dup := seen[b.Bits]; dup {
			return fmt.Errorf("vector.UnmarshalJSON: duplicate bits %b: %w", b.Bits, ErrSnapshot)
		}
		seen[b.Bits] = struct{}{}
		basis[i] = BasisState{Bits: b.Bits, Amp: complex(b.Re, b.Im)}
	}

	rng := new(quantum.RNG)
	if err := rng.UnmarshalBinary(in.RNG); err != nil {
		return fmt.Errorf("vector.UnmarshalJSON: %w: %w", ErrSnapshot, err)
	}
	s.n, s.basis, s.rng = in.NumQubits, basis, rng

	return nil
}
