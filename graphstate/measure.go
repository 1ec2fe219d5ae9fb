package graphstate

import (
	"fmt"

	"github.com/katalvlaran/cliffordsim/quantum"
)

// MZR measures q in the computational basis.
func (s *State) MZR(q int) int {
	quantum.CheckQubit(s.n, q)
	if s.deterministic(q) {
		return s.measure(q, 0)
	}

	return s.measure(q, s.rng.Coin())
}

// MZRForced measures q and post-selects outcome. A random outcome is
// imposed; a deterministic one that differs yields ErrImpossibleOutcome
// and leaves the state unchanged.
func (s *State) MZRForced(q, outcome int) error {
	quantum.CheckQubit(s.n, q)
	if outcome != 0 && outcome != 1 {
		return fmt.Errorf("MZRForced(%d, %d): %w", q, outcome, ErrImpossibleOutcome)
	}
	flip := b2i(conjugation[s.g.Value(q)].negative())
	if s.deterministic(q) {
		if flip != outcome {
			return fmt.Errorf("MZRForced(%d, %d): deterministic outcome %d: %w", q, outcome, flip, ErrImpossibleOutcome)
		}
		return nil
	}
	s.measure(q, outcome^flip)

	return nil
}

// deterministic reports whether measuring q has a fixed outcome: only an
// X-basis measurement of an isolated vertex does.
func (s *State) deterministic(q int) bool {
	return conjugation[s.g.Value(q)].axis() == basisX && s.g.Degree(q) == 0
}

// measure performs the Z measurement of q given the bare-graph outcome m
// of the rotated measurement, and returns the physical outcome.
func (s *State) measure(q, m int) int {
	b := conjugation[s.g.Value(q)]
	flip := b2i(b.negative())

	switch b.axis() {
	case basisX:
		if s.g.Degree(q) == 0 {
			return flip
		}
		s.measureX(q, m)
	case basisY:
		s.measureY(q, m)
	default:
		s.measureZ(q, m)
	}

	return m ^ flip
}

// measureX measures X on bare vertex q through a chosen neighbor b.
//
// Stage 1 (Correct): Z on the neighbors exclusive to one side, √Y on b.
// Stage 2 (Toggle): complement edges between N(q) and N(b).
// Stage 3 (Reattach): toggle b against the rest of N(q).
func (s *State) measureX(q, m int) {
	b := s.g.NeighborAt(q, 0)
	na := s.g.Neighbors(q)
	nb := s.g.Neighbors(b)
	inA := s.g.NeighborSet(q)
	inB := s.g.NeighborSet(b)

	if m == 0 {
		for _, x := range na {
			if _, shared := inB[x]; x != b && !shared {
				s.rapply(x, vopZ)
			}
		}
		s.rapply(b, vopSqrtYd)
	} else {
		for _, x := range nb {
			if _, shared := inA[x]; x != q && !shared {
				s.rapply(x, vopZ)
			}
		}
		s.rapply(q, vopZ)
		s.rapply(b, vopSqrtY)
	}

	for _, c := range na {
		for _, d := range nb {
			s.g.ToggleEdge(c, d)
		}
	}
	for _, d := range na {
		if d != b {
			s.g.ToggleEdge(b, d)
		}
	}
}

// measureY measures Y on bare vertex q: complement N(q), detach q and
// rotate every touched vertex by S or S†.
func (s *State) measureY(q, m int) {
	g := uint8(vopS)
	if m == 1 {
		g = vopSd
	}
	s.g.LocalComplement(q)
	for _, x := range s.g.Neighbors(q) {
		s.g.RemoveEdge(q, x)
		s.rapply(x, g)
	}
	s.rapply(q, g)
}

// measureZ measures Z on bare vertex q: detach q, correcting former
// neighbors by Z when m is 1, and leave q as |m⟩.
func (s *State) measureZ(q, m int) {
	for _, x := range s.g.Neighbors(q) {
		s.g.RemoveEdge(q, x)
		if m == 1 {
			s.rapply(x, vopZ)
		}
	}
	if m == 1 {
		s.rapply(q, vopX)
	}
	s.rapply(q, vopH)
}
