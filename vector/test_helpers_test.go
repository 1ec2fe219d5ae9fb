package vector_test

import (
	"github.com/katalvlaran/cliffordsim/vector"
)

// primitives hides every native gate of a vector.State except the
// primitive set, forcing the quantum package's decompositions.
type primitives struct{ s *vector.State }

func (p primitives) SystemSize() int { return p.s.SystemSize() }
func (p primitives) H(q int)         { p.s.H(q) }
func (p primitives) S(q int)         { p.s.S(q) }
func (p primitives) CZ(a, b int)     { p.s.CZ(a, b) }
func (p primitives) MZR(q int) int   { return p.s.MZR(q) }

// generic returns a two-qubit state with no symmetry, so every gate acts
// non-trivially.
func generic() *vector.State {
	s := vector.New(2, quantumSeed)
	s.H(0)
	s.T(0)
	s.H(1)
	s.T(1)
	s.S(1)
	s.CX(0, 1)
	s.H(0)
	s.T(0)

	return s
}
