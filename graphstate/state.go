// SPDX-License-Identifier: MIT

package graphstate

import (
	"fmt"

	"github.com/katalvlaran/cliffordsim/core"
	"github.com/katalvlaran/cliffordsim/quantum"
)

// State is a graph state with vertex operators. Vertex i is qubit i and
// its value is the VOP index in [0,24). It is not safe for concurrent use.
type State struct {
	n   int
	g   *core.Graph[uint8]
	rng *quantum.RNG
}

// New returns |0…0⟩ on n qubits: n isolated vertices carrying H.
func New(n int, opts ...quantum.Option) *State {
	if n < 0 {
		quantum.Unsupported("graphstate.New", fmt.Sprintf("%d qubits", n))
	}
	g := core.NewGraph[uint8](core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddVertex(vopH)
	}

	return &State{n: n, g: g, rng: quantum.NewRNG(opts...)}
}

// SystemSize returns the number of qubits.
func (s *State) SystemSize() int { return s.n }

// VOP returns the vertex-operator index of q.
func (s *State) VOP(q int) int {
	quantum.CheckQubit(s.n, q)
	return int(s.g.Value(q))
}

// Edges lists the graph edges as sorted pairs (u < v).
func (s *State) Edges() [][2]int { return s.g.Edges() }

// Clone returns a deep copy with a forked random source.
func (s *State) Clone() *State {
	return &State{n: s.n, g: s.g.Clone(), rng: s.rng.Fork()}
}

// String dumps the adjacency lists and the vertex operators.
func (s *State) String() string {
	return fmt.Sprintf("Graph:\n%s\nVops:%v\n", s.g.String(), s.g.Values())
}

// apply left-multiplies the VOP of q by gate: V ← gate·V.
func (s *State) apply(q int, gate uint8) {
	s.g.SetValue(q, products[gate][s.g.Value(q)])
}

// rapply right-multiplies the VOP of q by gate: V ← V·gate.
func (s *State) rapply(q int, gate uint8) {
	s.g.SetValue(q, products[s.g.Value(q)][gate])
}

func (s *State) gate(q int, gate uint8) {
	quantum.CheckQubit(s.n, q)
	s.apply(q, gate)
}

// H applies a Hadamard.
func (s *State) H(q int) { s.gate(q, vopH) }

// S applies the phase gate.
func (s *State) S(q int) { s.gate(q, vopS) }

// Sd applies S†.
func (s *State) Sd(q int) { s.gate(q, vopSd) }

// X applies Pauli X.
func (s *State) X(q int) { s.gate(q, vopX) }

// Y applies Pauli Y.
func (s *State) Y(q int) { s.gate(q, vopY) }

// Z applies Pauli Z.
func (s *State) Z(q int) { s.gate(q, vopZ) }

// SqrtX applies √X.
func (s *State) SqrtX(q int) { s.gate(q, vopSqrtX) }

// SqrtXd applies √X†.
func (s *State) SqrtXd(q int) { s.gate(q, vopSqrtXd) }

// SqrtY applies √Y.
func (s *State) SqrtY(q int) { s.gate(q, vopSqrtY) }

// SqrtYd applies √Y†.
func (s *State) SqrtYd(q int) { s.gate(q, vopSqrtYd) }

// localComplement complements N(v) and compensates on the VOPs so the
// represented state is unchanged.
func (s *State) localComplement(v int) {
	s.g.LocalComplement(v)
	s.rapply(v, vopSqrtXd)
	for i := 0; i < s.g.Degree(v); i++ {
		s.rapply(s.g.NeighborAt(v, i), vopS)
	}
}

// removeVOP drives the VOP of a to the identity. Complementations at a
// neighbor use one other than b when there is a choice.
func (s *State) removeVOP(a, b int) {
	c := b
	for i := 0; i < s.g.Degree(a); i++ {
		if x := s.g.NeighborAt(a, i); x != b {
			c = x
			break
		}
	}
	for _, op := range lcDecomps[s.g.Value(a)] {
		if op == 'x' {
			s.localComplement(a)
		} else {
			s.localComplement(c)
		}
	}
}

// isolated reports whether a has no neighbors besides possibly b.
func (s *State) isolated(a, b int) bool {
	switch s.g.Degree(a) {
	case 0:
		return true
	case 1:
		return s.g.HasEdge(a, b)
	}

	return false
}

// CZ applies a controlled-Z.
func (s *State) CZ(q1, q2 int) {
	quantum.CheckPair(s.n, q1, q2)

	if !s.isolated(q1, q2) {
		s.removeVOP(q1, q2)
	}
	if !s.isolated(q2, q1) {
		s.removeVOP(q2, q1)
	}
	// Clearing q2 may have attached new neighbors to q1.
	if !s.isolated(q1, q2) {
		s.removeVOP(q1, q2)
	}

	edge := s.g.HasEdge(q1, q2)
	e := czTable[s.g.Value(q1)][s.g.Value(q2)][b2i(edge)]
	s.g.SetValue(q1, e.a)
	s.g.SetValue(q2, e.b)
	if e.edge != edge {
		s.g.ToggleEdge(q1, q2)
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
