// SPDX-License-Identifier: MIT

package chp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cliffordsim/quantum"
)

// State is a stabilizer state backed by a Tableau and its own random
// source. It is not safe for concurrent use.
type State struct {
	n   int
	tab *Tableau
	rng *quantum.RNG
}

// New returns |0…0⟩ on n qubits.
func New(n int, opts ...quantum.Option) *State {
	if n < 0 {
		quantum.Unsupported("chp.New", fmt.Sprintf("%d qubits", n))
	}

	return &State{n: n, tab: NewTableau(n), rng: quantum.NewRNG(opts...)}
}

// SystemSize returns the number of qubits.
func (s *State) SystemSize() int { return s.n }

// Tableau returns a deep copy of the tableau.
func (s *State) Tableau() *Tableau { return s.tab.Clone() }

// Clone returns a deep copy with a forked random source.
func (s *State) Clone() *State {
	return &State{n: s.n, tab: s.tab.Clone(), rng: s.rng.Fork()}
}

// H applies a Hadamard.
func (s *State) H(q int) {
	quantum.CheckQubit(s.n, q)
	s.tab.H(q)
}

// S applies the phase gate.
func (s *State) S(q int) {
	quantum.CheckQubit(s.n, q)
	s.tab.S(q)
}

// X applies Pauli X.
func (s *State) X(q int) {
	quantum.CheckQubit(s.n, q)
	s.tab.X(q)
}

// Y applies Pauli Y.
func (s *State) Y(q int) {
	quantum.CheckQubit(s.n, q)
	s.tab.Y(q)
}

// Z applies Pauli Z.
func (s *State) Z(q int) {
	quantum.CheckQubit(s.n, q)
	s.tab.Z(q)
}

// CX applies a controlled-X.
func (s *State) CX(q1, q2 int) {
	quantum.CheckPair(s.n, q1, q2)
	s.tab.CX(q1, q2)
}

// CZ applies a controlled-Z.
func (s *State) CZ(q1, q2 int) {
	quantum.CheckPair(s.n, q1, q2)
	s.tab.CZ(q1, q2)
}

// MZR measures q in the computational basis.
func (s *State) MZR(q int) int {
	quantum.CheckQubit(s.n, q)
	return s.tab.Measure(q, s.rng.Coin())
}

// MZRForced measures q and post-selects outcome. When the outcome is
// random it is imposed; when it is deterministic and differs,
// ErrImpossibleOutcome is returned and the state is unchanged.
func (s *State) MZRForced(q, outcome int) error {
	quantum.CheckQubit(s.n, q)
	if outcome != 0 && outcome != 1 {
		return fmt.Errorf("MZRForced(%d, %d): %w", q, outcome, ErrImpossibleOutcome)
	}
	if !s.tab.Deterministic(q) {
		s.tab.Measure(q, outcome)
		return nil
	}
	if got := s.tab.Measure(q, outcome); got != outcome {
		return fmt.Errorf("MZRForced(%d, %d): deterministic outcome %d: %w", q, outcome, got, ErrImpossibleOutcome)
	}

	return nil
}

// RandomClifford applies a uniformly random Clifford to qubits, drawing
// from the state's own source.
func (s *State) RandomClifford(qubits []int) {
	RandomClifford(s.rng.Rand(), s, qubits)
}

// Stabilizers lists the stabilizer generators in "+XZ" notation.
func (s *State) Stabilizers() []string {
	out := make([]string, s.n)
	for i := range out {
		out[i] = s.tab.rows[s.n+i].String()
	}

	return out
}

// String dumps the tableau.
func (s *State) String() string {
	var sb strings.Builder
	sb.WriteString("Tableau:\n")
	sb.WriteString(s.tab.String())

	return sb.String()
}
