// SPDX-License-Identifier: MIT

package chp

import (
	"math/rand/v2"

	"github.com/katalvlaran/cliffordsim/quantum"
)

// RandomClifford applies a uniformly random Clifford on qubits to target.
//
// Implementation:
//   - Stage 1: Draw a random non-identity Pauli P1 and redraw P2 until it
//     anticommutes with P1; both carry random signs.
//   - Stage 2: Drive P1 to +X₁ on a two-row scratch tableau, then P2 to
//     ±Z₁ (conjugating by H on the first qubit when needed), then fix the
//     signs with one Pauli.
//   - Every H, S, CX and Pauli applied to the scratch tableau is applied to
//     target on the matching physical qubit.
//   - Stage 3: Repeat on qubits[1:] until one qubit is left.
//
// Each level conjugates its (P1, P2) to (+X₁, +Z₁) on its first qubit.
//
// Complexity: O(k³) gates for k = len(qubits).
func RandomClifford(rng *rand.Rand, target quantum.State, qubits []int) {
	canonicalize(rng, target, qubits)
}

// mirror applies every operation to the scratch tableau and to target.
type mirror struct {
	tab    *Tableau
	target quantum.State
	qubits []int
}

func (m mirror) h(i int) {
	m.tab.H(i)
	m.target.H(m.qubits[i])
}

func (m mirror) s(i int) {
	m.tab.S(i)
	m.target.S(m.qubits[i])
}

func (m mirror) cx(i, j int) {
	m.tab.CX(i, j)
	quantum.CX(m.target, m.qubits[i], m.qubits[j])
}

// reduce drives row to a single X on local qubit 0.
func (m mirror) reduce(row int) {
	k := len(m.qubits)
	p := &m.tab.rows[row]

	// Clear the Z block.
	for i := 0; i < k; i++ {
		if p.Z(i) {
			if p.X(i) {
				m.s(i)
			} else {
				m.h(i)
			}
		}
	}

	// Halve the X support pairwise until one bit remains.
	nz := make([]int, 0, k)
	for i := 0; i < k; i++ {
		if p.X(i) {
			nz = append(nz, i)
		}
	}
	for len(nz) > 1 {
		for j := 0; j < len(nz)/2; j++ {
			m.cx(nz[2*j], nz[2*j+1])
		}
		kept := nz[:0]
		for j := 0; j < len(nz); j += 2 {
			kept = append(kept, nz[j])
		}
		nz = kept
	}

	// Swap the survivor onto qubit 0.
	if a := nz[0]; a != 0 {
		m.cx(0, a)
		m.cx(a, 0)
		m.cx(0, a)
	}
}

// isZ1 reports whether p is ±Z on local qubit 0 only.
func isZ1(p PauliString) bool {
	if p.x.Any() || !p.z.Test(0) {
		return false
	}

	return p.z.Count() == 1
}

// canonicalize runs the sampler and returns the scratch tableau of the
// first level.
func canonicalize(rng *rand.Rand, target quantum.State, qubits []int) *Tableau {
	quantum.CheckQubits(target.SystemSize(), qubits)
	k := len(qubits)
	if k == 0 {
		return nil
	}

	p1 := RandomPauliString(rng, k)
	p2 := RandomPauliString(rng, k)
	for p1.Commutes(p2) {
		p2 = RandomPauliString(rng, k)
	}

	m := mirror{tab: newScratch(p1, p2), target: target, qubits: qubits}
	m.reduce(0)
	if !isZ1(m.tab.rows[1]) {
		m.h(0)
		m.reduce(1)
		m.h(0)
	}

	// Signs: X flips Z₁, Z flips X₁, Y flips both.
	switch r0, r1 := m.tab.rows[0].r, m.tab.rows[1].r; {
	case !r0 && r1:
		m.tab.X(0)
		quantum.X(target, qubits[0])
	case r0 && r1:
		m.tab.Y(0)
		quantum.Y(target, qubits[0])
	case r0 && !r1:
		m.tab.Z(0)
		quantum.Z(target, qubits[0])
	}

	if k > 1 {
		canonicalize(rng, target, qubits[1:])
	}

	return m.tab
}
