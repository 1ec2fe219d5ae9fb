// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/cliffordsim/quantum"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

// Hadamard is the matrix of H in row-major order.
var Hadamard = [2][2]complex128{
	{invSqrt2, invSqrt2},
	{invSqrt2, -invSqrt2},
}

func abs(c complex128) float64 { return cmplx.Abs(c) }

// Unitary applies the 2×2 matrix u to qubit q. Each component is split
// into the two bitstrings differing at q and accumulated.
func (s *State) Unitary(q int, u [2][2]complex128) {
	quantum.CheckQubit(s.n, q)
	mask := uint64(1) << uint(q)
	acc := make(map[uint64]complex128, 2*len(s.basis))
	for _, b := range s.basis {
		if b.bit(q) == 0 {
			acc[b.Bits] += b.Amp * u[0][0]
			acc[b.Bits^mask] += b.Amp * u[1][0]
		} else {
			acc[b.Bits] += b.Amp * u[1][1]
			acc[b.Bits^mask] += b.Amp * u[0][1]
		}
	}
	s.rebuild(acc)
}

// phase multiplies components with bit q set by p.
func (s *State) phase(q int, p complex128) {
	quantum.CheckQubit(s.n, q)
	for i := range s.basis {
		if s.basis[i].bit(q) == 1 {
			s.basis[i].Amp *= p
		}
	}
}

// H applies a Hadamard.
func (s *State) H(q int) { s.Unitary(q, Hadamard) }

// S applies diag(1, i).
func (s *State) S(q int) { s.phase(q, 1i) }

// Sd applies diag(1, -i).
func (s *State) Sd(q int) { s.phase(q, -1i) }

// Z applies diag(1, -1).
func (s *State) Z(q int) { s.phase(q, -1) }

// T applies diag(1, e^{iπ/4}). Not a Clifford gate.
func (s *State) T(q int) { s.phase(q, cmplx.Exp(complex(0, math.Pi/4))) }

// X flips bit q.
func (s *State) X(q int) {
	quantum.CheckQubit(s.n, q)
	mask := uint64(1) << uint(q)
	for i := range s.basis {
		s.basis[i].Bits ^= mask
	}
}

// Y applies [[0, -i], [i, 0]].
func (s *State) Y(q int) {
	quantum.CheckQubit(s.n, q)
	mask := uint64(1) << uint(q)
	for i := range s.basis {
		if s.basis[i].bit(q) == 0 {
			s.basis[i].Amp *= 1i
		} else {
			s.basis[i].Amp *= -1i
		}
		s.basis[i].Bits ^= mask
	}
}

// CZ negates components with both bits set.
func (s *State) CZ(q1, q2 int) {
	quantum.CheckPair(s.n, q1, q2)
	for i := range s.basis {
		if s.basis[i].bit(q1) == 1 && s.basis[i].bit(q2) == 1 {
			s.basis[i].Amp = -s.basis[i].Amp
		}
	}
}

// CX flips bit q2 where bit q1 is set.
func (s *State) CX(q1, q2 int) {
	quantum.CheckPair(s.n, q1, q2)
	mask := uint64(1) << uint(q2)
	for i := range s.basis {
		if s.basis[i].bit(q1) == 1 {
			s.basis[i].Bits ^= mask
		}
	}
}

// CY applies Y to q2 where bit q1 is set. The phase depends on the target
// bit before the flip: i for 0→1, -i for 1→0.
func (s *State) CY(q1, q2 int) {
	quantum.CheckPair(s.n, q1, q2)
	mask := uint64(1) << uint(q2)
	for i := range s.basis {
		if s.basis[i].bit(q1) == 0 {
			continue
		}
		if s.basis[i].bit(q2) == 0 {
			s.basis[i].Amp *= 1i
		} else {
			s.basis[i].Amp *= -1i
		}
		s.basis[i].Bits ^= mask
	}
}
