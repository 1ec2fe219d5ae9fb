// SPDX-License-Identifier: MIT

package chp

import (
	"math/rand/v2"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// PauliString is a signed n-qubit Pauli operator. Per qubit j the pair
// (x_j, z_j) selects I=(0,0), X=(1,0), Z=(0,1), Y=(1,1); r set means −1.
// Each PauliString owns its bitsets.
type PauliString struct {
	n    int
	x, z *bitset.BitSet
	r    bool
}

// NewPauliString returns the n-qubit identity with sign +1.
func NewPauliString(n int) PauliString {
	return PauliString{n: n, x: bitset.New(uint(n)), z: bitset.New(uint(n))}
}

// RandomPauliString draws a uniformly random non-identity Pauli string with
// a uniformly random sign.
func RandomPauliString(rng *rand.Rand, n int) PauliString {
	p := NewPauliString(n)
	for {
		for j := 0; j < n; j++ {
			p.x.SetTo(uint(j), rng.Uint64()&1 == 1)
			p.z.SetTo(uint(j), rng.Uint64()&1 == 1)
		}
		if p.x.Any() || p.z.Any() {
			break
		}
	}
	p.r = rng.Uint64()&1 == 1

	return p
}

// ParsePauliString reads "+XIZ" / "-YY" notation. Qubit 0 is the first
// letter after the sign. It reports false on malformed input.
func ParsePauliString(s string) (PauliString, bool) {
	if len(s) < 1 || (s[0] != '+' && s[0] != '-') {
		return PauliString{}, false
	}
	ops := s[1:]
	p := NewPauliString(len(ops))
	p.r = s[0] == '-'
	for j, c := range ops {
		switch c {
		case 'I':
		case 'X':
			p.x.Set(uint(j))
		case 'Z':
			p.z.Set(uint(j))
		case 'Y':
			p.x.Set(uint(j))
			p.z.Set(uint(j))
		default:
			return PauliString{}, false
		}
	}

	return p, true
}

// NumQubits returns n.
func (p PauliString) NumQubits() int { return p.n }

// X reports the X bit of qubit j.
func (p PauliString) X(j int) bool { return p.x.Test(uint(j)) }

// Z reports the Z bit of qubit j.
func (p PauliString) Z(j int) bool { return p.z.Test(uint(j)) }

// Negative reports whether the sign is −1.
func (p PauliString) Negative() bool { return p.r }

// IsIdentity reports whether every qubit carries I.
func (p PauliString) IsIdentity() bool { return !p.x.Any() && !p.z.Any() }

// Clone returns an independent copy.
func (p PauliString) Clone() PauliString {
	return PauliString{n: p.n, x: p.x.Clone(), z: p.z.Clone(), r: p.r}
}

// copyFrom overwrites p with o without reallocating.
func (p *PauliString) copyFrom(o PauliString) {
	o.x.Copy(p.x)
	o.z.Copy(p.z)
	p.r = o.r
}

// reset makes p the identity with sign +1.
func (p *PauliString) reset() {
	p.x.ClearAll()
	p.z.ClearAll()
	p.r = false
}

// Commutes reports whether p and o commute: the symplectic product
// Σ x_j·z'_j + z_j·x'_j is even.
func (p PauliString) Commutes(o PauliString) bool {
	a := p.x.IntersectionCardinality(o.z)
	b := p.z.IntersectionCardinality(o.x)

	return (a+b)%2 == 0
}

// Equal compares operators and signs.
func (p PauliString) Equal(o PauliString) bool {
	return p.n == o.n && p.r == o.r && p.x.Equal(o.x) && p.z.Equal(o.z)
}

// Op returns the letter of qubit j.
func (p PauliString) Op(j int) byte {
	switch {
	case p.X(j) && p.Z(j):
		return 'Y'
	case p.X(j):
		return 'X'
	case p.Z(j):
		return 'Z'
	default:
		return 'I'
	}
}

// String renders "+XIZ" notation.
func (p PauliString) String() string {
	var sb strings.Builder
	sb.Grow(p.n + 1)
	if p.r {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	for j := 0; j < p.n; j++ {
		sb.WriteByte(p.Op(j))
	}

	return sb.String()
}
