// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/cliffordsim/quantum"
)

// Eps is the pruning threshold for amplitudes and the relative tolerance
// used by Equal.
const Eps = 1e-6

// MaxQubits is the width of a basis bitstring.
const MaxQubits = 64

// BasisState is one computational-basis component.
type BasisState struct {
	Bits uint64
	Amp  complex128
}

func (b BasisState) bit(q int) uint64 { return b.Bits >> uint(q) & 1 }

// State is a sparse amplitude vector. Bitstrings are unique; amplitudes are
// above Eps in magnitude.
type State struct {
	n     int
	basis []BasisState
	rng   *quantum.RNG
}

// New returns |0…0⟩ on n qubits. It panics with quantum.ErrUnsupported
// when n exceeds MaxQubits.
func New(n int, opts ...quantum.Option) *State {
	if n < 0 || n > MaxQubits {
		quantum.Unsupported("vector.New", fmt.Sprintf("%d qubits", n))
	}

	return &State{
		n:     n,
		basis: []BasisState{{Bits: 0, Amp: 1}},
		rng:   quantum.NewRNG(opts...),
	}
}

// FromAmplitudes builds a state from explicit components. Entries below
// Eps are dropped and duplicate bitstrings are summed.
func FromAmplitudes(n int, basis []BasisState, opts ...quantum.Option) *State {
	s := New(n, opts...)
	acc := make(map[uint64]complex128, len(basis))
	for _, b := range basis {
		if n < MaxQubits && b.Bits>>uint(n) != 0 {
			panic(fmt.Errorf("vector.FromAmplitudes(%b): %w", b.Bits, quantum.ErrQubitOutOfRange))
		}
		acc[b.Bits] += b.Amp
	}
	s.rebuild(acc)

	return s
}

// SystemSize returns the number of qubits.
func (s *State) SystemSize() int { return s.n }

// Basis returns a copy of the stored components in their current order.
func (s *State) Basis() []BasisState {
	out := make([]BasisState, len(s.basis))
	copy(out, s.basis)

	return out
}

// Amplitude returns the amplitude of bits, 0 when absent.
func (s *State) Amplitude(bits uint64) complex128 {
	for _, b := range s.basis {
		if b.Bits == bits {
			return b.Amp
		}
	}

	return 0
}

// Clone returns a deep copy with a forked random source.
func (s *State) Clone() *State {
	return &State{n: s.n, basis: s.Basis(), rng: s.rng.Fork()}
}

// rebuild replaces the component list from an accumulator map, pruning.
// The result is sorted so runs with a fixed seed are reproducible.
func (s *State) rebuild(acc map[uint64]complex128) {
	next := s.basis[:0]
	for bits, amp := range acc {
		if abs(amp) > Eps {
			next = append(next, BasisState{Bits: bits, Amp: amp})
		}
	}
	s.basis = next
	s.sortBasis()
}

func (s *State) sortBasis() {
	slices.SortFunc(s.basis, func(a, b BasisState) int { return cmp.Compare(a.Bits, b.Bits) })
}

// String lists components, one per line, bitstring printed MSB first.
func (s *State) String() string {
	var sb strings.Builder
	for i, b := range s.basis {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%0*b: %.2f", max(s.n, 1), b.Bits, b.Amp)
	}

	return sb.String()
}
