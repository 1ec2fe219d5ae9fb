// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/cliffordsim/matrix"
	"github.com/katalvlaran/cliffordsim/quantum"
)

// ReducedDensity returns ρ_A over qubits. Row index bit j is qubits[j].
//
// Components are grouped by their bits outside A, so only pairs agreeing
// on the complement contribute amp(b1)·conj(amp(b2)).
func (s *State) ReducedDensity(qubits []int) *matrix.Dense {
	quantum.CheckQubits(s.n, qubits)
	dim := 1 << uint(len(qubits))
	rho, err := matrix.NewDense(dim, dim)
	if err != nil {
		panic(fmt.Errorf("vector.ReducedDensity: %w", err))
	}

	var inA uint64
	for _, q := range qubits {
		inA |= 1 << uint(q)
	}
	groups := make(map[uint64][]BasisState)
	for _, b := range s.basis {
		groups[b.Bits&^inA] = append(groups[b.Bits&^inA], b)
	}

	local := func(bits uint64) int {
		idx := 0
		for j, q := range qubits {
			idx |= int(bits>>uint(q)&1) << uint(j)
		}
		return idx
	}
	for _, group := range groups {
		for _, b1 := range group {
			i := local(b1.Bits)
			for _, b2 := range group {
				_ = rho.AddAt(i, local(b2.Bits), b1.Amp*cmplx.Conj(b2.Amp))
			}
		}
	}

	return rho
}

// RenyiEntropy returns −log2 Tr(ρ_A²), clamped at zero against rounding.
// The purity is taken as Tr(ρ†ρ), which is real for any rounding of ρ.
func (s *State) RenyiEntropy(qubits []int) float32 {
	rho := s.ReducedDensity(qubits)
	adj, err := matrix.Adjoint(rho)
	if err != nil {
		panic(fmt.Errorf("vector.RenyiEntropy: %w", err))
	}
	rho2, err := matrix.Mul(adj, rho)
	if err != nil {
		panic(fmt.Errorf("vector.RenyiEntropy: %w", err))
	}
	purity, err := matrix.Trace(rho2)
	if err != nil {
		panic(fmt.Errorf("vector.RenyiEntropy: %w", err))
	}

	return float32(max(0, -math.Log2(real(purity))))
}
