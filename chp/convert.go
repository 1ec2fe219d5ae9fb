// SPDX-License-Identifier: MIT

package chp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cliffordsim/matrix"
	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/vector"
)

// MaxVectorQubits bounds ToVector; the projector is 2^n × 2^n.
const MaxVectorQubits = 10

// projectorEps separates populated basis states from numerical zero.
const projectorEps = 1e-9

var paulis = map[byte][][]complex128{
	'I': {{1, 0}, {0, 1}},
	'X': {{0, 1}, {1, 0}},
	'Y': {{0, -1i}, {1i, 0}},
	'Z': {{1, 0}, {0, -1}},
}

// generator returns the dense matrix of a signed Pauli string. Qubit j
// acts on bit j of the basis index, so qubit n-1 is the leftmost factor.
func generator(p PauliString) (matrix.Matrix, error) {
	var g matrix.Matrix
	for j := p.n - 1; j >= 0; j-- {
		f, err := matrix.NewDenseFrom(paulis[p.Op(j)])
		if err != nil {
			return nil, err
		}
		if g == nil {
			g = f
			continue
		}
		if g, err = matrix.Kron(g, f); err != nil {
			return nil, err
		}
	}
	if p.r {
		return matrix.Scale(g, -1)
	}

	return g, nil
}

// ToVector converts the state to the equivalent sparse vector via the
// projector ∏(I + g_i)/2 = |ψ⟩⟨ψ|. The result has been through
// FinishExecution. It panics with quantum.ErrUnsupported above
// MaxVectorQubits.
func (s *State) ToVector(opts ...quantum.Option) *vector.State {
	if s.n == 0 || s.n > MaxVectorQubits {
		quantum.Unsupported("chp.ToVector", fmt.Sprintf("%d qubits", s.n))
	}
	proj, err := s.projector()
	if err != nil {
		panic(fmt.Errorf("chp.ToVector: %w", err))
	}

	dim := 1 << uint(s.n)
	k0 := -1
	var p0 float64
	for k := 0; k < dim; k++ {
		v, _ := proj.At(k, k)
		if real(v) > projectorEps {
			k0, p0 = k, real(v)
			break
		}
	}
	if k0 < 0 {
		panic(fmt.Errorf("chp.ToVector: empty projector: %w", quantum.ErrUnsupported))
	}

	// The populated column is P|k0⟩ = ⟨ψ|k0⟩·|ψ⟩.
	unit := make([]complex128, dim)
	unit[k0] = 1
	col, err := matrix.MatVec(proj, unit)
	if err != nil {
		panic(fmt.Errorf("chp.ToVector: %w", err))
	}
	norm := complex(math.Sqrt(p0), 0)
	basis := make([]vector.BasisState, 0, dim)
	for k, amp := range col {
		if amp != 0 {
			basis = append(basis, vector.BasisState{Bits: uint64(k), Amp: amp / norm})
		}
	}
	out := vector.FromAmplitudes(s.n, basis, opts...)
	out.FinishExecution()

	return out
}

func (s *State) projector() (*matrix.Dense, error) {
	dim := 1 << uint(s.n)
	id, err := matrix.Identity(dim)
	if err != nil {
		return nil, err
	}
	var proj matrix.Matrix = id
	for i := 0; i < s.n; i++ {
		g, err := generator(s.tab.rows[s.n+i])
		if err != nil {
			return nil, err
		}
		if g, err = matrix.Add(g, id); err != nil {
			return nil, err
		}
		if proj, err = matrix.Mul(proj, g); err != nil {
			return nil, err
		}
		if proj, err = matrix.Scale(proj, 0.5); err != nil {
			return nil, err
		}
	}

	return proj.(*matrix.Dense), nil
}
