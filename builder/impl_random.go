// SPDX-License-Identifier: MIT
// Package: cliffordsim/builder
//
// impl_random.go - implementation of the Random(depth) constructor.
//
// Contract:
//   • depth ≥ 0 (else ErrTooFewQubits); cfg.rng required (ErrNeedRandSource).
//   • Each step draws one unitary Clifford gate uniformly from the gate
//     table and distinct operands uniformly; two-qubit gates are skipped
//     on a single qubit.
//   • After each step, with probability cfg.measureProb, one uniformly
//     drawn qubit is measured (mzr) into a fresh classical register.
//
// Complexity: O(depth) instructions.

package builder

import (
	"github.com/katalvlaran/cliffordsim/circuit"
	"github.com/katalvlaran/cliffordsim/quantum"
)

const measureGate = quantum.GateMZR

// unitaryGates is the draw pool: every non-measurement gate.
var unitaryGates = func() []quantum.Gate {
	var out []quantum.Gate
	for _, g := range quantum.Gates() {
		if !g.IsMeasurement() {
			out = append(out, g)
		}
	}

	return out
}()

// Random returns a Constructor appending depth random Clifford gates.
func Random(depth int) Constructor {
	return func(p *circuit.Program, cfg builderConfig) error {
		if err := validateMin(MethodRandom, depth, 0); err != nil {
			return err
		}
		if err := validateRand(MethodRandom, cfg); err != nil {
			return err
		}
		if err := validateProbability(MethodRandom, cfg.measureProb); err != nil {
			return err
		}

		n := p.NumQubits
		for step := 0; step < depth; step++ {
			g := unitaryGates[cfg.rng.IntN(len(unitaryGates))]
			q1 := cfg.rng.IntN(n)
			switch {
			case g.Qubits() == 1:
				p.Add(g, q1)
			case n > 1:
				q2 := (q1 + 1 + cfg.rng.IntN(n-1)) % n
				p.Add(g, q1, q2)
			}

			if cfg.measureProb > 0 && cfg.rng.Float64() < cfg.measureProb {
				measure(p, cfg.rng.IntN(n))
			}
		}

		return nil
	}
}
