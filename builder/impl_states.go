// SPDX-License-Identifier: MIT
// Package: cliffordsim/builder
//
// impl_states.go - fixed state-preparation circuits.
//
// Polarize: H on every qubit (|0…0⟩ → |+…+⟩).
// GHZ:      H on qubit 0, then a CX chain 0→1→…→n-1.
// Cluster:  H on every qubit, then CZ between neighbours on a line
//           (closed into a ring when periodic and n > 2).

package builder

import (
	"github.com/katalvlaran/cliffordsim/circuit"
	"github.com/katalvlaran/cliffordsim/quantum"
)

// Polarize returns a Constructor applying H to every qubit.
func Polarize() Constructor {
	return func(p *circuit.Program, _ builderConfig) error {
		for q := 0; q < p.NumQubits; q++ {
			p.Add(quantum.GateH, q)
		}

		return nil
	}
}

// GHZ returns a Constructor preparing (|0…0⟩ + |1…1⟩)/√2.
func GHZ() Constructor {
	return func(p *circuit.Program, _ builderConfig) error {
		if err := validateMin(MethodGHZ, p.NumQubits, MinGHZQubits); err != nil {
			return err
		}
		p.Add(quantum.GateH, 0)
		for q := 1; q < p.NumQubits; q++ {
			p.Add(quantum.GateCX, q-1, q)
		}

		return nil
	}
}

// Cluster returns a Constructor preparing the one-dimensional cluster
// state; periodic closes the line into a ring.
func Cluster(periodic bool) Constructor {
	return func(p *circuit.Program, _ builderConfig) error {
		n := p.NumQubits
		if err := validateMin(MethodCluster, n, MinClusterQubits); err != nil {
			return err
		}
		for q := 0; q < n; q++ {
			p.Add(quantum.GateH, q)
		}
		for q := 0; q+1 < n; q++ {
			p.Add(quantum.GateCZ, q, q+1)
		}
		if periodic && n > 2 {
			p.Add(quantum.GateCZ, n-1, 0)
		}

		return nil
	}
}
