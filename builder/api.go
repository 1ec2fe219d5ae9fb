// SPDX-License-Identifier: MIT
// Package: cliffordsim/builder
//
// api.go - thin public entry-points for the builder package.
//
// Contract:
//   - One orchestrator: BuildCircuit(n, bopts, cons...). Creates the program,
//     resolves cfg, runs cons in order and validates the result.
//   - Static factories live in impl_*.go, evolutions in evolution.go.
//   - Same inputs, options, seed and constructor order ⇒ identical programs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliffordsim/circuit"
)

// Constructor appends instructions to p using the resolved builderConfig.
// Constructors validate parameters early and return sentinel errors.
// Measurements allocate their classical registers by growing p.NumCbits.
type Constructor func(p *circuit.Program, cfg builderConfig) error

// BuildCircuit creates a program over numQubits qubits, resolves the
// builder configuration from bopts and applies all constructors in order.
// The finished program is validated before it is returned.
//
// Errors:
//   - ErrTooFewQubits if numQubits < 1.
//   - ErrConstructFailed for a nil constructor or an invalid program.
//   - Any constructor error, wrapped with "BuildCircuit: %w".
func BuildCircuit(numQubits int, bopts []BuilderOption, cons ...Constructor) (*circuit.Program, error) {
	if err := validateMin("BuildCircuit", numQubits, 1); err != nil {
		return nil, err
	}
	p := circuit.NewProgram(numQubits, 0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildCircuit: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(p, cfg); err != nil {
			return nil, fmt.Errorf("BuildCircuit: %w", err)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("BuildCircuit: %w: %w", ErrConstructFailed, err)
	}

	return p, nil
}

// measure appends a measurement into a fresh classical register.
func measure(p *circuit.Program, q int) {
	p.Measure(measureGate, q, p.NumCbits)
	p.NumCbits++
}
