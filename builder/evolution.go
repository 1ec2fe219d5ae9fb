// SPDX-License-Identifier: MIT
// Package: cliffordsim/builder
//
// evolution.go - monitored brickwall circuits applied step by step.
//
// Unlike the static constructors, an Evolution acts on a live state: the
// measurement decisions and outcomes of one step shape the next. Gate
// orientation, block placement and measurement decisions draw from the
// builder's generator; measurement outcomes draw from the state's own.

package builder

import (
	"github.com/katalvlaran/cliffordsim/chp"
	"github.com/katalvlaran/cliffordsim/quantum"
)

// Evolution advances a state by one timestep. t counts steps from zero
// and lets layered circuits alternate their brick offset.
type Evolution interface {
	Step(st quantum.State, t int)
}

// Evolve applies steps timesteps of e to st, numbering them from first.
func Evolve(e Evolution, st quantum.State, first, steps int) {
	for t := first; t < first+steps; t++ {
		e.Step(st, t)
	}
}

// QuantumAutomaton is the CX/CZ brickwall: CX and CZ layers on the even
// pairs, then on the odd pairs (periodic boundary), every pair oriented
// at random, then each qubit measured with probability p and followed
// by H.
type QuantumAutomaton struct {
	cfg builderConfig
}

// NewQuantumAutomaton resolves opts; WithSeed or WithRand is required.
func NewQuantumAutomaton(opts ...BuilderOption) (*QuantumAutomaton, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateRand(MethodQuantumAutomaton, cfg); err != nil {
		return nil, err
	}

	return &QuantumAutomaton{cfg: cfg}, nil
}

// Step applies one automaton timestep.
func (a *QuantumAutomaton) Step(st quantum.State, _ int) {
	a.layer(st, false, quantum.GateCX)
	a.layer(st, false, quantum.GateCZ)
	a.layer(st, true, quantum.GateCX)
	a.layer(st, true, quantum.GateCZ)

	for q := 0; q < st.SystemSize(); q++ {
		if a.cfg.rng.Float64() < a.cfg.measureProb {
			st.MZR(q)
			st.H(q)
		}
	}
}

func (a *QuantumAutomaton) layer(st quantum.State, offset bool, g quantum.Gate) {
	n := st.SystemSize()
	for i := 0; i < n/2; i++ {
		q1, q2 := 2*i, (2*i+1)%n
		if offset {
			q1, q2 = (2*i+1)%n, (2*i+2)%n
		}
		if a.cfg.rng.IntN(2) == 0 {
			q1, q2 = q2, q1
		}
		quantum.Apply(st, g, q1, q2)
	}
}

// RandomCliffordBrickwall applies uniformly random Cliffords to blocks of
// gate-width contiguous qubits (periodic), shifting the blocks by half a
// width on odd steps, then measures each qubit with probability p.
//
// States with a native sampler (quantum.CliffordSampler) draw the
// Cliffords themselves; others get the canonicalizer mirrored onto them
// from the builder's generator.
type RandomCliffordBrickwall struct {
	cfg builderConfig
}

// NewRandomCliffordBrickwall resolves opts; WithSeed or WithRand is
// required.
func NewRandomCliffordBrickwall(opts ...BuilderOption) (*RandomCliffordBrickwall, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateRand(MethodRandomCliffordBrickwall, cfg); err != nil {
		return nil, err
	}

	return &RandomCliffordBrickwall{cfg: cfg}, nil
}

// Step applies one brickwall timestep. Qubits left over when the width
// does not divide the system size stay idle for the layer.
func (b *RandomCliffordBrickwall) Step(st quantum.State, t int) {
	n, w := st.SystemSize(), b.cfg.gateWidth
	off := 0
	if t%2 == 1 {
		off = w / 2
	}

	block := make([]int, w)
	for k := 0; k < n/w; k++ {
		for j := range block {
			block[j] = (k*w + off + j) % n
		}
		if s, ok := st.(quantum.CliffordSampler); ok {
			s.RandomClifford(block)
		} else {
			chp.RandomClifford(b.cfg.rng, st, block)
		}
	}

	for q := 0; q < n; q++ {
		if b.cfg.rng.Float64() < b.cfg.measureProb {
			st.MZR(q)
		}
	}
}
