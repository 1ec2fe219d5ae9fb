// SPDX-License-Identifier: MIT
// Package: cliffordsim/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors and evolutions themselves never panic on them.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand/v2"
)

// BuilderOption customizes a constructor or evolution by mutating a
// builderConfig before it runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit generator for stochastic builders.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a PCG-backed generator from seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed^pcgStream))
	}
}

// WithGateWidth sets the block width of random Clifford layers.
// Panics if w < MinGateWidth.
func WithGateWidth(w int) BuilderOption {
	if w < MinGateWidth {
		panic(fmt.Sprintf("builder: WithGateWidth(%d)", w))
	}
	return func(c *builderConfig) {
		c.gateWidth = w
	}
}

// WithMeasureProb sets the per-qubit measurement probability applied
// after every gate layer. Panics outside [0,1].
func WithMeasureProb(p float64) BuilderOption {
	if !(p >= MinProbability && p <= MaxProbability) {
		panic(fmt.Sprintf("builder: WithMeasureProb(%v)", p))
	}
	return func(c *builderConfig) {
		c.measureProb = p
	}
}
