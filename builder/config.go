// SPDX-License-Identifier: MIT
// Package: cliffordsim/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • rng         = nil  (stochastic builders return ErrNeedRandSource)
//   • gateWidth   = DefaultGateWidth
//   • measureProb = DefaultMeasureProb

package builder

import "math/rand/v2"

// pcgStream decorrelates the PCG stream word from the seed word.
const pcgStream = 0x9e3779b97f4a7c15

// builderConfig aggregates all knobs used by constructors. It is passed
// by value.
type builderConfig struct {
	rng         *rand.Rand
	gateWidth   int
	measureProb float64
}

// newBuilderConfig applies opts over the defaults, last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		gateWidth:   DefaultGateWidth,
		measureProb: DefaultMeasureProb,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
