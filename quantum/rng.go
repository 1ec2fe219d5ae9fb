// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"
	"math/rand/v2"
)

// seedMix decorrelates the second PCG word when only one seed is given.
const seedMix = 0x9e3779b97f4a7c15

// Option configures the random source of a new state.
type Option func(*rngOptions)

type rngOptions struct {
	seeded bool
	hi, lo uint64
}

// WithSeed makes the state's random source deterministic.
func WithSeed(seed uint64) Option {
	return func(o *rngOptions) {
		o.seeded = true
		o.hi, o.lo = seed, seed^seedMix
	}
}

// WithPCG seeds the source with both PCG words.
func WithPCG(hi, lo uint64) Option {
	return func(o *rngOptions) {
		o.seeded = true
		o.hi, o.lo = hi, lo
	}
}

// RNG is the per-instance random source owned by every representation.
// It is not safe for concurrent use.
type RNG struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewRNG builds a source from opts. Without a seed option it is seeded
// from the runtime's global generator.
func NewRNG(opts ...Option) *RNG {
	var o rngOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.hi, o.lo = rand.Uint64(), rand.Uint64()
	}
	src := rand.NewPCG(o.hi, o.lo)

	return &RNG{src: src, r: rand.New(src)}
}

// Rand exposes the underlying generator.
func (g *RNG) Rand() *rand.Rand { return g.r }

// Coin returns 0 or 1 with equal probability.
func (g *RNG) Coin() int { return int(g.r.Uint64() >> 63) }

// Float64 returns a uniform value in [0, 1).
func (g *RNG) Float64() float64 { return g.r.Float64() }

// IntN returns a uniform value in [0, n).
func (g *RNG) IntN(n int) int { return g.r.IntN(n) }

// Fork derives an independent child source and advances the parent.
func (g *RNG) Fork() *RNG {
	src := rand.NewPCG(g.r.Uint64(), g.r.Uint64())

	return &RNG{src: src, r: rand.New(src)}
}

// MarshalBinary snapshots the generator state.
func (g *RNG) MarshalBinary() ([]byte, error) { return g.src.MarshalBinary() }

// UnmarshalBinary restores a snapshot taken by MarshalBinary.
func (g *RNG) UnmarshalBinary(data []byte) error {
	if g.src == nil {
		g.src = rand.NewPCG(0, 0)
		g.r = rand.New(g.src)
	}
	if err := g.src.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("RNG.UnmarshalBinary: %w", err)
	}

	return nil
}
