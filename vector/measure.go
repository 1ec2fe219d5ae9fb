// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/cliffordsim/quantum"
)

// Probability returns the probability of reading 1 on q.
func (s *State) Probability(q int) float64 {
	quantum.CheckQubit(s.n, q)
	var p0, p1 float64
	for _, b := range s.basis {
		w := real(b.Amp)*real(b.Amp) + imag(b.Amp)*imag(b.Amp)
		if b.bit(q) == 0 {
			p0 += w
		} else {
			p1 += w
		}
	}

	return p1 / (p0 + p1)
}

// MZR samples outcome k with probability Σ|amp|² over bit q = k, drops the
// other branch and renormalizes.
func (s *State) MZR(q int) int {
	p1 := s.Probability(q)
	out := 0
	if s.rng.Float64() < p1 {
		out = 1
	}
	s.project(q, out, p1)

	return out
}

// MZRForced projects q onto outcome and returns its prior probability.
// A zero-probability outcome, including any value other than 0 or 1,
// leaves the state untouched and returns 0.
func (s *State) MZRForced(q, outcome int) float64 {
	p1 := s.Probability(q)
	if outcome != 0 && outcome != 1 {
		return 0
	}
	p := p1
	if outcome == 0 {
		p = 1 - p1
	}
	if p <= Eps {
		return 0
	}
	s.project(q, outcome, p1)

	return p
}

func (s *State) project(q, outcome int, p1 float64) {
	p := p1
	if outcome == 0 {
		p = 1 - p1
	}
	norm := complex(math.Sqrt(p), 0)
	next := s.basis[:0]
	for _, b := range s.basis {
		if int(b.bit(q)) != outcome {
			continue
		}
		b.Amp /= norm
		if abs(b.Amp) > Eps {
			next = append(next, b)
		}
	}
	s.basis = next
}
