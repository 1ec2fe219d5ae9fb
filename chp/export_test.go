package chp

import (
	"math/rand/v2"

	"github.com/katalvlaran/cliffordsim/quantum"
)

// Canonicalize exposes the sampler's scratch tableau to tests.
func Canonicalize(rng *rand.Rand, target quantum.State, qubits []int) *Tableau {
	return canonicalize(rng, target, qubits)
}
