package quantum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliffordsim/quantum"
)

func TestRNG_SeedIsDeterministic(t *testing.T) {
	a := quantum.NewRNG(quantum.WithSeed(7))
	b := quantum.NewRNG(quantum.WithSeed(7))
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Coin(), b.Coin())
	}
}

func TestRNG_MarshalRoundTrip(t *testing.T) {
	a := quantum.NewRNG(quantum.WithPCG(1, 2))
	_ = a.IntN(10)
	snap, err := a.MarshalBinary()
	require.NoError(t, err)

	var b quantum.RNG
	require.NoError(t, b.UnmarshalBinary(snap))
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRNG_ForkDiverges(t *testing.T) {
	parent := quantum.NewRNG(quantum.WithSeed(3))
	child := parent.Fork()
	same := 0
	for i := 0; i < 64; i++ {
		if parent.Rand().Uint64() == child.Rand().Uint64() {
			same++
		}
	}
	assert.Less(t, same, 2)
}

func TestRNG_CoinIsBit(t *testing.T) {
	g := quantum.NewRNG(quantum.WithSeed(11))
	ones := 0
	for i := 0; i < 1000; i++ {
		c := g.Coin()
		require.Contains(t, []int{0, 1}, c)
		ones += c
	}
	assert.InDelta(t, 500, ones, 100)
}
