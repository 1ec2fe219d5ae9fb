package sweep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/cliffordsim/sweep"
)

func TestSampleOf(t *testing.T) {
	s := sweep.SampleOf([]float64{1, 2, 3, 4})
	assert.Equal(t, 4, s.NumSamples)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), s.Std, 1e-12)

	assert.Equal(t, sweep.Sample{}, sweep.SampleOf(nil))
	assert.Equal(t, sweep.Sample{Mean: 3, NumSamples: 1}, sweep.NewSample(3))
}

func TestCombine_ZeroIsIdentity(t *testing.T) {
	s := sweep.SampleOf([]float64{1, 5})
	assert.Equal(t, s, s.Combine(sweep.Sample{}))
	assert.Equal(t, s, sweep.Sample{}.Combine(s))
}

func drawValues(t *rapid.T, label string) []float64 {
	return rapid.SliceOfN(rapid.Float64Range(0, 10), 0, 20).Draw(t, label)
}

func TestCombine_MatchesPooled(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawValues(t, "a"), drawValues(t, "b")
		got := sweep.SampleOf(a).Combine(sweep.SampleOf(b))
		want := sweep.SampleOf(append(append([]float64{}, a...), b...))

		require.Equal(t, want.NumSamples, got.NumSamples)
		require.InDelta(t, want.Mean, got.Mean, 1e-9)
		require.InDelta(t, want.Std, got.Std, 1e-6)
	})
}

func TestCombine_Associative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := sweep.SampleOf(drawValues(t, "a"))
		b := sweep.SampleOf(drawValues(t, "b"))
		c := sweep.SampleOf(drawValues(t, "c"))

		l, r := a.Combine(b).Combine(c), a.Combine(b.Combine(c))
		require.Equal(t, l.NumSamples, r.NumSamples)
		require.InDelta(t, l.Mean, r.Mean, 1e-9)
		require.InDelta(t, l.Std, r.Std, 1e-6)
	})
}
