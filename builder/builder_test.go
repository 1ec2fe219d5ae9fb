package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliffordsim/builder"
	"github.com/katalvlaran/cliffordsim/chp"
	"github.com/katalvlaran/cliffordsim/circuit"
	"github.com/katalvlaran/cliffordsim/graphstate"
	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/vector"
)

func TestBuildCircuit_GHZ(t *testing.T) {
	p := build(t, 3, nil, builder.GHZ())
	want := "@pragma total_num_qubits 3\n@pragma total_num_cbits 0\nh q0\ncx q0 q1\ncx q1 q2\n"
	assert.Equal(t, want, circuit.Format(p))

	st := chp.New(3)
	run(t, st, p)
	assert.Equal(t, []string{"+XXX", "+ZZI", "+IZZ"}, st.Stabilizers())
}

func TestBuildCircuit_Errors(t *testing.T) {
	tests := []struct {
		name string
		n    int
		opts []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"no qubits", 0, nil, []builder.Constructor{builder.Polarize()}, builder.ErrTooFewQubits},
		{"cluster of one", 1, nil, []builder.Constructor{builder.Cluster(false)}, builder.ErrTooFewQubits},
		{"random without rng", 3, nil, []builder.Constructor{builder.Random(4)}, builder.ErrNeedRandSource},
		{"negative depth", 3, []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.Random(-1)}, builder.ErrTooFewQubits},
		{"nil constructor", 2, nil, []builder.Constructor{builder.Polarize(), nil}, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := builder.BuildCircuit(tc.n, tc.opts, tc.cons...)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithGateWidth(0) })
	assert.Panics(t, func() { builder.WithMeasureProb(1.5) })
	assert.Panics(t, func() { builder.WithMeasureProb(math.NaN()) })
	assert.NotPanics(t, func() { builder.WithMeasureProb(1) })
}

func TestCluster_Entropy(t *testing.T) {
	line := chp.New(4)
	run(t, line, build(t, 4, nil, builder.Cluster(false)))
	assert.Equal(t, float32(1), line.RenyiEntropy([]int{0}))
	assert.Equal(t, float32(1), line.RenyiEntropy([]int{0, 1}))
	assert.Equal(t, float32(2), line.RenyiEntropy([]int{0, 2}))

	ring := graphstate.New(4)
	run(t, ring, build(t, 4, nil, builder.Cluster(true)))
	assert.Len(t, ring.Edges(), 4)
	assert.Equal(t, float32(2), ring.RenyiEntropy([]int{0, 1}))
}

func TestPolarize(t *testing.T) {
	p := build(t, 3, nil, builder.Polarize())
	require.Len(t, p.Instructions, 3)

	st := chp.New(3)
	run(t, st, p)
	assert.Equal(t, []string{"+XII", "+IXI", "+IIX"}, st.Stabilizers())
}

func TestRandom_Deterministic(t *testing.T) {
	opts := func(seed uint64) []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(seed), builder.WithMeasureProb(0.2)}
	}
	a := build(t, 5, opts(7), builder.Random(60))
	b := build(t, 5, opts(7), builder.Random(60))
	c := build(t, 5, opts(8), builder.Random(60))

	assert.Equal(t, circuit.Format(a), circuit.Format(b))
	assert.NotEqual(t, circuit.Format(a), circuit.Format(c))

	measured := 0
	for _, in := range a.Instructions {
		if in.Gate.IsMeasurement() {
			assert.Equal(t, measured, in.Reg)
			measured++
		}
	}
	assert.Equal(t, measured, a.NumCbits)
}

func TestRandom_SameStateOnAllRepresentations(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		p := build(t, 4, []builder.BuilderOption{builder.WithSeed(seed)}, builder.Random(40))

		g := graphstate.New(4)
		c := chp.New(4)
		v := vector.New(4)
		run(t, g, p)
		run(t, c, p)
		run(t, v, p)

		want := finished(v)
		require.True(t, g.ToVector().Equal(want), "seed %d\n%s", seed, circuit.Format(p))
		require.True(t, c.ToVector().Equal(want), "seed %d\n%s", seed, circuit.Format(p))
	}
}

func TestEvolve_StepNumbers(t *testing.T) {
	rec := &stepRecorder{}
	builder.Evolve(rec, vector.New(1), 3, 2)
	assert.Equal(t, []int{3, 4}, rec.steps)
}

func TestEvolutions_NeedRand(t *testing.T) {
	_, err := builder.NewQuantumAutomaton()
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.NewRandomCliffordBrickwall(builder.WithGateWidth(3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestQuantumAutomaton_MirroredWithoutMeasurement(t *testing.T) {
	const n = 6
	g := graphstate.New(n)
	v := vector.New(n)
	c := chp.New(n)
	for _, st := range []quantum.State{g, v, c} {
		run(t, st, build(t, n, nil, builder.Polarize()))
		qa, err := builder.NewQuantumAutomaton(builder.WithSeed(5))
		require.NoError(t, err)
		builder.Evolve(qa, st, 0, 4)
	}

	want := finished(v)
	assert.True(t, g.ToVector().Equal(want))
	assert.True(t, c.ToVector().Equal(want))
	assert.Equal(t, c.RenyiEntropy([]int{0, 1, 2}), g.RenyiEntropy([]int{0, 1, 2}))
}

func TestQuantumAutomaton_FullMeasurementDisentangles(t *testing.T) {
	st := chp.New(6, quantum.WithSeed(3))
	qa, err := builder.NewQuantumAutomaton(builder.WithSeed(9), builder.WithMeasureProb(1))
	require.NoError(t, err)
	builder.Evolve(qa, st, 0, 3)

	for k := 1; k < 6; k++ {
		assert.Equal(t, float32(0), st.RenyiEntropy([]int{0, k}))
	}
}

func TestRandomCliffordBrickwall_MirroredWithoutMeasurement(t *testing.T) {
	for _, w := range []int{2, 3} {
		const n = 6
		g := graphstate.New(n)
		v := vector.New(n)
		for _, st := range []quantum.State{g, v} {
			rc, err := builder.NewRandomCliffordBrickwall(builder.WithSeed(11), builder.WithGateWidth(w))
			require.NoError(t, err)
			builder.Evolve(rc, st, 0, 5)
		}
		assert.True(t, g.ToVector().Equal(finished(v)), "width %d", w)
	}
}

func TestRandomCliffordBrickwall_NativeSampler(t *testing.T) {
	st := chp.New(8, quantum.WithSeed(4))
	rc, err := builder.NewRandomCliffordBrickwall(builder.WithSeed(4), builder.WithMeasureProb(0.1))
	require.NoError(t, err)
	builder.Evolve(rc, st, 0, 20)

	for k := 1; k <= 4; k++ {
		s := st.RenyiEntropy(identity(k))
		assert.GreaterOrEqual(t, s, float32(0))
		assert.LessOrEqual(t, s, float32(k))
	}

	full, err := builder.NewRandomCliffordBrickwall(builder.WithSeed(4), builder.WithMeasureProb(1))
	require.NoError(t, err)
	full.Step(st, 0)
	assert.Equal(t, float32(0), st.RenyiEntropy(identity(4)))
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
