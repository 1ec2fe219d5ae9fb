package graphstate_test

import (
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/cliffordsim/chp"
	"github.com/katalvlaran/cliffordsim/graphstate"
	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/vector"
)

// unitaries is the gate pool drawn by the property tests.
var unitaries = []quantum.Gate{
	quantum.GateH, quantum.GateS, quantum.GateSd,
	quantum.GateX, quantum.GateY, quantum.GateZ,
	quantum.GateSqrtX, quantum.GateSqrtXd, quantum.GateSqrtY, quantum.GateSqrtYd,
	quantum.GateCX, quantum.GateCY, quantum.GateCZ,
}

// trio runs one circuit on all three representations. Measurement
// outcomes are sampled by the graph state and imposed on the others.
type trio struct {
	g *graphstate.State
	c *chp.State
	v *vector.State
}

func newTrio(n int, seed uint64) *trio {
	return &trio{
		g: graphstate.New(n, quantum.WithSeed(seed)),
		c: chp.New(n, quantum.WithSeed(seed+1)),
		v: vector.New(n, quantum.WithSeed(seed+2)),
	}
}

func (tr *trio) apply(g quantum.Gate, qubits ...int) {
	quantum.Apply(tr.g, g, qubits...)
	quantum.Apply(tr.c, g, qubits...)
	quantum.Apply(tr.v, g, qubits...)
}

func (tr *trio) measure(t require.TestingT, q int) int {
	out := tr.g.MZR(q)
	require.NoError(t, tr.c.MZRForced(q, out))
	require.Greater(t, tr.v.MZRForced(q, out), 0.0, "graph outcome %d impossible on vector", out)

	return out
}

// requireSameState compares both stabilizer states with the vector.
func (tr *trio) requireSameState(t require.TestingT) {
	want := tr.v.Clone()
	want.FinishExecution()
	got := tr.g.ToVector()
	require.Truef(t, got.Equal(want), "graph\n%v\nvector\n%v\ngraph state\n%v", got, want, tr.g)
	require.Truef(t, tr.c.ToVector().Equal(want), "tableau\n%v\nvector\n%v", tr.c.ToVector(), want)
}

// drawCircuit applies a random circuit of up to maxSteps operations.
func (tr *trio) drawCircuit(t *rapid.T, maxSteps int) {
	n := tr.g.SystemSize()
	steps := rapid.IntRange(0, maxSteps).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		q1 := rapid.IntRange(0, n-1).Draw(t, "q1")
		if rapid.IntRange(0, 5).Draw(t, "kind") == 0 {
			tr.measure(t, q1)
			continue
		}
		g := rapid.SampledFrom(unitaries).Draw(t, "gate")
		if g.Qubits() == 1 {
			tr.apply(g, q1)
			continue
		}
		if n < 2 {
			continue
		}
		q2 := (q1 + rapid.IntRange(1, n-1).Draw(t, "shift")) % n
		tr.apply(g, q1, q2)
	}
}

// drawSubset draws a non-empty proper subset of [0,n).
func drawSubset(t *rapid.T, n int) []int {
	perm := rapid.Permutation(identity(n)).Draw(t, "perm")
	k := rapid.IntRange(1, n-1).Draw(t, "k")
	return perm[:k]
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
