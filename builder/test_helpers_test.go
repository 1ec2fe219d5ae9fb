package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliffordsim/builder"
	"github.com/katalvlaran/cliffordsim/circuit"
	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/vector"
)

// build is BuildCircuit that fails the test on error.
func build(t *testing.T, n int, opts []builder.BuilderOption, cons ...builder.Constructor) *circuit.Program {
	t.Helper()
	p, err := builder.BuildCircuit(n, opts, cons...)
	require.NoError(t, err)
	return p
}

// run executes p on st without the vector phase fix.
func run(t *testing.T, st quantum.State, p *circuit.Program) {
	t.Helper()
	_, err := circuit.Run(st, p, circuit.WithoutFinish())
	require.NoError(t, err)
}

// finished returns a phase-fixed copy of v.
func finished(v *vector.State) *vector.State {
	c := v.Clone()
	c.FinishExecution()
	return c
}

// stepRecorder records the step indices it is asked to run.
type stepRecorder struct{ steps []int }

func (r *stepRecorder) Step(_ quantum.State, t int) { r.steps = append(r.steps, t) }
