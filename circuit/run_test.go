package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/cliffordsim/circuit"
	"github.com/katalvlaran/cliffordsim/quantum"
	"github.com/katalvlaran/cliffordsim/vector"
)

func TestRun_BellOutcomesAgree(t *testing.T) {
	p, err := circuit.ParseString(bell)
	require.NoError(t, err)

	for seed := uint64(0); seed < 16; seed++ {
		st := vector.New(2, quantum.WithSeed(seed))
		regs, err := circuit.Run(st, p)
		require.NoError(t, err)
		require.Len(t, regs, 2)
		assert.Equal(t, regs[0], regs[1], "seed %d", seed)
		assert.Len(t, st.Basis(), 1)
	}
}

func TestRun_UnwrittenRegistersAreMinusOne(t *testing.T) {
	p := circuit.NewProgram(1, 3).Measure(quantum.GateMZR, 0, 1)
	regs, err := circuit.Run(vector.New(1), p)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, -1}, regs)
}

func TestRun_MeasurementBases(t *testing.T) {
	// |+⟩ reads 0 in X, |+i⟩ reads 0 in Y, |1⟩ reads 1 in Z.
	p, err := circuit.ParseString(`@pragma total_num_qubits 3
@pragma total_num_cbits 3
h q0
h q1
s q1
x q2
mxr q0 c0
myr q1 c1
mzr q2 c2
`)
	require.NoError(t, err)

	regs, err := circuit.Run(vector.New(3, quantum.WithSeed(1)), p)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1}, regs)
}

func TestRun_StateTooSmall(t *testing.T) {
	p := circuit.NewProgram(3, 0).Add(quantum.GateH, 2)
	st := vector.New(2)

	_, err := circuit.Run(st, p)
	require.ErrorIs(t, err, circuit.ErrRegister)
	assert.Equal(t, []vector.BasisState{{Bits: 0, Amp: 1}}, st.Basis())
}

func TestRun_PrintLogsState(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := circuit.NewProgram(1, 0).Add(quantum.GateX, 0).Print()

	_, err := circuit.Run(vector.New(1), p, circuit.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("state").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["dump"], "1: (1.00+0.00i)")
}

func TestRun_WithoutFinishKeepsPhase(t *testing.T) {
	p := circuit.NewProgram(1, 0).Add(quantum.GateX, 0).Add(quantum.GateS, 0)

	raw := vector.New(1)
	_, err := circuit.Run(raw, p, circuit.WithoutFinish())
	require.NoError(t, err)
	assert.InDelta(t, 1, imag(raw.Amplitude(1)), 1e-12) // S·X|0⟩ = i|1⟩, no phase fix

	fixed := vector.New(1)
	_, err = circuit.Run(fixed, p)
	require.NoError(t, err)
	assert.InDelta(t, 1, real(fixed.Amplitude(1)), 1e-12)
}
