package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliffordsim/circuit"
	"github.com/katalvlaran/cliffordsim/quantum"
)

const bell = `
// Bell pair then readout
@pragma total_num_qubits 2
@pragma total_num_bits 2

H q0
cnot q0 q1   # alias
mzr q0 c0
MZR q1 r1
@pragma print
`

func TestParse_Bell(t *testing.T) {
	p, err := circuit.ParseString(bell)
	require.NoError(t, err)

	assert.Equal(t, 2, p.NumQubits)
	assert.Equal(t, 2, p.NumCbits)
	require.Len(t, p.Instructions, 5)

	assert.Equal(t, quantum.GateH, p.Instructions[0].Gate)
	assert.Equal(t, []int{0}, p.Instructions[0].Qubits)
	assert.Equal(t, -1, p.Instructions[0].Reg)
	assert.Equal(t, 6, p.Instructions[0].Line)

	assert.Equal(t, quantum.GateCX, p.Instructions[1].Gate)
	assert.Equal(t, []int{0, 1}, p.Instructions[1].Qubits)

	assert.Equal(t, quantum.GateMZR, p.Instructions[3].Gate)
	assert.Equal(t, 1, p.Instructions[3].Reg)
	assert.Equal(t, circuit.KindPrint, p.Instructions[4].Kind)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"unknown gate", "@pragma total_num_qubits 1\nt q0\n", circuit.ErrUnknownGate},
		{"missing operand", "@pragma total_num_qubits 2\ncx q0\n", circuit.ErrArity},
		{"missing register", "@pragma total_num_qubits 1\nmzr q0\n", circuit.ErrArity},
		{"bad qubit prefix", "@pragma total_num_qubits 1\nh x0\n", circuit.ErrSyntax},
		{"bad index", "@pragma total_num_qubits 1\nh q-1\n", circuit.ErrSyntax},
		{"qubit out of range", "@pragma total_num_qubits 1\nh q1\n", circuit.ErrRegister},
		{"register out of range", "@pragma total_num_qubits 1\nmzr q0 c0\n", circuit.ErrRegister},
		{"same qubit", "@pragma total_num_qubits 2\ncz q1 q1\n", circuit.ErrSyntax},
		{"unknown pragma", "@pragma depth 3\n", circuit.ErrSyntax},
		{"bad count", "@pragma total_num_qubits many\n", circuit.ErrSyntax},
		{"print with args", "@pragma print now\n", circuit.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := circuit.ParseString(tc.src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_ErrorCarriesLine(t *testing.T) {
	_, err := circuit.ParseString("@pragma total_num_qubits 1\n\nfoo q0\n")
	require.ErrorIs(t, err, circuit.ErrUnknownGate)
	assert.Contains(t, err.Error(), "line 3")
}

func TestFormat_RoundTrip(t *testing.T) {
	p, err := circuit.ParseString(bell)
	require.NoError(t, err)

	again, err := circuit.ParseString(circuit.Format(p))
	require.NoError(t, err)

	assert.Equal(t, p.NumQubits, again.NumQubits)
	assert.Equal(t, p.NumCbits, again.NumCbits)
	require.Len(t, again.Instructions, len(p.Instructions))
	for i := range p.Instructions {
		assert.Equal(t, p.Instructions[i].String(), again.Instructions[i].String())
	}
}

func TestProgram_AddPanicsOnArity(t *testing.T) {
	p := circuit.NewProgram(2, 0)
	assert.Panics(t, func() { p.Add(quantum.GateCZ, 0) })
	assert.Panics(t, func() { p.Add(quantum.GateMZR, 0) })
	assert.Panics(t, func() { p.Measure(quantum.GateH, 0, 0) })
}

func TestProgram_ValidateBuiltInCode(t *testing.T) {
	p := circuit.NewProgram(2, 1).Add(quantum.GateH, 0).Measure(quantum.GateMZR, 1, 3)
	err := p.Validate()
	require.ErrorIs(t, err, circuit.ErrRegister)
	assert.Contains(t, err.Error(), "line 2")
}
