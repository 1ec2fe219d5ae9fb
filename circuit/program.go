// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cliffordsim/quantum"
)

// Kind distinguishes gate statements from interpreter directives.
type Kind uint8

const (
	// KindGate applies Gate to Qubits (and stores a measurement in Reg).
	KindGate Kind = iota
	// KindPrint dumps the state through the run logger.
	KindPrint
)

// Instruction is one executable statement.
type Instruction struct {
	Kind   Kind
	Gate   quantum.Gate
	Qubits []int
	Reg    int // classical register for measurements, -1 otherwise
	Line   int // 1-based source line, 0 when built in code
}

// String renders the statement in source form.
func (in Instruction) String() string {
	if in.Kind == KindPrint {
		return "@pragma print"
	}

	var sb strings.Builder
	sb.WriteString(in.Gate.String())
	for _, q := range in.Qubits {
		fmt.Fprintf(&sb, " q%d", q)
	}
	if in.Gate.IsMeasurement() {
		fmt.Fprintf(&sb, " c%d", in.Reg)
	}

	return sb.String()
}

// Program is a parsed circuit: the declared register sizes and the
// statements in execution order.
type Program struct {
	NumQubits    int
	NumCbits     int
	Instructions []Instruction
}

// NewProgram returns an empty program over the given registers.
func NewProgram(numQubits, numCbits int) *Program {
	return &Program{NumQubits: numQubits, NumCbits: numCbits}
}

// Add appends a unitary gate. It panics with quantum.ErrArity when the
// operand count is wrong or g is a measurement.
func (p *Program) Add(g quantum.Gate, qubits ...int) *Program {
	if !g.Valid() || g.IsMeasurement() || len(qubits) != g.Qubits() {
		panic(fmt.Errorf("circuit.Add(%v, %v): %w", g, qubits, quantum.ErrArity))
	}
	p.Instructions = append(p.Instructions, Instruction{
		Kind:   KindGate,
		Gate:   g,
		Qubits: append([]int(nil), qubits...),
		Reg:    -1,
	})

	return p
}

// Measure appends a measurement of q into classical register reg.
func (p *Program) Measure(g quantum.Gate, q, reg int) *Program {
	if !g.IsMeasurement() {
		panic(fmt.Errorf("circuit.Measure(%v): %w", g, quantum.ErrArity))
	}
	p.Instructions = append(p.Instructions, Instruction{
		Kind:   KindGate,
		Gate:   g,
		Qubits: []int{q},
		Reg:    reg,
	})

	return p
}

// Print appends a state dump.
func (p *Program) Print() *Program {
	p.Instructions = append(p.Instructions, Instruction{Kind: KindPrint, Reg: -1})
	return p
}

// Validate checks every operand against the declared registers.
func (p *Program) Validate() error {
	for i, in := range p.Instructions {
		if in.Kind != KindGate {
			continue
		}
		line := in.Line
		if line == 0 {
			line = i + 1
		}
		for _, q := range in.Qubits {
			if q < 0 || q >= p.NumQubits {
				return fmt.Errorf("line %d: qubit %d of %d: %w", line, q, p.NumQubits, ErrRegister)
			}
		}
		if len(in.Qubits) == 2 && in.Qubits[0] == in.Qubits[1] {
			return fmt.Errorf("line %d: %s on a single qubit: %w", line, in.Gate, ErrSyntax)
		}
		if in.Gate.IsMeasurement() && (in.Reg < 0 || in.Reg >= p.NumCbits) {
			return fmt.Errorf("line %d: register %d of %d: %w", line, in.Reg, p.NumCbits, ErrRegister)
		}
	}

	return nil
}

// Format renders p in source form. Parse(Format(p)) yields an equal
// program up to line numbers.
func Format(p *Program) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "@pragma total_num_qubits %d\n", p.NumQubits)
	fmt.Fprintf(&sb, "@pragma total_num_cbits %d\n", p.NumCbits)
	for _, in := range p.Instructions {
		sb.WriteString(in.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
