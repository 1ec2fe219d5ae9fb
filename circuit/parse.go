package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliffordsim/quantum"
)

// Parse reads a circuit. Register sizes come from the total_num_* pragmas
// and every operand is validated against them once the input is consumed.
func Parse(r io.Reader) (*Program, error) {
	p := NewProgram(0, 0)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := tokenize(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "@pragma" {
			if err := p.pragma(line, fields[1:]); err != nil {
				return nil, err
			}
			continue
		}
		in, err := parseInstruction(line, fields)
		if err != nil {
			return nil, err
		}
		p.Instructions = append(p.Instructions, in)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("circuit.Parse: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("circuit.Parse: %w", err)
	}

	return p, nil
}

// ParseString is Parse over a string.
func ParseString(src string) (*Program, error) {
	return Parse(strings.NewReader(src))
}

// tokenize splits a line and strips comments.
func tokenize(s string) []string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "//") {
		return nil
	}
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}

	return strings.Fields(s)
}

func (p *Program) pragma(line int, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("circuit.Parse: line %d: empty pragma: %w", line, ErrSyntax)
	}
	switch strings.ToLower(args[0]) {
	case "print":
		if len(args) != 1 {
			return fmt.Errorf("circuit.Parse: line %d: print takes no arguments: %w", line, ErrSyntax)
		}
		p.Instructions = append(p.Instructions, Instruction{Kind: KindPrint, Reg: -1, Line: line})
		return nil
	case "total_num_qubits", "total_num_qbits":
		n, err := pragmaInt(line, args)
		if err != nil {
			return err
		}
		p.NumQubits = n
		return nil
	case "total_num_cbits", "total_num_bits":
		n, err := pragmaInt(line, args)
		if err != nil {
			return err
		}
		p.NumCbits = n
		return nil
	}

	return fmt.Errorf("circuit.Parse: line %d: unknown pragma %q: %w", line, args[0], ErrSyntax)
}

func pragmaInt(line int, args []string) (int, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("circuit.Parse: line %d: %s needs one value: %w", line, args[0], ErrSyntax)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("circuit.Parse: line %d: bad count %q: %w", line, args[1], ErrSyntax)
	}

	return n, nil
}

func parseInstruction(line int, fields []string) (Instruction, error) {
	g, ok := quantum.ParseGate(fields[0])
	if !ok {
		return Instruction{}, fmt.Errorf("circuit.Parse: line %d: %q: %w", line, fields[0], ErrUnknownGate)
	}
	want := g.Qubits()
	if g.IsMeasurement() {
		want++
	}
	ops := fields[1:]
	if len(ops) != want {
		return Instruction{}, fmt.Errorf("circuit.Parse: line %d: %s takes %d operands, got %d: %w",
			line, g, want, len(ops), ErrArity)
	}

	in := Instruction{Kind: KindGate, Gate: g, Reg: -1, Line: line}
	for _, op := range ops[:g.Qubits()] {
		q, err := operand(line, op, "q")
		if err != nil {
			return Instruction{}, err
		}
		in.Qubits = append(in.Qubits, q)
	}
	if g.IsMeasurement() {
		reg, err := operand(line, ops[1], "cr")
		if err != nil {
			return Instruction{}, err
		}
		in.Reg = reg
	}

	return in, nil
}

// operand parses "<prefix><index>" where prefix is any byte of prefixes.
func operand(line int, tok, prefixes string) (int, error) {
	if len(tok) < 2 || !strings.ContainsRune(prefixes, rune(tok[0]|0x20)) {
		return 0, fmt.Errorf("circuit.Parse: line %d: operand %q: %w", line, tok, ErrSyntax)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("circuit.Parse: line %d: operand %q: %w", line, tok, ErrSyntax)
	}

	return n, nil
}
