package circuit

import "errors"

// Sentinel errors. Match with errors.Is.
var (
	// ErrSyntax indicates a statement that cannot be tokenized.
	ErrSyntax = errors.New("circuit: syntax error")

	// ErrUnknownGate indicates a mnemonic missing from the gate table.
	ErrUnknownGate = errors.New("circuit: unknown gate")

	// ErrArity indicates the wrong number of qubit or register operands.
	ErrArity = errors.New("circuit: wrong number of operands")

	// ErrRegister indicates a qubit or classical index outside the program.
	ErrRegister = errors.New("circuit: register out of range")
)
