// Package circuit implements the line-based mini-assembly used to describe
// Clifford circuits, and the interpreter that executes it against any
// quantum.State.
//
// Syntax, one statement per line:
//
//	@pragma total_num_qubits 4   # alias: total_num_qbits
//	@pragma total_num_cbits 2    # alias: total_num_bits
//	h q0
//	cx q0 q1                     # alias: cnot
//	mzr q1 c0                    # measurement writes classical register 0
//	@pragma print                # dumps the state through the run logger
//
// Mnemonics are case-insensitive. Blank lines and lines starting with "#"
// or "//" are skipped; a trailing "#" comment ends a statement. Classical
// registers are written "c<k>" or "r<k>".
//
// Errors:
//
//	ErrSyntax      - malformed statement or pragma.
//	ErrUnknownGate - mnemonic not in the gate table.
//	ErrArity       - wrong number of operands for the gate.
//	ErrRegister    - qubit or classical register outside the declared range.
//
// Every parse error carries the 1-based line number.
package circuit
