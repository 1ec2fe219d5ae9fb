// SPDX-License-Identifier: MIT

package quantum

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every value is carried by a panic: these are contract
// violations, not runtime conditions.
var (
	// ErrQubitOutOfRange indicates a qubit index outside [0, SystemSize()).
	ErrQubitOutOfRange = errors.New("quantum: qubit out of range")

	// ErrSameQubit indicates a two-qubit gate addressed one qubit twice.
	ErrSameQubit = errors.New("quantum: two-qubit gate on a single qubit")

	// ErrArity indicates a gate received the wrong number of operands.
	ErrArity = errors.New("quantum: wrong number of operands")

	// ErrUnsupported indicates a representation cannot perform the request.
	ErrUnsupported = errors.New("quantum: unsupported operation")
)

// CheckQubit panics unless 0 <= q < n.
func CheckQubit(n, q int) {
	if q < 0 || q >= n {
		panic(fmt.Errorf("qubit %d of %d: %w", q, n, ErrQubitOutOfRange))
	}
}

// CheckPair panics unless both qubits are in range and distinct.
func CheckPair(n, q1, q2 int) {
	CheckQubit(n, q1)
	CheckQubit(n, q2)
	if q1 == q2 {
		panic(fmt.Errorf("qubits (%d,%d): %w", q1, q2, ErrSameQubit))
	}
}

// CheckQubits panics unless every index is in range and appears once.
func CheckQubits(n int, qubits []int) {
	seen := make(map[int]struct{}, len(qubits))
	for _, q := range qubits {
		CheckQubit(n, q)
		if _, dup := seen[q]; dup {
			panic(fmt.Errorf("qubit %d repeated: %w", q, ErrSameQubit))
		}
		seen[q] = struct{}{}
	}
}

// Unsupported panics with ErrUnsupported annotated by op.
func Unsupported(op string, detail string) {
	panic(fmt.Errorf("%s: %s: %w", op, detail, ErrUnsupported))
}
