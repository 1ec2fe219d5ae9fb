// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"
	"strings"
)

// Gate enumerates every instruction a circuit may contain.
type Gate uint8

// Gate values. The zero value is invalid.
const (
	GateInvalid Gate = iota
	GateH
	GateS
	GateX
	GateY
	GateZ
	GateSd
	GateSqrtX
	GateSqrtXd
	GateSqrtY
	GateSqrtYd
	GateSqrtZ
	GateSqrtZd
	GateCX
	GateCY
	GateCZ
	GateMXR
	GateMYR
	GateMZR
	gateCount
)

var gateNames = [gateCount]string{
	GateInvalid: "invalid",
	GateH:       "h",
	GateS:       "s",
	GateX:       "x",
	GateY:       "y",
	GateZ:       "z",
	GateSd:      "sd",
	GateSqrtX:   "sqrtx",
	GateSqrtXd:  "sqrtxd",
	GateSqrtY:   "sqrty",
	GateSqrtYd:  "sqrtyd",
	GateSqrtZ:   "sqrtz",
	GateSqrtZd:  "sqrtzd",
	GateCX:      "cx",
	GateCY:      "cy",
	GateCZ:      "cz",
	GateMXR:     "mxr",
	GateMYR:     "myr",
	GateMZR:     "mzr",
}

// gateAliases maps alternative spellings onto canonical gates.
var gateAliases = map[string]Gate{
	"cnot": GateCX,
}

// String returns the canonical lower-case mnemonic.
func (g Gate) String() string {
	if g >= gateCount {
		return fmt.Sprintf("gate(%d)", uint8(g))
	}

	return gateNames[g]
}

// Valid reports whether g names a real gate.
func (g Gate) Valid() bool { return g > GateInvalid && g < gateCount }

// Qubits returns how many qubit operands g takes.
func (g Gate) Qubits() int {
	switch g {
	case GateCX, GateCY, GateCZ:
		return 2
	case GateInvalid:
		return 0
	default:
		return 1
	}
}

// IsMeasurement reports whether g yields a classical outcome.
func (g Gate) IsMeasurement() bool {
	return g == GateMXR || g == GateMYR || g == GateMZR
}

// ParseGate resolves a case-insensitive mnemonic (including aliases).
func ParseGate(name string) (Gate, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if g, ok := gateAliases[name]; ok {
		return g, true
	}
	for g := GateH; g < gateCount; g++ {
		if gateNames[g] == name {
			return g, true
		}
	}

	return GateInvalid, false
}

// Gates lists every valid gate in enumeration order.
func Gates() []Gate {
	out := make([]Gate, 0, gateCount-1)
	for g := GateH; g < gateCount; g++ {
		out = append(out, g)
	}

	return out
}

// Apply runs g on st. For measurements the outcome is returned; for
// unitary gates the result is 0. Wrong operand counts panic with ErrArity.
func Apply(st State, g Gate, qubits ...int) int {
	if !g.Valid() {
		panic(fmt.Errorf("Apply(%v): %w", g, ErrUnsupported))
	}
	if len(qubits) != g.Qubits() {
		panic(fmt.Errorf("Apply(%v): got %d qubits, want %d: %w", g, len(qubits), g.Qubits(), ErrArity))
	}

	q := qubits[0]
	switch g {
	case GateH:
		st.H(q)
	case GateS, GateSqrtZ:
		st.S(q)
	case GateX:
		X(st, q)
	case GateY:
		Y(st, q)
	case GateZ:
		Z(st, q)
	case GateSd, GateSqrtZd:
		Sd(st, q)
	case GateSqrtX:
		SqrtX(st, q)
	case GateSqrtXd:
		SqrtXd(st, q)
	case GateSqrtY:
		SqrtY(st, q)
	case GateSqrtYd:
		SqrtYd(st, q)
	case GateCX:
		CX(st, q, qubits[1])
	case GateCY:
		CY(st, q, qubits[1])
	case GateCZ:
		st.CZ(q, qubits[1])
	case GateMXR:
		return MXR(st, q)
	case GateMYR:
		return MYR(st, q)
	case GateMZR:
		return st.MZR(q)
	}

	return 0
}
