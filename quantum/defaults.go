// SPDX-License-Identifier: MIT

package quantum

// Default decompositions onto {H, S, CZ, MZR}. Operations are listed in the
// order they are applied to the state.

// X applies Pauli X: H, Z, H.
func X(st State, q int) {
	if g, ok := st.(XGater); ok {
		g.X(q)
		return
	}
	st.H(q)
	Z(st, q)
	st.H(q)
}

// Y applies Pauli Y up to global phase: X then Z.
func Y(st State, q int) {
	if g, ok := st.(YGater); ok {
		g.Y(q)
		return
	}
	X(st, q)
	Z(st, q)
}

// Z applies Pauli Z: S, S.
func Z(st State, q int) {
	if g, ok := st.(ZGater); ok {
		g.Z(q)
		return
	}
	st.S(q)
	st.S(q)
}

// Sd applies S†: S, S, S.
func Sd(st State, q int) {
	if g, ok := st.(SdGater); ok {
		g.Sd(q)
		return
	}
	st.S(q)
	st.S(q)
	st.S(q)
}

// SqrtX applies √X: S†, H, S†.
func SqrtX(st State, q int) {
	if g, ok := st.(SqrtXGater); ok {
		g.SqrtX(q)
		return
	}
	Sd(st, q)
	st.H(q)
	Sd(st, q)
}

// SqrtXd applies √X†: S, H, S.
func SqrtXd(st State, q int) {
	if g, ok := st.(SqrtXdGater); ok {
		g.SqrtXd(q)
		return
	}
	st.S(q)
	st.H(q)
	st.S(q)
}

// SqrtY applies √Y: Z then H.
func SqrtY(st State, q int) {
	if g, ok := st.(SqrtYGater); ok {
		g.SqrtY(q)
		return
	}
	Z(st, q)
	st.H(q)
}

// SqrtYd applies √Y†: H then Z.
func SqrtYd(st State, q int) {
	if g, ok := st.(SqrtYdGater); ok {
		g.SqrtYd(q)
		return
	}
	st.H(q)
	Z(st, q)
}

// SqrtZ is S.
func SqrtZ(st State, q int) { st.S(q) }

// SqrtZd is S†.
func SqrtZd(st State, q int) { Sd(st, q) }

// CX applies a controlled-X with control q1 and target q2: H(q2), CZ, H(q2).
func CX(st State, q1, q2 int) {
	if g, ok := st.(CXGater); ok {
		g.CX(q1, q2)
		return
	}
	st.H(q2)
	st.CZ(q1, q2)
	st.H(q2)
}

// CY applies a controlled-Y with control q1 and target q2:
// S†(q2), H(q2), CZ, H(q2), S(q2), so the target sees S·X·S† = Y.
func CY(st State, q1, q2 int) {
	if g, ok := st.(CYGater); ok {
		g.CY(q1, q2)
		return
	}
	Sd(st, q2)
	st.H(q2)
	st.CZ(q1, q2)
	st.H(q2)
	st.S(q2)
}

// MXR measures q in the X basis: H, MZR, H.
func MXR(st State, q int) int {
	if m, ok := st.(MXRMeasurer); ok {
		return m.MXR(q)
	}
	st.H(q)
	out := st.MZR(q)
	st.H(q)

	return out
}

// MYR measures q in the Y basis: S†, H, MZR, H, S. Outcome 0 is the +1
// eigenstate (|0⟩ + i|1⟩)/√2.
func MYR(st State, q int) int {
	if m, ok := st.(MYRMeasurer); ok {
		return m.MYR(q)
	}
	Sd(st, q)
	st.H(q)
	out := st.MZR(q)
	st.H(q)
	st.S(q)

	return out
}

// Finish calls FinishExecution when st provides it.
func Finish(st State) {
	if f, ok := st.(Finisher); ok {
		f.FinishExecution()
	}
}
