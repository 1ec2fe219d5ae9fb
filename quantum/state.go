package quantum

// State is the minimal gate set every representation provides.
// All methods mutate the receiver in place and panic on invalid qubits.
type State interface {
	// SystemSize returns the number of qubits n.
	SystemSize() int
	// H applies a Hadamard to q.
	H(q int)
	// S applies the phase gate diag(1, i) to q.
	S(q int)
	// CZ applies a controlled-Z between q1 and q2.
	CZ(q1, q2 int)
	// MZR measures q in the computational basis, collapses the state and
	// returns the outcome (0 or 1).
	MZR(q int) int
}

// Simulator is a State that can report bipartite Rényi-2 entropy.
type Simulator interface {
	State
	// RenyiEntropy returns S₂ of the subsystem named by qubits.
	RenyiEntropy(qubits []int) float32
}

// Finisher is implemented by states needing a post-processing step once a
// circuit has run (the vector state canonicalizes its global phase).
type Finisher interface {
	FinishExecution()
}

// CliffordSampler is implemented by states with a native random-Clifford
// sampler drawing from their own random source.
type CliffordSampler interface {
	RandomClifford(qubits []int)
}

// Optional native gates. A representation implementing one of these is
// used directly by the package-level helper of the same name.
type (
	XGater      interface{ X(q int) }
	YGater      interface{ Y(q int) }
	ZGater      interface{ Z(q int) }
	SdGater     interface{ Sd(q int) }
	SqrtXGater  interface{ SqrtX(q int) }
	SqrtXdGater interface{ SqrtXd(q int) }
	SqrtYGater  interface{ SqrtY(q int) }
	SqrtYdGater interface{ SqrtYd(q int) }
	CXGater     interface{ CX(q1, q2 int) }
	CYGater     interface{ CY(q1, q2 int) }
	MXRMeasurer interface{ MXR(q int) int }
	MYRMeasurer interface{ MYR(q int) int }
)
