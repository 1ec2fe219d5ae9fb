// Package quantum defines the capability shared by every state
// representation in cliffordsim: the primitive gate set {H, S, CZ, MZR},
// the default decompositions of every other Clifford gate onto it, the
// Gate enumeration used by circuits, and the seeded random source each
// representation owns.
//
// Representations implement State (and Simulator when they can compute
// entanglement). They may additionally implement any of the optional
// single-method interfaces (XGater, CXGater, MXRMeasurer, ...). The
// package-level helpers X, Y, CX, MXR, ... call the native method when it
// exists and fall back to the decomposition otherwise, the same way
// io.Copy prefers WriterTo.
//
// Preconditions (qubit index in range, distinct qubits for two-qubit gates,
// correct arity for Apply) are programmer errors. They panic with an error
// wrapping ErrQubitOutOfRange, ErrSameQubit, ErrArity or ErrUnsupported.
package quantum
