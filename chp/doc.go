// Package chp implements the stabilizer-tableau representation of an
// n-qubit Clifford state (the CHP algorithm).
//
// A Tableau holds 2n+1 Pauli rows: destabilizers in [0,n), stabilizers in
// [n,2n) and a scratch row at 2n used to resolve deterministic measurement
// outcomes. Gates update columns of every row in O(n); measurements are
// O(n²). Rényi-2 entropy is the GF(2) rank of the stabilizer block
// restricted to a subsystem, minus its size.
//
// RandomClifford samples a uniformly random Clifford on k qubits by driving
// two random anticommuting Pauli strings to (+X₁, +Z₁) on a scratch
// tableau and recursing on the remaining k-1 qubits, mirroring each H, S
// and CX onto any quantum.State.
package chp
