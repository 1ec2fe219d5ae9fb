// Package graphstate represents a stabilizer state as a graph state
// decorated with local Cliffords: |ψ⟩ = ∏ V_v · ∏_{(a,b)∈E} CZ_ab |+⟩^n,
// where each vertex operator V_v is one of the 24 single-qubit Cliffords
// modulo phase.
//
// Single-qubit gates only update the vertex operator through a 24×24
// product table. CZ first clears the vertex operators of both endpoints
// with local complementations (unless an endpoint has no other
// neighbors), then reads the new pair of operators and the edge bit from
// a 24×24×2 lookup table. A Z measurement is rewritten, through the
// conjugation table, into an X, Y or Z measurement of the bare graph
// state and performed by graph surgery.
//
// Rényi-2 entropy of a subsystem A is the GF(2) rank of the A×Ā block of
// the adjacency matrix. It is computed by peeling the bipartite cut graph
// with pivots rather than by Gaussian elimination.
//
// Vertex operators are internal; DebugCircuit and ToVector expose them as
// an explicit H/S circuit.
package graphstate
