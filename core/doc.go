// Package core provides the small, index-based Graph used by the graph-state
// simulator and by the entropy peeling routine.
//
// The Graph G = (V,E) is deliberately minimal:
//
//   - Vertices are the dense integer range [0, VertexCount()).
//   - Every vertex carries one value of the type parameter T
//     (a local-Clifford index for graph states, a partition mark for cut graphs).
//   - Edges are undirected, unweighted and simple: self-loops and parallel
//     edges are never stored.
//   - Adjacency is kept as per-vertex ordered neighbor sets with O(1)
//     membership, insertion and removal.
//
// Why an index-based graph?
//
//   - Qubits are already dense integers; string IDs would only add hashing.
//   - The hot paths (ToggleEdge, LocalComplement) run inside every CZ gate and
//     every measurement, so they must not allocate per call.
//   - RemoveVertex renumbers the remaining vertices contiguously, which is what
//     the peeling algorithm on disposable cut graphs relies on.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(val T) int             // O(1) amortized
//	RemoveVertex(v int)              // O(V + E): renumbers vertices above v
//	VertexCount() int                // O(1)
//	Value(v int) T / SetValue(v, val)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error          // O(1), ErrLoopNotAllowed on u == v
//	RemoveEdge(u, v int)             // O(1)
//	ToggleEdge(u, v int)             // O(1), loops ignored
//	HasEdge(u, v int) bool           // O(1)
//
//	// Query
//	Degree(v int) int
//	Neighbors(v int) []int           // copy, insertion order
//	NeighborAt(v, i int) int
//	Adjacency() [][]int              // internal order, for snapshots
//	SetAdjacency(adj [][]int) error  // restores Adjacency output
//
//	// Structure
//	LocalComplement(v int)           // toggle all edges among N(v)
//	Partition(set []int) *Graph[bool]
//	Clone() *Graph[T]
//
// Errors:
//
//	ErrVertexNotFound  – vertex index outside [0, VertexCount())
//	ErrLoopNotAllowed  – AddEdge(v, v)
//	ErrAdjacency       – SetAdjacency with asymmetric or repeated lists
//
// Index arguments are trusted on the hot paths: an out-of-range vertex is a
// programmer error and panics with an error wrapping ErrVertexNotFound.
// The Graph is not safe for concurrent mutation; callers own it exclusively.
package core
