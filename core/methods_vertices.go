// File: methods_vertices.go
// Role: Vertex lifecycle and per-vertex values.
// Determinism:
//   - New vertices receive the next free index; RemoveVertex shifts every
//     higher index down by one (contiguous renumbering).

package core

// AddVertex appends a vertex carrying val and returns its index.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(val T) int {
	g.vals = append(g.vals, val)
	g.edges = append(g.edges, newNeighborSet())

	return len(g.vals) - 1
}

// RemoveVertex deletes v with all incident edges and renumbers every vertex
// above v to index-1, fixing up all neighbor sets.
//
// Stage 1 (Validate): v must exist.
// Stage 2 (Detach): drop v's value and neighbor set.
// Stage 3 (Renumber): rewrite every remaining neighbor set.
// Complexity: O(V + E).
func (g *Graph[T]) RemoveVertex(v int) {
	g.mustVertex("RemoveVertex", v)

	g.vals = append(g.vals[:v], g.vals[v+1:]...)
	g.edges = append(g.edges[:v], g.edges[v+1:]...)

	var i int
	for i = range g.edges {
		g.edges[i].renumber(v)
	}
}

// VertexCount returns |V|.
func (g *Graph[T]) VertexCount() int {
	return len(g.vals)
}

// Value returns the value attached to v.
func (g *Graph[T]) Value(v int) T {
	g.mustVertex("Value", v)
	return g.vals[v]
}

// SetValue replaces the value attached to v.
func (g *Graph[T]) SetValue(v int, val T) {
	g.mustVertex("SetValue", v)
	g.vals[v] = val
}

// Values returns a copy of all vertex values in index order.
func (g *Graph[T]) Values() []T {
	out := make([]T, len(g.vals))
	copy(out, g.vals)

	return out
}
