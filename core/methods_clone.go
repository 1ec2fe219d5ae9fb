// File: methods_clone.go
// Role: Deep copies.

package core

// Clone returns a deep copy: values are copied by assignment, neighbor sets
// are duplicated, so mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	out := &Graph[T]{
		vals:  make([]T, len(g.vals)),
		edges: make([]neighborSet, len(g.edges)),
	}
	copy(out.vals, g.vals)
	for i := range g.edges {
		out.edges[i] = g.edges[i].clone()
	}

	return out
}
