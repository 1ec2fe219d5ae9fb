// File: methods_edges.go
// Role: Edge lifecycle on the simple undirected graph.
// Invariant:
//   - Every mutation updates both endpoints, so adjacency stays symmetric.

package core

import "fmt"

// AddEdge inserts the undirected edge {u,v}; adding an existing edge is a no-op.
// Returns ErrLoopNotAllowed when u == v.
// Complexity: O(1).
func (g *Graph[T]) AddEdge(u, v int) error {
	g.mustVertex("AddEdge", u)
	g.mustVertex("AddEdge", v)
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	g.edges[u].add(v)
	g.edges[v].add(u)

	return nil
}

// RemoveEdge deletes {u,v} if present.
// Complexity: O(1).
func (g *Graph[T]) RemoveEdge(u, v int) {
	g.mustVertex("RemoveEdge", u)
	g.mustVertex("RemoveEdge", v)
	g.edges[u].remove(v)
	g.edges[v].remove(u)
}

// ToggleEdge flips the presence of {u,v}. Toggling a loop (u == v) does nothing.
// Complexity: O(1).
func (g *Graph[T]) ToggleEdge(u, v int) {
	g.mustVertex("ToggleEdge", u)
	g.mustVertex("ToggleEdge", v)
	if u == v {
		return
	}
	if g.edges[u].has(v) {
		g.edges[u].remove(v)
		g.edges[v].remove(u)
		return
	}
	g.edges[u].add(v)
	g.edges[v].add(u)
}

// HasEdge reports whether {u,v} is present.
func (g *Graph[T]) HasEdge(u, v int) bool {
	g.mustVertex("HasEdge", u)
	g.mustVertex("HasEdge", v)

	return g.edges[u].has(v)
}

// EdgeCount returns |E|.
// Complexity: O(V).
func (g *Graph[T]) EdgeCount() int {
	var sum int
	for i := range g.edges {
		sum += g.edges[i].len()
	}

	return sum / 2
}

// Edges returns every edge once as a pair {u,v} with u < v, ordered by u then v.
// Complexity: O(V + E log E).
func (g *Graph[T]) Edges() [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for u := range g.edges {
		for _, v := range g.Neighbors(u) {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}
