// File: methods_adjacent.go
// Role: Neighborhood queries and local complementation.

package core

import (
	"fmt"
	"sort"
)

// Degree returns |N(v)|.
func (g *Graph[T]) Degree(v int) int {
	g.mustVertex("Degree", v)
	return g.edges[v].len()
}

// Neighbors returns N(v) sorted ascending. The slice is a copy.
// Complexity: O(d log d).
func (g *Graph[T]) Neighbors(v int) []int {
	g.mustVertex("Neighbors", v)
	out := make([]int, len(g.edges[v].items))
	copy(out, g.edges[v].items)
	sort.Ints(out)

	return out
}

// NeighborAt returns the i-th member of N(v) in internal set order.
// It is the allocation-free way to pick "some neighbor" of v.
func (g *Graph[T]) NeighborAt(v, i int) int {
	g.mustVertex("NeighborAt", v)
	return g.edges[v].items[i]
}

// Adjacency returns a copy of every neighbor list in internal set order.
// Feeding it back to SetAdjacency reproduces NeighborAt exactly.
func (g *Graph[T]) Adjacency() [][]int {
	out := make([][]int, len(g.edges))
	for v := range g.edges {
		out[v] = append([]int{}, g.edges[v].items...)
	}

	return out
}

// SetAdjacency replaces every neighbor set with adj[v], keeping its order.
// adj must hold one list per vertex and describe a simple undirected graph;
// otherwise g is left unchanged and the error wraps ErrAdjacency.
// Complexity: O(V + E).
func (g *Graph[T]) SetAdjacency(adj [][]int) error {
	if len(adj) != len(g.vals) {
		return fmt.Errorf("SetAdjacency: %d lists for %d vertices: %w", len(adj), len(g.vals), ErrAdjacency)
	}

	sets := make([]neighborSet, len(adj))
	for v, list := range adj {
		sets[v] = newNeighborSet()
		for _, u := range list {
			if u < 0 || u >= len(adj) || u == v || sets[v].has(u) {
				return fmt.Errorf("SetAdjacency: neighbor %d of %d: %w", u, v, ErrAdjacency)
			}
			sets[v].add(u)
		}
	}
	for v := range sets {
		for _, u := range sets[v].items {
			if !sets[u].has(v) {
				return fmt.Errorf("SetAdjacency: edge {%d,%d} is one-sided: %w", v, u, ErrAdjacency)
			}
		}
	}
	g.edges = sets

	return nil
}

// NeighborSet returns N(v) as a membership map (a copy).
func (g *Graph[T]) NeighborSet(v int) map[int]struct{} {
	g.mustVertex("NeighborSet", v)
	out := make(map[int]struct{}, g.edges[v].len())
	for _, n := range g.edges[v].items {
		out[n] = struct{}{}
	}

	return out
}

// LocalComplement toggles every edge between two distinct neighbors of v.
// The neighborhood of v itself is unchanged.
//
// Stage 1 (Snapshot): copy N(v), since toggles never touch v's own set but
// the snapshot keeps iteration independent of set internals.
// Stage 2 (Toggle): for every unordered pair {a,b} ⊆ N(v), flip {a,b}.
// Complexity: O(d²).
func (g *Graph[T]) LocalComplement(v int) {
	g.mustVertex("LocalComplement", v)
	nbrs := append([]int(nil), g.edges[v].items...)

	var i, j int
	for i = 0; i < len(nbrs); i++ {
		for j = i + 1; j < len(nbrs); j++ {
			g.ToggleEdge(nbrs[i], nbrs[j])
		}
	}
}
