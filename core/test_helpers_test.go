// SPDX-License-Identifier: MIT
// Package core_test contains test helpers
//
// Purpose:
//   - Build small deterministic graphs from edge lists.
//   - Check the adjacency symmetry invariant after every mutation.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliffordsim/core"
)

// buildGraph creates n vertices valued by their index and adds the given edges.
func buildGraph(t *testing.T, n int, edges ...[2]int) *core.Graph[int] {
	t.Helper()
	g := core.NewGraph[int](core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// requireSymmetric asserts u ∈ N(v) ⇔ v ∈ N(u) and no loops.
func requireSymmetric[T any](t *testing.T, g *core.Graph[T]) {
	t.Helper()
	var u int
	for u = 0; u < g.VertexCount(); u++ {
		require.False(t, g.HasEdge(u, u), "loop at %d", u)
		for _, v := range g.Neighbors(u) {
			require.True(t, g.HasEdge(v, u), "asymmetric edge %d-%d", u, v)
		}
	}
}
