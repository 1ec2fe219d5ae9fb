// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliffordsim/core"
)

func TestGraph_AddVertexIndices(t *testing.T) {
	g := core.NewGraph[string]()
	assert.Equal(t, 0, g.AddVertex("a"))
	assert.Equal(t, 1, g.AddVertex("b"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, "b", g.Value(1))

	g.SetValue(1, "z")
	assert.Equal(t, []string{"a", "z"}, g.Values())
}

func TestGraph_AddEdgeRejectsLoop(t *testing.T) {
	g := buildGraph(t, 2)
	err := g.AddEdge(1, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.Equal(t, 0, g.Degree(1))
}

func TestGraph_OutOfRangePanics(t *testing.T) {
	g := buildGraph(t, 2)
	assert.Panics(t, func() { g.Degree(2) })
	assert.Panics(t, func() { g.ToggleEdge(-1, 0) })
	assert.Panics(t, func() { g.RemoveVertex(5) })
}

func TestGraph_ToggleEdge(t *testing.T) {
	g := buildGraph(t, 3)

	g.ToggleEdge(0, 2)
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0)) // symmetric

	g.ToggleEdge(2, 0)
	assert.False(t, g.HasEdge(0, 2))

	g.ToggleEdge(1, 1) // loops are ignored
	assert.Equal(t, 0, g.Degree(1))
	requireSymmetric(t, g)
}

func TestGraph_AddEdgeIdempotent(t *testing.T) {
	g := buildGraph(t, 2, [2]int{0, 1})
	require.NoError(t, g.AddEdge(1, 0))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_RemoveVertexRenumbers(t *testing.T) {
	// 0-1, 1-2, 2-3, 3-0, 1-3
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}, [2]int{1, 3})

	g.RemoveVertex(1)

	require.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []int{0, 2, 3}, g.Values()) // values shift with vertices
	// old 2 -> 1, old 3 -> 2
	assert.Equal(t, [][2]int{{0, 2}, {1, 2}}, g.Edges())
	requireSymmetric(t, g)
}

func TestGraph_RemoveLastVertex(t *testing.T) {
	g := buildGraph(t, 3, [2]int{0, 2}, [2]int{1, 2})
	g.RemoveVertex(2)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_LocalComplement(t *testing.T) {
	// star centered at 0 with leaves 1,2,3 plus existing edge 1-2
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2})

	g.LocalComplement(0)

	assert.False(t, g.HasEdge(1, 2)) // toggled off
	assert.True(t, g.HasEdge(1, 3))
	assert.True(t, g.HasEdge(2, 3))
	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0)) // N(0) untouched
	requireSymmetric(t, g)

	g.LocalComplement(0) // involution
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}}, g.Edges())
}

func TestGraph_NeighborAt(t *testing.T) {
	g := buildGraph(t, 3, [2]int{0, 2}, [2]int{0, 1})
	got := []int{g.NeighborAt(0, 0), g.NeighborAt(0, 1)}
	assert.ElementsMatch(t, []int{1, 2}, got)
	assert.Len(t, g.NeighborSet(0), 2)
}

func TestGraph_SetAdjacencyKeepsOrder(t *testing.T) {
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	g.RemoveEdge(0, 1) // swaps 3 into the freed slot
	adj := g.Adjacency()
	require.Equal(t, []int{3, 2}, adj[0])

	back := buildGraph(t, 4, [2]int{0, 2}, [2]int{0, 3})
	require.Equal(t, []int{2, 3}, back.Adjacency()[0])
	require.NoError(t, back.SetAdjacency(adj))
	assert.Equal(t, adj, back.Adjacency())
	assert.Equal(t, g.NeighborAt(0, 0), back.NeighborAt(0, 0))
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestGraph_SetAdjacencyRejects(t *testing.T) {
	bad := [][][]int{
		{{1}},             // wrong vertex count
		{{1}, {}, {}},     // one-sided
		{{0}, {}, {}},     // loop
		{{1, 1}, {0}, {}}, // repeated
		{{3}, {}, {}},     // out of range
	}
	for _, adj := range bad {
		g := buildGraph(t, 3, [2]int{1, 2})
		assert.ErrorIs(t, g.SetAdjacency(adj), core.ErrAdjacency, "%v", adj)
		assert.Equal(t, [][2]int{{1, 2}}, g.Edges())
	}
}

func TestGraph_CloneIsDeep(t *testing.T) {
	g := buildGraph(t, 3, [2]int{0, 1})
	c := g.Clone()

	c.ToggleEdge(1, 2)
	c.SetValue(0, 42)

	assert.False(t, g.HasEdge(1, 2))
	assert.Equal(t, 0, g.Value(0))
	assert.True(t, c.HasEdge(0, 1))
	assert.Equal(t, 2, c.EdgeCount())
}

func TestGraph_Partition(t *testing.T) {
	// path 0-1-2-3, A = {0,1}: cut edge 1-2 only
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	cut := g.Partition([]int{0, 1})

	require.Equal(t, 2, cut.VertexCount()) // vertex 0 pruned (only inner edge)
	assert.Equal(t, []bool{true, false}, cut.Values())
	assert.Equal(t, [][2]int{{0, 1}}, cut.Edges())
	assert.Equal(t, 3, g.EdgeCount()) // source untouched
}

func TestGraph_PartitionSharedNeighbor(t *testing.T) {
	// 0 and 1 in A both touch outside vertex 2; 3 isolated in A
	g := buildGraph(t, 4, [2]int{0, 2}, [2]int{1, 2})

	cut := g.Partition([]int{0, 1, 3})

	assert.Equal(t, []bool{true, false, true}, cut.Values())
	assert.Equal(t, 2, cut.EdgeCount())
	requireSymmetric(t, cut)
}

func TestGraph_String(t *testing.T) {
	g := buildGraph(t, 2, [2]int{0, 1})
	assert.Equal(t, "[0] 0 -> 1\n[1] 1 -> 0", g.String())
}
