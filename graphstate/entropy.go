package graphstate

import (
	"slices"

	"github.com/katalvlaran/cliffordsim/core"
	"github.com/katalvlaran/cliffordsim/quantum"
)

// RenyiEntropy returns the Rényi-2 entropy of qubits, the GF(2) rank of
// the adjacency block between qubits and the rest. VOPs are local and do
// not contribute.
func (s *State) RenyiEntropy(qubits []int) float32 {
	quantum.CheckQubits(s.n, qubits)
	return float32(cutRank(s.g.Partition(qubits)))
}

// cutRank peels a bipartite cut graph (true = inside A) and returns the
// rank of its biadjacency matrix.
//
// The counter starts at 2·|V| − |A| and every removal subtracts the
// weight of the removed vertices minus their rank contribution, so it
// ends at the rank. The highest vertex d is handled by degree:
//
//	0: removed alone.
//	1: removed with its neighbor (and, from the A side, every other
//	   leaf of that neighbor, which adds nothing to the rank).
//	≥2: if some neighbor p has degree > 1, the rows of d's other
//	   neighbors are reduced by p's row (a pivot), leaving d with
//	   degree 1; otherwise d and its leaves form a star and go at once.
//
// Complexity: O(V·d²) toggles in the worst case.
func cutRank(g *core.Graph[bool]) int {
	rank := 2 * g.VertexCount()
	for _, inA := range g.Values() {
		if inA {
			rank--
		}
	}

	for g.VertexCount() > 0 {
		d := g.VertexCount() - 1
		deg := g.Degree(d)

		switch deg {
		case 0:
			if g.Value(d) {
				rank--
			} else {
				rank -= 2
			}
			g.RemoveVertex(d)

		case 1:
			nbr := g.NeighborAt(d, 0)
			if !g.Value(d) {
				g.RemoveVertex(d)
				g.RemoveVertex(nbr)
				rank -= 2
				break
			}
			doomed := []int{nbr}
			for i := 0; i < g.Degree(nbr); i++ {
				if x := g.NeighborAt(nbr, i); g.Degree(x) == 1 {
					doomed = append(doomed, x)
				}
			}
			removeDescending(g, doomed)
			rank -= len(doomed)

		default:
			pivot, minDeg := -1, 0
			for i := 0; i < deg; i++ {
				x := g.NeighborAt(d, i)
				if xd := g.Degree(x); xd != 1 && (pivot < 0 || xd < minDeg) {
					pivot, minDeg = x, xd
				}
			}

			if pivot < 0 {
				inA := g.Value(d)
				star := g.Neighbors(d)
				g.RemoveVertex(d)
				removeDescending(g, star)
				if inA {
					rank -= 2 * deg
				} else {
					rank -= 1 + deg
				}
				break
			}

			var toggles [][2]int
			for i := 0; i < deg; i++ {
				x := g.NeighborAt(d, i)
				if x == pivot {
					continue
				}
				for j := 0; j < g.Degree(pivot); j++ {
					toggles = append(toggles, [2]int{x, g.NeighborAt(pivot, j)})
				}
			}
			for _, t := range toggles {
				g.ToggleEdge(t[0], t[1])
			}
		}
	}

	return rank
}

// removeDescending removes vertices highest first so earlier removals do
// not renumber later ones.
func removeDescending(g *core.Graph[bool], vs []int) {
	slices.Sort(vs)
	for i := len(vs) - 1; i >= 0; i-- {
		g.RemoveVertex(vs[i])
	}
}
