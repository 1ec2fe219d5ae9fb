// File: view.go
// Role: Non-mutating derived graphs.
// Determinism:
//   - Partition numbers vertices in discovery order: members of 'set' in the
//     given order, each followed by its not-yet-seen outside neighbors in
//     ascending order.

package core

// Partition builds the bipartite cut graph of a vertex subset A = set.
//
// Every member of A with at least one neighbor becomes a vertex marked true;
// every neighbor outside A becomes a vertex marked false. Only edges crossing
// the cut (A–B) are kept, and vertices left isolated are pruned. The source
// graph is not mutated.
//
// Stage 1 (Map): assign new indices to A members and their outside neighbors.
// Stage 2 (Connect): add the A–B edges.
// Stage 3 (Prune): drop isolated vertices.
// Complexity: O(|A|·d + V').
func (g *Graph[T]) Partition(set []int) *Graph[bool] {
	inA := make(map[int]struct{}, len(set))
	for _, a := range set {
		g.mustVertex("Partition", a)
		inA[a] = struct{}{}
	}

	out := NewGraph[bool](WithCapacity(len(set)))
	index := make(map[int]int)
	for _, a := range set {
		if g.edges[a].len() == 0 {
			continue
		}
		if _, seen := index[a]; !seen {
			index[a] = out.AddVertex(true)
		}
		for _, b := range g.Neighbors(a) {
			if _, inside := inA[b]; inside {
				continue
			}
			if _, seen := index[b]; !seen {
				index[b] = out.AddVertex(false)
			}
			out.edges[index[a]].add(index[b])
			out.edges[index[b]].add(index[a])
		}
	}

	// Members of A whose neighbors are all inside A end up isolated.
	for v := out.VertexCount() - 1; v >= 0; v-- {
		if out.edges[v].len() == 0 {
			out.RemoveVertex(v)
		}
	}

	return out
}
