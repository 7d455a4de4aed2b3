// SPDX-License-Identifier: MIT

package topology

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/qpauli/qubit"
)

// MinimumSpanningTree returns a minimum spanning tree of g's undirected view.
//
// Steps:
//  1. Snapshot vertices and edges; |V| == 0 ⇒ ErrEmptyGraph.
//  2. Stable-sort edges by weight (ties keep canonical (From, To) order).
//  3. Union-find with path compression and union by rank; keep edges joining
//     two components.
//  4. Fewer than |V|-1 edges ⇒ ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E).
func (g *Graph) MinimumSpanningTree() (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1) Snapshot
	u := g.Undirected()
	vertices := u.Vertices()
	if len(vertices) == 0 {
		return nil, ErrEmptyGraph
	}
	edges := u.Edges()

	// 2) Order by weight
	slices.SortStableFunc(edges, func(a, b Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	// 3) Union-find
	parent := make(map[qubit.Qubit]qubit.Qubit, len(vertices))
	rank := make(map[qubit.Qubit]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	find := func(x qubit.Qubit) qubit.Qubit {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}

	mst := NewGraph()
	for _, v := range vertices {
		mst.addVertexLocked(v)
	}
	kept := 0
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		mst.linkLocked(e.From, e.To, e.Weight)
		kept++
		if kept == len(vertices)-1 {
			break
		}
	}

	// 4) Spanning check
	if kept < len(vertices)-1 {
		return nil, ErrDisconnected
	}

	return mst, nil
}
