// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"

	"github.com/katalvlaran/qpauli/qubit"
)

// SteinerTree returns an undirected tree of g that spans every terminal,
// approximating the minimum-weight such tree within a factor 2(1 - 1/T).
//
// Steps (Kou, Markowsky & Berman):
//  1. Validate terminals (ErrTerminalNotFound); one terminal ⇒ single vertex.
//  2. Metric closure: Dijkstra from every terminal; unreachable pair ⇒ ErrDisconnected.
//  3. MST of the closure over the terminals.
//  4. Expand every closure edge into its shortest path in g.
//  5. MST of the expanded subgraph.
//  6. Repeatedly prune non-terminal leaves.
//
// g is not modified; directed graphs are treated as undirected.
func (g *Graph) SteinerTree(terminals []qubit.Qubit) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// 1) Terminals
	if len(terminals) == 0 {
		return nil, fmt.Errorf("%w: no terminals", ErrTooFewVertices)
	}
	terms := qubit.Dedup(terminals)
	isTerminal := make(map[qubit.Qubit]bool, len(terms))
	for _, t := range terms {
		if !g.HasVertex(t) {
			return nil, fmt.Errorf("%w: %v", ErrTerminalNotFound, t)
		}
		isTerminal[t] = true
	}
	if len(terms) == 1 {
		out := NewGraph()
		out.addVertexLocked(terms[0])

		return out, nil
	}

	// 2) Metric closure
	u := g.Undirected()
	prevs := make(map[qubit.Qubit]map[qubit.Qubit]qubit.Qubit, len(terms))
	closure := NewGraph()
	for i, a := range terms {
		dist, prev, err := u.ShortestPaths(a)
		if err != nil {
			return nil, err
		}
		prevs[a] = prev
		for _, b := range terms[i+1:] {
			d, ok := dist[b]
			if !ok {
				return nil, fmt.Errorf("%w: terminals %v and %v", ErrDisconnected, a, b)
			}
			if err = closure.AddEdge(a, b, d); err != nil {
				return nil, err
			}
		}
	}

	// 3) MST over terminals
	closureTree, err := closure.MinimumSpanningTree()
	if err != nil {
		return nil, err
	}

	// 4) Expand closure edges into real paths
	expanded := NewGraph()
	for _, e := range closureTree.Edges() {
		path := walkBack(prevs[e.From], e.From, e.To)
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			if expanded.HasEdge(a, b) {
				continue
			}
			w, _ := u.Weight(a, b)
			if err = expanded.AddEdge(a, b, w); err != nil {
				return nil, err
			}
		}
	}

	// 5) Break any cycles introduced by overlapping paths
	tree, err := expanded.MinimumSpanningTree()
	if err != nil {
		return nil, err
	}

	// 6) Prune non-terminal leaves until none remain
	for pruned := true; pruned; {
		pruned = false
		for _, v := range tree.Vertices() {
			if isTerminal[v] {
				continue
			}
			if d, _ := tree.Degree(v); d <= 1 {
				tree.removeVertex(v)
				pruned = true
			}
		}
	}

	return tree, nil
}
