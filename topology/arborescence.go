// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"

	"github.com/katalvlaran/qpauli/qubit"
)

// IsArborescence reports whether g is a directed tree: one root with no
// incoming edge, every other vertex with exactly one, and all vertices
// reachable from the root.
// Complexity: O(V + E).
func (g *Graph) IsArborescence() bool {
	_, err := g.Root()

	return err == nil
}

// Root returns the root of an arborescence, or ErrNotArborescence.
func (g *Graph) Root() (qubit.Qubit, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%w: undirected", ErrNotArborescence)
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrNotArborescence)
	}
	if g.EdgeCount() != len(vertices)-1 {
		return nil, fmt.Errorf("%w: %d edges for %d vertices", ErrNotArborescence, g.EdgeCount(), len(vertices))
	}

	var root qubit.Qubit
	roots := 0
	for _, v := range vertices {
		in, _ := g.InNeighbors(v)
		switch len(in) {
		case 0:
			root = v
			roots++
		case 1:
		default:
			return nil, fmt.Errorf("%w: %v has %d parents", ErrNotArborescence, v, len(in))
		}
	}
	if roots != 1 {
		return nil, fmt.Errorf("%w: %d roots", ErrNotArborescence, roots)
	}

	reached, err := g.hops(root)
	if err != nil {
		return nil, err
	}
	if len(reached) != len(vertices) {
		return nil, fmt.Errorf("%w: %d of %d vertices reachable from %v", ErrNotArborescence, len(reached), len(vertices), root)
	}

	return root, nil
}

// Orient returns the depth-first tree of g's undirected view rooted at root,
// with every edge directed away from the root. Only vertices reachable from
// root are included; when g is a tree the result is its arborescence.
//
// Complexity: O(V + E).
func (g *Graph) Orient(root qubit.Qubit) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, root)
	}
	u := g.Undirected()
	out := NewGraph(WithDirected(true))
	out.addVertexLocked(root)

	visited := map[qubit.Qubit]bool{root: true}
	var visit func(v qubit.Qubit) error
	visit = func(v qubit.Qubit) error {
		nbrs, err := u.Neighbors(v)
		if err != nil {
			return err
		}
		for _, n := range nbrs {
			if visited[n] {
				continue
			}
			visited[n] = true
			w, _ := u.Weight(v, n)
			if err = out.AddEdge(v, n, w); err != nil {
				return err
			}
			if err = visit(n); err != nil {
				return err
			}
		}

		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}

	return out, nil
}

// Predecessor returns the parent of q in a directed graph. When q has several
// incoming edges the canonically smallest source is returned. ok is false for
// roots, unknown vertices and undirected graphs.
func (g *Graph) Predecessor(q qubit.Qubit) (qubit.Qubit, bool) {
	if g == nil || !g.Directed() {
		return nil, false
	}
	in, err := g.InNeighbors(q)
	if err != nil || len(in) == 0 {
		return nil, false
	}

	return in[0], true
}
