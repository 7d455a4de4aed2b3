// SPDX-License-Identifier: MIT

package topology

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qpauli/qubit"
)

// Visitation states for depth-first traversals.
const (
	white = iota // not visited
	gray         // on the recursion stack
	black        // fully explored
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *Graph
	opts  topoOptions
	state map[qubit.Qubit]int
	order []qubit.Qubit // post-order
}

// TopologicalSort orders the vertices of a directed graph so that every edge
// u→v has u before v. Vertices are started, and children explored, in
// canonical order; for an arborescence the root comes first.
//
// Errors: ErrGraphNil, ErrUndirected, ErrCycleDetected, or the context error.
// Complexity: O(V + E).
func (g *Graph) TopologicalSort(options ...TopoOption) ([]qubit.Qubit, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Drive DFS from every unvisited vertex
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[qubit.Qubit]int, len(verts)),
		order: make([]qubit.Qubit, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == white {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from q, marking states and detecting back-edges.
func (t *topoSorter) visit(q qubit.Qubit) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[q] {
	case gray:
		return fmt.Errorf("%w: at %v", ErrCycleDetected, q)
	case black:
		return nil
	}
	t.state[q] = gray

	nbrs, err := t.graph.Neighbors(q)
	if err != nil {
		return err
	}
	for _, n := range nbrs {
		if err = t.visit(n); err != nil {
			return err
		}
	}

	t.state[q] = black
	t.order = append(t.order, q)

	return nil
}
