// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/qpauli/qubit"
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// AddVertex inserts q if absent. Adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(q qubit.Qubit) error {
	if err := qubit.Validate(q); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(q)

	return nil
}

func (g *Graph) addVertexLocked(q qubit.Qubit) {
	if _, ok := g.vertices[q]; ok {
		return
	}
	g.vertices[q] = struct{}{}
	g.out[q] = make(map[qubit.Qubit]float64)
	g.in[q] = make(map[qubit.Qubit]float64)
}

// AddEdge connects from and to with the given weight, creating missing vertices.
//
// Steps:
//  1. Validate labels, weight (ErrBadWeight) and loops (ErrLoopNotAllowed).
//  2. Reject an existing coupler (ErrMultiEdgeNotAllowed).
//  3. Store from→to; mirror to→from for undirected graphs.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to qubit.Qubit, weight float64) error {
	// 1) Validation
	if err := qubit.Validate(from); err != nil {
		return err
	}
	if err := qubit.Validate(to); err != nil {
		return err
	}
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if from == to {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Parallel edges
	if _, ok := g.out[from][to]; ok {
		return fmt.Errorf("%w: %v-%v", ErrMultiEdgeNotAllowed, from, to)
	}

	// 3) Store
	g.linkLocked(from, to, weight)

	return nil
}

// linkLocked stores from→to, and its mirror when undirected, without
// validation. The caller holds g.mu or owns g exclusively.
func (g *Graph) linkLocked(from, to qubit.Qubit, weight float64) {
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.out[from][to] = weight
	g.in[to][from] = weight
	if !g.directed {
		g.out[to][from] = weight
		g.in[from][to] = weight
	}
}

// removeVertex deletes q and every incident edge.
func (g *Graph) removeVertex(q qubit.Qubit) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for to := range g.out[q] {
		delete(g.in[to], q)
	}
	for from := range g.in[q] {
		delete(g.out[from], q)
	}
	delete(g.out, q)
	delete(g.in, q)
	delete(g.vertices, q)
}

// HasVertex reports whether q is a vertex.
func (g *Graph) HasVertex(q qubit.Qubit) bool {
	if qubit.Validate(q) != nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[q]

	return ok
}

// HasEdge reports whether from→to exists (either way for undirected graphs).
func (g *Graph) HasEdge(from, to qubit.Qubit) bool {
	if qubit.Validate(from) != nil || qubit.Validate(to) != nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Weight returns the weight of from→to.
func (g *Graph) Weight(from, to qubit.Qubit) (float64, bool) {
	if qubit.Validate(from) != nil || qubit.Validate(to) != nil {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.out[from][to]

	return w, ok
}

// Vertices returns all vertices in canonical order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []qubit.Qubit {
	g.mu.RLock()
	out := make([]qubit.Qubit, 0, len(g.vertices))
	for q := range g.vertices {
		out = append(out, q)
	}
	g.mu.RUnlock()
	qubit.Sort(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Edges returns every edge once, sorted by (From, To). Undirected edges are
// reported with From sorting before To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	var out []Edge
	for from, tos := range g.out {
		for to, w := range tos {
			if !g.directed && qubit.Compare(from, to) > 0 {
				continue
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()
	slices.SortFunc(out, compareEdges)

	return out
}

// EdgeCount returns the number of edges (undirected edges count once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, tos := range g.out {
		n += len(tos)
	}
	if !g.directed {
		n /= 2
	}

	return n
}

// Neighbors returns the out-neighbors of q in canonical order.
// For undirected graphs these are all adjacent vertices.
func (g *Graph) Neighbors(q qubit.Qubit) ([]qubit.Qubit, error) {
	return g.adjacent(q, false)
}

// InNeighbors returns the vertices with an edge into q, in canonical order.
func (g *Graph) InNeighbors(q qubit.Qubit) ([]qubit.Qubit, error) {
	return g.adjacent(q, true)
}

func (g *Graph) adjacent(q qubit.Qubit, incoming bool) ([]qubit.Qubit, error) {
	if err := qubit.Validate(q); err != nil {
		return nil, err
	}
	g.mu.RLock()
	if _, ok := g.vertices[q]; !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, q)
	}
	src := g.out[q]
	if incoming {
		src = g.in[q]
	}
	out := make([]qubit.Qubit, 0, len(src))
	for n := range src {
		out = append(out, n)
	}
	g.mu.RUnlock()
	qubit.Sort(out)

	return out, nil
}

// Degree returns the number of incident edges of q (in + out for directed graphs).
func (g *Graph) Degree(q qubit.Qubit) (int, error) {
	if err := qubit.Validate(q); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[q]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, q)
	}
	if g.directed {
		return len(g.out[q]) + len(g.in[q]), nil
	}

	return len(g.out[q]), nil
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	out := NewGraph(WithDirected(g.Directed()))
	for _, q := range g.Vertices() {
		out.addVertexLocked(q)
	}
	// edges of g are already validated
	for _, e := range g.Edges() {
		out.linkLocked(e.From, e.To, e.Weight)
	}

	return out
}

// Undirected returns an undirected copy of g. Opposite directed edges merge
// into one coupler keeping the smaller weight.
func (g *Graph) Undirected() *Graph {
	out := NewGraph()
	for _, q := range g.Vertices() {
		out.addVertexLocked(q)
	}
	for _, e := range g.Edges() {
		if w, ok := out.out[e.From][e.To]; ok && w <= e.Weight {
			continue
		}
		out.linkLocked(e.From, e.To, e.Weight)
	}

	return out
}

// compareEdges orders edges by From, then To.
func compareEdges(a, b Edge) int {
	if c := qubit.Compare(a.From, b.From); c != 0 {
		return c
	}

	return qubit.Compare(a.To, b.To)
}
