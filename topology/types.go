// SPDX-License-Identifier: MIT

package topology

import (
	"errors"
	"sync"

	"github.com/katalvlaran/qpauli/qubit"
)

// Sentinel errors for topology construction and algorithms.
var (
	// ErrGraphNil is returned when a nil *Graph is used.
	ErrGraphNil = errors.New("topology: graph is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("topology: vertex not found")

	// ErrTerminalNotFound indicates a Steiner terminal absent from the graph.
	ErrTerminalNotFound = errors.New("topology: terminal not in graph")

	// ErrLoopNotAllowed indicates an attempted self-loop.
	ErrLoopNotAllowed = errors.New("topology: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates an attempted parallel edge.
	ErrMultiEdgeNotAllowed = errors.New("topology: multi-edges not allowed")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("topology: edge weight must be a non-negative number")

	// ErrDisconnected indicates the requested vertices are not connected.
	ErrDisconnected = errors.New("topology: graph is disconnected")

	// ErrEmptyGraph indicates an algorithm that needs at least one vertex.
	ErrEmptyGraph = errors.New("topology: graph has no vertices")

	// ErrNotArborescence indicates a directed tree was required.
	ErrNotArborescence = errors.New("topology: graph is not an arborescence")

	// ErrCycleDetected indicates a cycle was found during topological sort.
	ErrCycleDetected = errors.New("topology: cycle detected")

	// ErrUndirected indicates a directed graph was required.
	ErrUndirected = errors.New("topology: operation requires a directed graph")

	// ErrTooFewVertices indicates a builder was given too few qubits.
	ErrTooFewVertices = errors.New("topology: too few vertices")
)

// DefaultWeight is the weight used by the builders for every coupler.
const DefaultWeight = 1.0

// Edge is a coupler between two qubits. For undirected graphs From sorts before To.
type Edge struct {
	From   qubit.Qubit
	To     qubit.Qubit
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a qubit connectivity graph.
//
// mu guards every map. For undirected graphs each edge is stored in both
// directions of out and in mirrors out.
type Graph struct {
	mu       sync.RWMutex
	directed bool

	vertices map[qubit.Qubit]struct{}
	out      map[qubit.Qubit]map[qubit.Qubit]float64 // from → to → weight
	in       map[qubit.Qubit]map[qubit.Qubit]float64 // to → from → weight
}

// NewGraph creates an empty Graph. By default the graph is undirected.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[qubit.Qubit]struct{}),
		out:      make(map[qubit.Qubit]map[qubit.Qubit]float64),
		in:       make(map[qubit.Qubit]map[qubit.Qubit]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
