// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"

	"github.com/katalvlaran/qpauli/qubit"
)

// File-local constants for builder tagging and parameter minima.
const (
	methodLine = "Line"
	methodRing = "Ring"
	methodStar = "Star"
	methodGrid = "Grid"

	minLineNodes = 1
	minRingNodes = 3
	minStarNodes = 1
)

// Line builds the path q0 - q1 - … - qn-1 in the given order. A directed line
// points from each qubit to its successor, so q0 is the root.
func Line(qubits []qubit.Qubit, opts ...GraphOption) (*Graph, error) {
	if len(qubits) < minLineNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, len(qubits), minLineNodes, ErrTooFewVertices)
	}
	g := NewGraph(opts...)
	if err := g.AddVertex(qubits[0]); err != nil {
		return nil, fmt.Errorf("%s: AddVertex(%v): %w", methodLine, qubits[0], err)
	}
	for i := 1; i < len(qubits); i++ {
		if err := g.AddEdge(qubits[i-1], qubits[i], DefaultWeight); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%v,%v): %w", methodLine, qubits[i-1], qubits[i], err)
		}
	}

	return g, nil
}

// Ring builds the cycle q0 - q1 - … - qn-1 - q0.
func Ring(qubits []qubit.Qubit, opts ...GraphOption) (*Graph, error) {
	if len(qubits) < minRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, len(qubits), minRingNodes, ErrTooFewVertices)
	}
	g, err := Line(qubits, opts...)
	if err != nil {
		return nil, err
	}
	last := qubits[len(qubits)-1]
	if err = g.AddEdge(last, qubits[0], DefaultWeight); err != nil {
		return nil, fmt.Errorf("%s: AddEdge(%v,%v): %w", methodRing, last, qubits[0], err)
	}

	return g, nil
}

// Star connects center to every leaf.
func Star(center qubit.Qubit, leaves []qubit.Qubit, opts ...GraphOption) (*Graph, error) {
	if len(leaves) < minStarNodes {
		return nil, fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, len(leaves), minStarNodes, ErrTooFewVertices)
	}
	g := NewGraph(opts...)
	for _, leaf := range leaves {
		if err := g.AddEdge(center, leaf, DefaultWeight); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%v,%v): %w", methodStar, center, leaf, err)
		}
	}

	return g, nil
}

// Grid builds a rows×cols lattice with integer qubits r*cols + c, coupling
// horizontal and vertical neighbours.
func Grid(rows, cols int, opts ...GraphOption) (*Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
	}
	g := NewGraph(opts...)
	id := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.AddVertex(id(r, c)); err != nil {
				return nil, fmt.Errorf("%s: AddVertex(%d): %w", methodGrid, id(r, c), err)
			}
			if c > 0 {
				if err := g.AddEdge(id(r, c-1), id(r, c), DefaultWeight); err != nil {
					return nil, fmt.Errorf("%s: AddEdge: %w", methodGrid, err)
				}
			}
			if r > 0 {
				if err := g.AddEdge(id(r-1, c), id(r, c), DefaultWeight); err != nil {
					return nil, fmt.Errorf("%s: AddEdge: %w", methodGrid, err)
				}
			}
		}
	}

	return g, nil
}
