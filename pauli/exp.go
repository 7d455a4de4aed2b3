// SPDX-License-Identifier: MIT

package pauli

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/qpauli/circuit"
	"github.com/katalvlaran/qpauli/qubit"
	"github.com/katalvlaran/qpauli/topology"
)

// connectivity is everything the synthesizer needs from a qubit graph.
type connectivity interface {
	isArborescence() bool
	steinerTree(terminals []qubit.Qubit) (connectivity, error)
	center() ([]qubit.Qubit, error)
	orient(root qubit.Qubit) (connectivity, error)
	topologicalSort() ([]qubit.Qubit, error)
	predecessor(q qubit.Qubit) (qubit.Qubit, bool)
}

// graphConnectivity adapts *topology.Graph to connectivity.
type graphConnectivity struct{ g *topology.Graph }

func (c graphConnectivity) isArborescence() bool { return c.g.IsArborescence() }

func (c graphConnectivity) steinerTree(terminals []qubit.Qubit) (connectivity, error) {
	t, err := c.g.SteinerTree(terminals)
	if err != nil {
		return nil, err
	}

	return graphConnectivity{t}, nil
}

func (c graphConnectivity) center() ([]qubit.Qubit, error) { return c.g.Center() }

func (c graphConnectivity) orient(root qubit.Qubit) (connectivity, error) {
	t, err := c.g.Orient(root)
	if err != nil {
		return nil, err
	}

	return graphConnectivity{t}, nil
}

func (c graphConnectivity) topologicalSort() ([]qubit.Qubit, error) { return c.g.TopologicalSort() }

func (c graphConnectivity) predecessor(q qubit.Qubit) (qubit.Qubit, bool) { return c.g.Predecessor(q) }

// ExpOption configures ExpCircuit.
type ExpOption func(*expOptions)

type expOptions struct {
	topology connectivity // nil: path over the active qubits
}

// WithTopology restricts two-qubit gates to the couplers of g. Undirected
// graphs (or directed graphs that are not trees) are reduced per term to a
// Steiner tree rooted at its center; a directed tree is used as given.
// A nil graph is ignored.
func WithTopology(g *topology.Graph) ExpOption {
	return func(o *expOptions) {
		if g != nil {
			o.topology = graphConnectivity{g}
		}
	}
}

// ExpCircuit returns a circuit implementing exp(-i·alpha·h) term by term.
//
// For each term c·P (c real, θ = c·alpha) the block is
//
//	B · L · RZ(2θ, root) · L† · B†
//
// where B rotates every X factor (√Y†) and Y factor (V) onto the Z axis and
// L is a CNOT ladder accumulating the parity of the active qubits on the
// root of a tree over them. When a tree edge leads to a qubit outside the
// term, a SWAP routes the parity through it instead of a CNOT.
//
// Blocks are concatenated in term order; the result equals exp(-i·alpha·h)
// whenever the terms commute. The identity and zero elements give an empty
// circuit (global phase is dropped), as do scalar terms inside a sum.
//
// Errors: ErrNonHermitian if any coefficient has an imaginary part above
// Tolerance; topology errors (e.g. topology.ErrTerminalNotFound) are wrapped.
func ExpCircuit(h Pauli, alpha float64, opts ...ExpOption) (*circuit.Circuit, error) {
	var o expOptions
	for _, opt := range opts {
		opt(&o)
	}

	circ := circuit.New()
	if h.IsIdentity() || h.IsZero() {
		return circ, nil
	}

	for _, t := range h.terms {
		// 1) Hermiticity
		if math.Abs(imag(t.coeff)) > Tolerance {
			return nil, fmt.Errorf("%w: coefficient %v", ErrNonHermitian, t.coeff)
		}
		if len(t.factors) == 0 {
			continue
		}

		// 2) Rotation angle
		theta := real(t.coeff) * alpha

		block, err := termCircuit(t, theta, o.topology)
		if err != nil {
			return nil, fmt.Errorf("pauli: term %s: %w", Pauli{terms: []Term{t}}, err)
		}
		circ.Extend(block)
	}

	return circ, nil
}

// termCircuit synthesizes exp(-iθP) for a single non-scalar term.
func termCircuit(t Term, theta float64, topo connectivity) (*circuit.Circuit, error) {
	// 3) Basis change onto Z
	active := make(map[qubit.Qubit]bool, len(t.factors))
	qubits := make([]qubit.Qubit, 0, len(t.factors))
	basis := circuit.New()
	for _, f := range t.factors {
		active[f.Qubit] = true
		qubits = append(qubits, f.Qubit)
		switch f.Op {
		case X:
			basis.Add(circuit.SqrtYH(f.Qubit))
		case Y:
			basis.Add(circuit.V(f.Qubit))
		}
	}

	// 4) Tree over the active qubits
	tree, err := parityTree(qubits, topo)
	if err != nil {
		return nil, err
	}

	// 5) Leaves-first ladder
	order, err := tree.topologicalSort()
	if err != nil {
		return nil, err
	}
	slices.Reverse(order)
	for _, q := range qubits {
		if !slices.Contains(order, q) {
			return nil, fmt.Errorf("%w: %v", topology.ErrTerminalNotFound, q)
		}
	}
	root := order[len(order)-1]

	ladder := circuit.New()
	for _, q := range order[:len(order)-1] {
		if !active[q] {
			// Nothing in q's subtree belongs to the term.
			continue
		}
		parent, ok := tree.predecessor(q)
		if !ok {
			return nil, fmt.Errorf("%w: %v has no parent", topology.ErrNotArborescence, q)
		}
		if active[parent] {
			ladder.Add(circuit.CNOT(q, parent))
		} else {
			ladder.Add(circuit.SWAP(q, parent))
			active[parent] = true
		}
	}
	if !active[root] {
		return nil, fmt.Errorf("%w: root %v carries no parity", topology.ErrNotArborescence, root)
	}

	// 6) + 7)
	return circuit.New().
		Extend(basis, ladder).
		Add(circuit.RZ(2*theta, root)).
		Extend(ladder.H(), basis.H()), nil
}

// parityTree picks the directed tree the ladder runs over.
func parityTree(qubits []qubit.Qubit, topo connectivity) (connectivity, error) {
	if topo == nil {
		line, err := topology.Line(qubits, topology.WithDirected(true))
		if err != nil {
			return nil, err
		}

		return graphConnectivity{line}, nil
	}
	if topo.isArborescence() {
		return topo, nil
	}

	steiner, err := topo.steinerTree(qubits)
	if err != nil {
		return nil, err
	}
	centers, err := steiner.center()
	if err != nil {
		return nil, err
	}
	if len(centers) == 0 {
		return nil, errors.New("pauli: steiner tree has no center")
	}

	return steiner.orient(centers[0])
}
