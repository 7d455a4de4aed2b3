// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/qpauli/qubit"
	"github.com/katalvlaran/qpauli/state"
)

// ErrUnknownGate indicates a gate kind the operation cannot handle.
var ErrUnknownGate = errors.New("circuit: unknown gate")

// Circuit is an ordered sequence of gates. The zero value is an empty circuit.
type Circuit struct {
	gates []Gate
}

// New returns a circuit holding the given gates in order.
func New(gates ...Gate) *Circuit {
	c := &Circuit{}

	return c.Add(gates...)
}

// Add appends gates and returns c for chaining.
func (c *Circuit) Add(gates ...Gate) *Circuit {
	c.gates = append(c.gates, gates...)

	return c
}

// Extend appends the gates of every other circuit, in order, and returns c.
func (c *Circuit) Extend(others ...*Circuit) *Circuit {
	for _, o := range others {
		if o != nil {
			c.gates = append(c.gates, o.gates...)
		}
	}

	return c
}

// Len returns the number of gates.
func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns a copy of the gate list.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// Count returns the number of gates of kind k.
func (c *Circuit) Count(k Kind) int {
	n := 0
	for _, g := range c.gates {
		if g.kind == k {
			n++
		}
	}

	return n
}

// Qubits returns every qubit touched by the circuit, in canonical order.
func (c *Circuit) Qubits() []qubit.Qubit {
	var qs []qubit.Qubit
	for _, g := range c.gates {
		qs = append(qs, g.qubits...)
	}

	return qubit.Dedup(qs)
}

// H returns the adjoint circuit: adjoint gates in reverse order.
func (c *Circuit) H() *Circuit {
	out := &Circuit{gates: make([]Gate, len(c.gates))}
	for i, g := range c.gates {
		out.gates[len(c.gates)-1-i] = g.H()
	}

	return out
}

// Run applies every gate to s in order and returns the final state.
func (c *Circuit) Run(s *state.State) (*state.State, error) {
	var err error
	for i, g := range c.gates {
		if s, err = g.Run(s); err != nil {
			return nil, fmt.Errorf("circuit: gate %d (%s): %w", i, g, err)
		}
	}

	return s, nil
}

// String lists one gate per line.
func (c *Circuit) String() string {
	lines := make([]string, len(c.gates))
	for i, g := range c.gates {
		lines[i] = g.String()
	}

	return strings.Join(lines, "\n")
}

// QASM renders the circuit as an OpenQASM 2.0 program. Qubits are mapped to
// register indices in canonical order; the mapping is listed in comments.
func (c *Circuit) QASM() (string, error) {
	qs := c.Qubits()
	index := make(map[qubit.Qubit]int, len(qs))
	for i, q := range qs {
		index[q] = i
	}

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	for i, q := range qs {
		fmt.Fprintf(&sb, "// q[%d] = %v\n", i, q)
	}
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", len(qs))
	for _, g := range c.gates {
		line, err := g.qasm(index)
		if err != nil {
			return "", err
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
