// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math/cmplx"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/qpauli/qubit"
	"github.com/katalvlaran/qpauli/state"
)

// Kind identifies a gate type.
type Kind uint8

// Supported gate kinds.
const (
	KindI Kind = iota
	KindX
	KindY
	KindZ
	KindV      // square root of X
	KindVH     // adjoint of V
	KindSqrtY  // square root of Y
	KindSqrtYH // adjoint of SqrtY
	KindRZ     // exp(-iθZ/2)
	KindCNOT
	KindSWAP
)

var kindNames = [...]string{
	KindI: "I", KindX: "X", KindY: "Y", KindZ: "Z",
	KindV: "V", KindVH: "V_H", KindSqrtY: "SqrtY", KindSqrtYH: "SqrtY_H",
	KindRZ: "RZ", KindCNOT: "CNOT", KindSWAP: "SWAP",
}

// String returns the gate name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// Gate is a quantum gate bound to its qubits. Gates are values.
type Gate struct {
	kind   Kind
	qubits []qubit.Qubit
	theta  float64
}

func gate1(k Kind, q qubit.Qubit) Gate { return Gate{kind: k, qubits: []qubit.Qubit{q}} }

// I returns the identity gate on q.
func I(q qubit.Qubit) Gate { return gate1(KindI, q) }

// X returns the Pauli X gate on q.
func X(q qubit.Qubit) Gate { return gate1(KindX, q) }

// Y returns the Pauli Y gate on q.
func Y(q qubit.Qubit) Gate { return gate1(KindY, q) }

// Z returns the Pauli Z gate on q.
func Z(q qubit.Qubit) Gate { return gate1(KindZ, q) }

// V returns the principal square root of X on q.
func V(q qubit.Qubit) Gate { return gate1(KindV, q) }

// VH returns the adjoint of V on q.
func VH(q qubit.Qubit) Gate { return gate1(KindVH, q) }

// SqrtY returns the principal square root of Y on q.
func SqrtY(q qubit.Qubit) Gate { return gate1(KindSqrtY, q) }

// SqrtYH returns the adjoint of SqrtY on q.
func SqrtYH(q qubit.Qubit) Gate { return gate1(KindSqrtYH, q) }

// RZ returns the Z-axis rotation exp(-iθZ/2) on q.
func RZ(theta float64, q qubit.Qubit) Gate {
	return Gate{kind: KindRZ, qubits: []qubit.Qubit{q}, theta: theta}
}

// CNOT returns a controlled-NOT with the given control and target.
func CNOT(control, target qubit.Qubit) Gate {
	return Gate{kind: KindCNOT, qubits: []qubit.Qubit{control, target}}
}

// SWAP exchanges the states of a and b.
func SWAP(a, b qubit.Qubit) Gate {
	return Gate{kind: KindSWAP, qubits: []qubit.Qubit{a, b}}
}

// Kind returns the gate kind.
func (g Gate) Kind() Kind { return g.kind }

// Name returns the gate name.
func (g Gate) Name() string { return g.kind.String() }

// Qubits returns the gate's qubits; for CNOT the control comes first.
func (g Gate) Qubits() []qubit.Qubit { return slices.Clone(g.qubits) }

// Theta returns the rotation angle of an RZ gate (0 otherwise).
func (g Gate) Theta() float64 { return g.theta }

// H returns the adjoint gate.
func (g Gate) H() Gate {
	out := Gate{kind: g.kind, qubits: g.qubits, theta: g.theta}
	switch g.kind {
	case KindV:
		out.kind = KindVH
	case KindVH:
		out.kind = KindV
	case KindSqrtY:
		out.kind = KindSqrtYH
	case KindSqrtYH:
		out.kind = KindSqrtY
	case KindRZ:
		out.theta = -g.theta
	}

	return out
}

// Equal reports whether g and o are the same gate on the same qubits.
func (g Gate) Equal(o Gate) bool {
	if g.kind != o.kind || g.theta != o.theta || len(g.qubits) != len(o.qubits) {
		return false
	}
	for i := range g.qubits {
		if qubit.Compare(g.qubits[i], o.qubits[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders the gate as NAME(params) q0 q1.
func (g Gate) String() string {
	var sb strings.Builder
	sb.WriteString(g.Name())
	if g.kind == KindRZ {
		fmt.Fprintf(&sb, "(%g)", g.theta)
	}
	for _, q := range g.qubits {
		fmt.Fprintf(&sb, " %v", q)
	}

	return sb.String()
}

// Matrix1 returns the single-qubit unitary; ok is false for two-qubit gates.
func (g Gate) Matrix1() (m state.Matrix1, ok bool) {
	const h = 0.5
	switch g.kind {
	case KindI:
		return state.Matrix1{{1, 0}, {0, 1}}, true
	case KindX:
		return state.Matrix1{{0, 1}, {1, 0}}, true
	case KindY:
		return state.Matrix1{{0, -1i}, {1i, 0}}, true
	case KindZ:
		return state.Matrix1{{1, 0}, {0, -1}}, true
	case KindV:
		return state.Matrix1{{h * (1 + 1i), h * (1 - 1i)}, {h * (1 - 1i), h * (1 + 1i)}}, true
	case KindVH:
		return state.Matrix1{{h * (1 - 1i), h * (1 + 1i)}, {h * (1 + 1i), h * (1 - 1i)}}, true
	case KindSqrtY:
		return state.Matrix1{{h * (1 + 1i), -h * (1 + 1i)}, {h * (1 + 1i), h * (1 + 1i)}}, true
	case KindSqrtYH:
		return state.Matrix1{{h * (1 - 1i), h * (1 - 1i)}, {-h * (1 - 1i), h * (1 - 1i)}}, true
	case KindRZ:
		return state.Matrix1{
			{cmplx.Exp(complex(0, -g.theta/2)), 0},
			{0, cmplx.Exp(complex(0, g.theta/2))},
		}, true
	}

	return m, false
}

// Matrix2 returns the two-qubit unitary; ok is false for single-qubit gates.
func (g Gate) Matrix2() (m state.Matrix2, ok bool) {
	switch g.kind {
	case KindCNOT:
		return state.Matrix2{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 0, 1}, {0, 0, 1, 0}}, true
	case KindSWAP:
		return state.Matrix2{{1, 0, 0, 0}, {0, 0, 1, 0}, {0, 1, 0, 0}, {0, 0, 0, 1}}, true
	}

	return m, false
}

// Run applies the gate to s and returns the new state.
func (g Gate) Run(s *state.State) (*state.State, error) {
	if m, ok := g.Matrix1(); ok {
		return s.Apply1(g.qubits[0], m)
	}
	if m, ok := g.Matrix2(); ok {
		return s.Apply2(g.qubits[0], g.qubits[1], m)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownGate, g.Name())
}

// qasm returns the OpenQASM 2.0 statement for g given the register index of each qubit.
// V and √Y are emitted as rx/ry rotations, equal up to a global phase.
func (g Gate) qasm(index map[qubit.Qubit]int) (string, error) {
	q := func(i int) string { return fmt.Sprintf("q[%d]", index[g.qubits[i]]) }
	switch g.kind {
	case KindI:
		return "id " + q(0) + ";", nil
	case KindX:
		return "x " + q(0) + ";", nil
	case KindY:
		return "y " + q(0) + ";", nil
	case KindZ:
		return "z " + q(0) + ";", nil
	case KindV:
		return "rx(pi/2) " + q(0) + ";", nil
	case KindVH:
		return "rx(-pi/2) " + q(0) + ";", nil
	case KindSqrtY:
		return "ry(pi/2) " + q(0) + ";", nil
	case KindSqrtYH:
		return "ry(-pi/2) " + q(0) + ";", nil
	case KindRZ:
		return "rz(" + formatAngle(g.theta) + ") " + q(0) + ";", nil
	case KindCNOT:
		return "cx " + q(0) + "," + q(1) + ";", nil
	case KindSWAP:
		return "swap " + q(0) + "," + q(1) + ";", nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownGate, g.Name())
}

func formatAngle(theta float64) string {
	return strconv.FormatFloat(theta, 'g', -1, 64)
}
