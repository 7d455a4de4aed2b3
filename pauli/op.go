// SPDX-License-Identifier: MIT

package pauli

import "fmt"

// Op is a single-qubit Pauli operator symbol.
type Op byte

// The four single-qubit Pauli operators. I is never stored inside a term.
const (
	I Op = 'I'
	X Op = 'X'
	Y Op = 'Y'
	Z Op = 'Z'
)

// Tolerance is the magnitude at or below which a coefficient is treated as zero.
const Tolerance = 1e-9

// String returns the one-letter symbol.
func (o Op) String() string { return string(rune(o)) }

// Valid reports whether o is one of I, X, Y, Z.
func (o Op) Valid() bool {
	switch o {
	case I, X, Y, Z:
		return true
	}

	return false
}

// ParseOp converts a rune into an Op.
func ParseOp(r rune) (Op, error) {
	o := Op(r)
	if r > 0xff || !o.Valid() {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidOperator, r)
	}

	return o, nil
}

// product is one entry of the single-qubit multiplication table: left·right = phase·op.
type product struct {
	op    Op
	phase complex128
}

// productTable holds left·right for every ordered pair of single-qubit operators.
// Read-only after package initialisation.
var productTable = map[[2]Op]product{
	{I, I}: {I, 1}, {X, X}: {I, 1}, {Y, Y}: {I, 1}, {Z, Z}: {I, 1},
	{X, Y}: {Z, 1i}, {Y, X}: {Z, -1i},
	{Y, Z}: {X, 1i}, {Z, Y}: {X, -1i},
	{Z, X}: {Y, 1i}, {X, Z}: {Y, -1i},
	{I, X}: {X, 1}, {X, I}: {X, 1},
	{I, Y}: {Y, 1}, {Y, I}: {Y, 1},
	{I, Z}: {Z, 1}, {Z, I}: {Z, 1},
}

// multiply returns left·right as an operator and a phase.
func multiply(left, right Op) (Op, complex128) {
	p := productTable[[2]Op{left, right}]

	return p.op, p.phase
}
