// SPDX-License-Identifier: MIT

package pauli

import (
	"cmp"
	"fmt"
	"math/cmplx"
	"slices"
	"strings"

	"github.com/katalvlaran/qpauli/qubit"
)

// Factor is one non-identity single-qubit operator inside a term.
type Factor struct {
	Qubit qubit.Qubit
	Op    Op
}

// String renders the factor as Op(qubit), e.g. X(0).
func (f Factor) String() string { return fmt.Sprintf("%s(%v)", f.Op, f.Qubit) }

// Term is a tensor product of single-qubit Pauli operators with a complex coefficient.
//
// Factors are sorted by canonical qubit order, contain no identities and never
// repeat a qubit. Terms are values; the factor slice is never exposed for writing.
type Term struct {
	factors []Factor
	coeff   complex128
}

// Factors returns a copy of the term's factors in canonical qubit order.
func (t Term) Factors() []Factor { return slices.Clone(t.factors) }

// Coefficient returns the complex coefficient of the term.
func (t Term) Coefficient() complex128 { return t.coeff }

// Len returns the number of non-identity factors (the term's weight).
func (t Term) Len() int { return len(t.factors) }

// Qubits returns the qubits acted on by the term, in canonical order.
func (t Term) Qubits() []qubit.Qubit {
	out := make([]qubit.Qubit, len(t.factors))
	for i, f := range t.factors {
		out[i] = f.Qubit
	}

	return out
}

// Operators returns the operator string of the term, e.g. "XZ".
func (t Term) Operators() string {
	var sb strings.Builder
	for _, f := range t.factors {
		sb.WriteByte(byte(f.Op))
	}

	return sb.String()
}

// compareFactors is the total order over factor sequences used to sort terms.
func compareFactors(a, b []Factor) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := qubit.Compare(a[i].Qubit, b[i].Qubit); c != 0 {
			return c
		}
		if c := cmp.Compare(a[i].Op, b[i].Op); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// compareCoefficients orders complex numbers by real part, then imaginary part.
func compareCoefficients(a, b complex128) int {
	if c := cmp.Compare(real(a), real(b)); c != 0 {
		return c
	}

	return cmp.Compare(imag(a), imag(b))
}

// negligible reports whether c is indistinguishable from zero.
func negligible(c complex128) bool { return cmplx.Abs(c) <= Tolerance }

// NewTerm builds a single-term element from parallel qubit and operator lists.
//
// Steps:
//  1. Validate symbols (ErrInvalidOperator), lengths (ErrLengthMismatch) and labels.
//  2. Return Zero if the coefficient is negligible.
//  3. Drop identity factors and sort the rest by canonical qubit order.
//  4. Reject repeated qubits (ErrDuplicateQubit).
func NewTerm(qubits []qubit.Qubit, ops string, coeff complex128) (Pauli, error) {
	// 1) Validation
	symbols := []rune(ops)
	for _, r := range symbols {
		if _, err := ParseOp(r); err != nil {
			return Pauli{}, err
		}
	}
	if len(symbols) != len(qubits) {
		return Pauli{}, fmt.Errorf("%w: %d qubits, %d operators", ErrLengthMismatch, len(qubits), len(symbols))
	}

	// 2) Zero coefficient collapses to the zero element
	if negligible(coeff) {
		return Zero(), nil
	}

	// 3) Pair, filter identities, sort
	factors := make([]Factor, 0, len(qubits))
	for i, q := range qubits {
		if err := qubit.Validate(q); err != nil {
			return Pauli{}, err
		}
		if Op(symbols[i]) == I {
			continue
		}
		factors = append(factors, Factor{Qubit: q, Op: Op(symbols[i])})
	}
	slices.SortStableFunc(factors, func(a, b Factor) int { return qubit.Compare(a.Qubit, b.Qubit) })

	// 4) One factor per qubit
	for i := 1; i < len(factors); i++ {
		if qubit.Compare(factors[i-1].Qubit, factors[i].Qubit) == 0 {
			return Pauli{}, fmt.Errorf("%w: %v", ErrDuplicateQubit, factors[i].Qubit)
		}
	}

	return Pauli{terms: []Term{{factors: factors, coeff: coeff}}}, nil
}

// MustTerm is like NewTerm but panics on error. Intended for literals in tests and examples.
func MustTerm(qubits []qubit.Qubit, ops string, coeff complex128) Pauli {
	p, err := NewTerm(qubits, ops, coeff)
	if err != nil {
		panic(err)
	}

	return p
}

// Sigma returns op acting on q scaled by coeff (1 if omitted). Sigma(q, I) is a scalar.
func Sigma(q qubit.Qubit, op Op, coeff ...complex128) (Pauli, error) {
	c := coefficient(coeff)
	if op == I {
		return Scalar(c), nil
	}

	return NewTerm([]qubit.Qubit{q}, op.String(), c)
}

// Scalar returns c times the identity element.
func Scalar(c complex128) Pauli {
	if negligible(c) {
		return Zero()
	}

	return Pauli{terms: []Term{{coeff: c}}}
}

// Zero returns the zero element (no terms).
func Zero() Pauli { return Pauli{} }

// Identity returns the identity element.
func Identity() Pauli { return Scalar(1) }

// SX returns the Pauli X operator on q, optionally scaled.
func SX(q qubit.Qubit, coeff ...complex128) Pauli { return mustSigma(q, X, coeff) }

// SY returns the Pauli Y operator on q, optionally scaled.
func SY(q qubit.Qubit, coeff ...complex128) Pauli { return mustSigma(q, Y, coeff) }

// SZ returns the Pauli Z operator on q, optionally scaled.
func SZ(q qubit.Qubit, coeff ...complex128) Pauli { return mustSigma(q, Z, coeff) }

// SI returns the identity scaled by coeff. The qubit is ignored.
func SI(q qubit.Qubit, coeff ...complex128) Pauli { return mustSigma(q, I, coeff) }

func mustSigma(q qubit.Qubit, op Op, coeff []complex128) Pauli {
	p, err := Sigma(q, op, coeff...)
	if err != nil {
		panic(err)
	}

	return p
}

func coefficient(coeff []complex128) complex128 {
	if len(coeff) == 0 {
		return 1
	}

	return coeff[0]
}
