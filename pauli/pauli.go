// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/katalvlaran/qpauli/qubit"
)

// Pauli is an element of the Pauli algebra: a formal sum of terms such as
//
//	Y(1) - 0.5 Z(1) X(2) Y(4)
//
// Terms are kept sorted by their factor sequences, carry non-negligible
// coefficients and never repeat a factor signature, so every element has a
// unique representation. The zero value is the zero element.
//
// A Pauli is immutable: every operation returns a new value.
type Pauli struct {
	terms []Term
}

// Terms returns the terms in canonical order.
func (p Pauli) Terms() []Term {
	out := make([]Term, len(p.terms))
	copy(out, p.terms)

	return out
}

// Len returns the number of terms.
func (p Pauli) Len() int { return len(p.terms) }

// Qubits returns every qubit acted on by some term, in canonical order.
func (p Pauli) Qubits() []qubit.Qubit {
	var qs []qubit.Qubit
	for _, t := range p.terms {
		for _, f := range t.factors {
			qs = append(qs, f.Qubit)
		}
	}

	return qubit.Dedup(qs)
}

// IsZero reports whether p is the zero element.
func (p Pauli) IsZero() bool { return len(p.terms) == 0 }

// IsScalar reports whether p is a multiple of the identity (zero included).
func (p Pauli) IsScalar() bool {
	switch len(p.terms) {
	case 0:
		return true
	case 1:
		return len(p.terms[0].factors) == 0
	}

	return false
}

// IsIdentity reports whether p is the identity element.
func (p Pauli) IsIdentity() bool {
	if len(p.terms) != 1 || len(p.terms[0].factors) != 0 {
		return false
	}

	return cmplx.Abs(p.terms[0].coeff-1) <= Tolerance
}

// IsHermitian reports whether every coefficient is real within Tolerance.
func (p Pauli) IsHermitian() bool {
	for _, t := range p.terms {
		if math.Abs(imag(t.coeff)) > Tolerance {
			return false
		}
	}

	return true
}

// Compare is a three-way comparison over the canonical term sequences.
// Terms are compared by factors, then coefficient; a proper prefix sorts first.
func (p Pauli) Compare(o Pauli) int {
	n := min(len(p.terms), len(o.terms))
	for i := 0; i < n; i++ {
		if c := compareFactors(p.terms[i].factors, o.terms[i].factors); c != 0 {
			return c
		}
		if c := compareCoefficients(p.terms[i].coeff, o.terms[i].coeff); c != 0 {
			return c
		}
	}

	switch {
	case len(p.terms) < len(o.terms):
		return -1
	case len(p.terms) > len(o.terms):
		return 1
	}

	return 0
}

// Equal reports structural equality. Coefficients are compared exactly;
// use Close for a numerical comparison.
func (p Pauli) Equal(o Pauli) bool { return p.Compare(o) == 0 }

// Key returns a canonical string for p, suitable as a map key.
// Equal elements have equal keys.
func (p Pauli) Key() string {
	var sb strings.Builder
	for _, t := range p.terms {
		for _, f := range t.factors {
			fmt.Fprintf(&sb, "%T(%#v)%c", f.Qubit, f.Qubit, f.Op)
		}
		sb.WriteByte('|')
		sb.WriteString(strconv.FormatComplex(t.coeff, 'g', -1, 128))
		sb.WriteByte(';')
	}

	return sb.String()
}

// String renders p as "+ (c) Op(q) ... + (c) ...". The zero element renders as "0".
func (p Pauli) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	parts := make([]string, 0, 2*len(p.terms))
	for _, t := range p.terms {
		parts = append(parts, "+ "+formatCoefficient(t.coeff))
		for _, f := range t.factors {
			parts = append(parts, f.String())
		}
	}

	return strings.Join(parts, " ")
}

func formatCoefficient(c complex128) string {
	return "(" + strconv.FormatFloat(real(c), 'g', -1, 64) +
		signed(imag(c)) + "i)"
}

func signed(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.HasPrefix(s, "-") {
		return "+" + s
	}

	return s
}
