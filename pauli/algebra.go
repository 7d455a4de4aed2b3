// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/katalvlaran/qpauli/qubit"
)

// Sum returns the sum of the given elements.
//
// Steps:
//  1. Gather the (already sorted) term streams of every operand.
//  2. Stable-sort them by factor sequence so equal signatures become adjacent.
//  3. Add coefficients within each run; drop negligible results.
//
// Complexity: O(T log T) for T terms in total.
func Sum(elements ...Pauli) Pauli {
	// 1) Gather
	total := 0
	for _, e := range elements {
		total += len(e.terms)
	}
	all := make([]Term, 0, total)
	for _, e := range elements {
		all = append(all, e.terms...)
	}

	// 2) Merge key: the factor sequence
	slices.SortStableFunc(all, func(a, b Term) int { return compareFactors(a.factors, b.factors) })

	// 3) Group and accumulate
	out := make([]Term, 0, len(all))
	for i := 0; i < len(all); {
		j := i
		var c complex128
		for ; j < len(all) && compareFactors(all[i].factors, all[j].factors) == 0; j++ {
			c += all[j].coeff
		}
		if !negligible(c) {
			out = append(out, Term{factors: all[i].factors, coeff: c})
		}
		i = j
	}

	return Pauli{terms: out}
}

// Product returns the ordered product elements[0]·elements[1]·…
//
// Steps:
//  1. Walk the Cartesian product of the operands' term lists.
//  2. For each combination multiply the coefficients and fold the operators
//     qubit by qubit, left to right, through the single-qubit table,
//     collecting the table's phases.
//  3. Drop qubits whose folded operator is I.
//  4. Combine all resulting terms with Sum, which drops negligible results.
//
// Product() with no operands is the identity; any zero operand yields zero.
func Product(elements ...Pauli) Pauli {
	if len(elements) == 0 {
		return Identity()
	}
	for _, e := range elements {
		if e.IsZero() {
			return Zero()
		}
	}

	// 1) Odometer over term indices
	idx := make([]int, len(elements))
	var results []Term
	for {
		combo := make([]Term, len(elements))
		for k, e := range elements {
			combo[k] = e.terms[idx[k]]
		}
		// 2) + 3) Negligible products are kept until the merge.
		results = append(results, multiplyTerms(combo))

		// advance the odometer, rightmost digit fastest
		k := len(idx) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(elements[k].terms) {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			break
		}
	}

	// 4) Merge duplicates
	return Sum(Pauli{terms: results})
}

// multiplyTerms folds one combination of terms into a single term.
func multiplyTerms(combo []Term) Term {
	coeff := complex128(1)
	n := 0
	for _, t := range combo {
		coeff *= t.coeff
		n += len(t.factors)
	}

	// Stable sort keeps operand order among factors on the same qubit.
	merged := make([]Factor, 0, n)
	for _, t := range combo {
		merged = append(merged, t.factors...)
	}
	slices.SortStableFunc(merged, func(a, b Factor) int { return qubit.Compare(a.Qubit, b.Qubit) })

	out := make([]Factor, 0, len(merged))
	for i := 0; i < len(merged); {
		op := merged[i].Op
		j := i + 1
		for ; j < len(merged) && qubit.Compare(merged[i].Qubit, merged[j].Qubit) == 0; j++ {
			var phase complex128
			op, phase = multiply(op, merged[j].Op)
			coeff *= phase
		}
		if op != I {
			out = append(out, Factor{Qubit: merged[i].Qubit, Op: op})
		}
		i = j
	}

	return Term{factors: out, coeff: coeff}
}

// Pow raises p to a non-negative integer power by repeated squaring.
// Pow(p, 0) is the identity and Pow(p, 1) is p itself.
//
// Complexity: O(log n) products.
func Pow(p Pauli, n int) (Pauli, error) {
	if n < 0 {
		return Pauli{}, fmt.Errorf("%w: got %d", ErrInvalidExponent, n)
	}
	switch n {
	case 0:
		return Identity(), nil
	case 1:
		return p, nil
	}

	y := Identity()
	x := p
	for n > 1 {
		if n%2 == 0 {
			x = Product(x, x)
			n /= 2
		} else {
			y = Product(x, y)
			x = Product(x, x)
			n = (n - 1) / 2
		}
	}

	return Product(x, y), nil
}

// PowFloat is Pow for exponents that arrive as floating point values.
// Negative, fractional or non-finite exponents yield ErrInvalidExponent.
func PowFloat(p Pauli, exponent float64) (Pauli, error) {
	if math.IsNaN(exponent) || math.IsInf(exponent, 0) || exponent != math.Trunc(exponent) {
		return Pauli{}, fmt.Errorf("%w: got %v", ErrInvalidExponent, exponent)
	}
	if exponent < 0 || exponent > math.MaxInt32 {
		return Pauli{}, fmt.Errorf("%w: got %v", ErrInvalidExponent, exponent)
	}

	return Pow(p, int(exponent))
}

// Close reports whether the squared distance Σ|c|² of a−b is at most tol.
func Close(a, b Pauli, tol float64) bool {
	d := 0.0
	for _, t := range a.Sub(b).terms {
		m := cmplx.Abs(t.coeff)
		d += m * m
	}

	return d <= tol
}

// Add returns p + o.
func (p Pauli) Add(o Pauli) Pauli { return Sum(p, o) }

// Sub returns p − o, computed as p + (−1)·o.
func (p Pauli) Sub(o Pauli) Pauli { return Sum(p, o.Scale(-1)) }

// Mul returns the product p·o.
func (p Pauli) Mul(o Pauli) Pauli { return Product(p, o) }

// Scale returns c·p.
func (p Pauli) Scale(c complex128) Pauli { return Product(Scalar(c), p) }

// Neg returns −p.
func (p Pauli) Neg() Pauli { return p.Scale(-1) }

// AddScalar returns p + c·I.
func (p Pauli) AddScalar(c complex128) Pauli { return Sum(p, Scalar(c)) }

// Pow returns p raised to the n-th power.
func (p Pauli) Pow(n int) (Pauli, error) { return Pow(p, n) }
