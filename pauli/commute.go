// SPDX-License-Identifier: MIT

package pauli

import "github.com/katalvlaran/qpauli/qubit"

// termsCommute applies the parity rule: walking both factor streams by qubit,
// count qubits where both terms act with different operators. The terms
// commute iff that count is even.
func termsCommute(a, b Term) bool {
	differing := 0
	i, j := 0, 0
	for i < len(a.factors) && j < len(b.factors) {
		switch c := qubit.Compare(a.factors[i].Qubit, b.factors[j].Qubit); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			if a.factors[i].Op != b.factors[j].Op {
				differing++
			}
			i++
			j++
		}
	}

	return differing%2 == 0
}

// Commute reports whether a·b == b·a, checking every pair of terms drawn
// one from each element.
//
// Complexity: O(|a|·|b|·w) for terms of weight at most w.
func Commute(a, b Pauli) bool {
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			if !termsCommute(ta, tb) {
				return false
			}
		}
	}

	return true
}

// CommutingSets gathers the terms of p into groups of mutually commuting terms.
//
// Terms are taken in p's order. Each term joins the first existing group whose
// accumulated value it commutes with, otherwise it opens a new group. The
// result is first-fit greedy: the number of groups depends on term order and
// is not minimised. Elements with fewer than two terms form a single group.
func CommutingSets(p Pauli) []Pauli {
	if len(p.terms) < 2 {
		return []Pauli{p}
	}

	var groups []Pauli
	for _, t := range p.terms {
		single := Pauli{terms: []Term{t}}
		assigned := false
		for i, g := range groups {
			if Commute(g, single) {
				groups[i] = Sum(g, single)
				assigned = true
				break
			}
		}
		if !assigned {
			groups = append(groups, single)
		}
	}

	return groups
}
