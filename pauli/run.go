// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"

	"github.com/katalvlaran/qpauli/circuit"
	"github.com/katalvlaran/qpauli/qubit"
	"github.com/katalvlaran/qpauli/state"
)

// gateFor maps a Pauli operator to the equivalent gate.
var gateFor = map[Op]func(q qubit.Qubit) circuit.Gate{
	X: circuit.X,
	Y: circuit.Y,
	Z: circuit.Z,
}

// Run applies p to s, returning Σ c·P|s⟩. The result is not normalised and
// p need not be unitary. Every qubit of p must belong to s's register.
func (p Pauli) Run(s *state.State) (*state.State, error) {
	out := s.Scale(0)
	for _, t := range p.terms {
		res := s.Scale(t.coeff)
		var err error
		for _, f := range t.factors {
			if res, err = gateFor[f.Op](f.Qubit).Run(res); err != nil {
				return nil, fmt.Errorf("pauli: run %s: %w", f, err)
			}
		}
		if out, err = out.Add(res); err != nil {
			return nil, err
		}
	}

	return out, nil
}
