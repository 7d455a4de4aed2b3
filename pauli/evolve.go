// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qpauli/state"
)

// Evolve applies the ordered product of term exponentials to s:
//
//	exp(-i·alpha·c_n·P_n) ⋯ exp(-i·alpha·c_1·P_1) |s⟩
//
// using exp(-iθP) = cos θ·1 − i·sin θ·P for each Pauli string P. This is the
// exact action of the circuit ExpCircuit builds for the same arguments, and
// equals exp(-i·alpha·h)|s⟩ when the terms of h commute. Scalar terms are
// skipped, so global phase is dropped in the same way.
//
// Errors: ErrNonHermitian, or a state error when a qubit of h is not in s.
func Evolve(h Pauli, alpha float64, s *state.State) (*state.State, error) {
	out := s
	for _, t := range h.terms {
		if math.Abs(imag(t.coeff)) > Tolerance {
			return nil, fmt.Errorf("%w: coefficient %v", ErrNonHermitian, t.coeff)
		}
		if len(t.factors) == 0 {
			continue
		}
		theta := real(t.coeff) * alpha
		str := Pauli{terms: []Term{{factors: t.factors, coeff: 1}}}
		flipped, err := str.Run(out)
		if err != nil {
			return nil, err
		}
		if out, err = out.Scale(complex(math.Cos(theta), 0)).Add(flipped.Scale(complex(0, -math.Sin(theta)))); err != nil {
			return nil, err
		}
	}

	return out, nil
}
