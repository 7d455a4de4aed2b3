// SPDX-License-Identifier: MIT

package state

import (
	"errors"
	"fmt"
	"math/cmplx"
	"slices"

	"github.com/katalvlaran/qpauli/qubit"
)

// Sentinel errors for state construction and evolution.
var (
	ErrDuplicateQubit   = errors.New("state: duplicate qubit in register")
	ErrQubitNotFound    = errors.New("state: qubit not in register")
	ErrDimension        = errors.New("state: dimension mismatch")
	ErrRegisterMismatch = errors.New("state: registers differ")
)

// MaxQubits bounds the register size of a dense state vector.
const MaxQubits = 30

// Matrix1 is a single-qubit operator in the {|0⟩, |1⟩} basis.
type Matrix1 = [2][2]complex128

// Matrix2 is a two-qubit operator in the {|00⟩, |01⟩, |10⟩, |11⟩} basis,
// where the first qubit is the most significant.
type Matrix2 = [4][4]complex128

// State is a state vector over an ordered qubit register.
type State struct {
	qubits []qubit.Qubit
	index  map[qubit.Qubit]int
	amps   []complex128
}

// New returns |0…0⟩ over the given register.
func New(qubits []qubit.Qubit) (*State, error) {
	bits := make([]int, len(qubits))

	return Basis(qubits, bits)
}

// Basis returns the computational basis state with the given bit values.
func Basis(qubits []qubit.Qubit, bits []int) (*State, error) {
	if len(bits) != len(qubits) {
		return nil, fmt.Errorf("%w: %d bits for %d qubits", ErrDimension, len(bits), len(qubits))
	}
	s, err := zero(qubits)
	if err != nil {
		return nil, err
	}
	pos := 0
	for _, b := range bits {
		if b != 0 && b != 1 {
			return nil, fmt.Errorf("%w: bit value %d", ErrDimension, b)
		}
		pos = pos<<1 | b
	}
	s.amps[pos] = 1

	return s, nil
}

// FromAmplitudes wraps a copy of amps as a state over qubits.
func FromAmplitudes(qubits []qubit.Qubit, amps []complex128) (*State, error) {
	s, err := zero(qubits)
	if err != nil {
		return nil, err
	}
	if len(amps) != len(s.amps) {
		return nil, fmt.Errorf("%w: %d amplitudes for %d qubits", ErrDimension, len(amps), len(qubits))
	}
	copy(s.amps, amps)

	return s, nil
}

// zero allocates an all-zero vector after validating the register.
func zero(qubits []qubit.Qubit) (*State, error) {
	if len(qubits) > MaxQubits {
		return nil, fmt.Errorf("%w: %d qubits exceeds %d", ErrDimension, len(qubits), MaxQubits)
	}
	index := make(map[qubit.Qubit]int, len(qubits))
	for i, q := range qubits {
		if err := qubit.Validate(q); err != nil {
			return nil, err
		}
		if _, dup := index[q]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateQubit, q)
		}
		index[q] = i
	}

	return &State{
		qubits: slices.Clone(qubits),
		index:  index,
		amps:   make([]complex128, 1<<len(qubits)),
	}, nil
}

// Qubits returns the register in order.
func (s *State) Qubits() []qubit.Qubit { return slices.Clone(s.qubits) }

// Amplitudes returns a copy of the amplitude vector.
func (s *State) Amplitudes() []complex128 { return slices.Clone(s.amps) }

// Amplitude returns ⟨bits|ψ⟩.
func (s *State) Amplitude(bits ...int) (complex128, error) {
	if len(bits) != len(s.qubits) {
		return 0, fmt.Errorf("%w: %d bits for %d qubits", ErrDimension, len(bits), len(s.qubits))
	}
	pos := 0
	for _, b := range bits {
		pos = pos<<1 | (b & 1)
	}

	return s.amps[pos], nil
}

// Norm returns ⟨ψ|ψ⟩.
func (s *State) Norm() float64 {
	n := 0.0
	for _, a := range s.amps {
		n += real(a)*real(a) + imag(a)*imag(a)
	}

	return n
}

// mask returns the amplitude-index bit of qubit q.
func (s *State) mask(q qubit.Qubit) (int, error) {
	i, ok := s.index[q]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrQubitNotFound, q)
	}

	return 1 << (len(s.qubits) - 1 - i), nil
}

func (s *State) clone() *State {
	return &State{qubits: s.qubits, index: s.index, amps: slices.Clone(s.amps)}
}

// Apply1 returns m applied to qubit q.
func (s *State) Apply1(q qubit.Qubit, m Matrix1) (*State, error) {
	bit, err := s.mask(q)
	if err != nil {
		return nil, err
	}
	out := s.clone()
	for i := range s.amps {
		if i&bit != 0 {
			continue
		}
		a0, a1 := s.amps[i], s.amps[i|bit]
		out.amps[i] = m[0][0]*a0 + m[0][1]*a1
		out.amps[i|bit] = m[1][0]*a0 + m[1][1]*a1
	}

	return out, nil
}

// Apply2 returns m applied to the ordered qubit pair (q0, q1).
func (s *State) Apply2(q0, q1 qubit.Qubit, m Matrix2) (*State, error) {
	b0, err := s.mask(q0)
	if err != nil {
		return nil, err
	}
	b1, err := s.mask(q1)
	if err != nil {
		return nil, err
	}
	if b0 == b1 {
		return nil, fmt.Errorf("%w: two-qubit operator on a single qubit %v", ErrDimension, q0)
	}
	out := s.clone()
	for i := range s.amps {
		if i&(b0|b1) != 0 {
			continue
		}
		idx := [4]int{i, i | b1, i | b0, i | b0 | b1}
		var in [4]complex128
		for k, p := range idx {
			in[k] = s.amps[p]
		}
		for r, p := range idx {
			var acc complex128
			for c := 0; c < 4; c++ {
				acc += m[r][c] * in[c]
			}
			out.amps[p] = acc
		}
	}

	return out, nil
}

// Scale returns c·ψ.
func (s *State) Scale(c complex128) *State {
	out := s.clone()
	for i := range out.amps {
		out.amps[i] *= c
	}

	return out
}

// Add returns ψ + φ. Both states must share the same register order.
func (s *State) Add(o *State) (*State, error) {
	if err := s.sameRegister(o); err != nil {
		return nil, err
	}
	out := s.clone()
	for i := range out.amps {
		out.amps[i] += o.amps[i]
	}

	return out, nil
}

// Inner returns ⟨ψ|φ⟩.
func (s *State) Inner(o *State) (complex128, error) {
	if err := s.sameRegister(o); err != nil {
		return 0, err
	}
	var acc complex128
	for i := range s.amps {
		acc += cmplx.Conj(s.amps[i]) * o.amps[i]
	}

	return acc, nil
}

func (s *State) sameRegister(o *State) error {
	if len(s.qubits) != len(o.qubits) {
		return ErrRegisterMismatch
	}
	for i := range s.qubits {
		if qubit.Compare(s.qubits[i], o.qubits[i]) != 0 {
			return fmt.Errorf("%w: position %d holds %v and %v", ErrRegisterMismatch, i, s.qubits[i], o.qubits[i])
		}
	}

	return nil
}

// Close reports whether every amplitude of a and b differs by at most tol.
// States over different registers are never close.
func Close(a, b *State, tol float64) bool {
	if a.sameRegister(b) != nil {
		return false
	}
	for i := range a.amps {
		if cmplx.Abs(a.amps[i]-b.amps[i]) > tol {
			return false
		}
	}

	return true
}
