// SPDX-License-Identifier: MIT

package pauli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpauli/pauli"
	"github.com/katalvlaran/qpauli/qubit"
	"github.com/katalvlaran/qpauli/state"
)

func basis(t *testing.T, qs []qubit.Qubit, bits ...int) *state.State {
	t.Helper()
	s, err := state.Basis(qs, bits)
	require.NoError(t, err)

	return s
}

// TestRun_SingleOperators applies X, Y and Z to basis states.
func TestRun_SingleOperators(t *testing.T) {
	reg := qubit.Ints(0)
	zero, one := basis(t, reg, 0), basis(t, reg, 1)

	got, err := pauli.SX(0).Run(zero)
	require.NoError(t, err)
	assert.True(t, state.Close(got, one, 1e-12))

	got, err = pauli.SY(0).Run(zero)
	require.NoError(t, err)
	assert.True(t, state.Close(got, one.Scale(1i), 1e-12))

	got, err = pauli.SZ(0).Run(one)
	require.NoError(t, err)
	assert.True(t, state.Close(got, one.Scale(-1), 1e-12))
}

// TestRun_Sum applies a weighted sum and leaves the input untouched.
func TestRun_Sum(t *testing.T) {
	reg := qubit.Ints(0, 1)
	in := basis(t, reg, 0, 0)
	p := pauli.MustParse("2 X0 + 0.5 Z1 + 3")

	got, err := p.Run(in)
	require.NoError(t, err)

	a00, _ := got.Amplitude(0, 0)
	a10, _ := got.Amplitude(1, 0)
	assert.Equal(t, complex(3.5, 0), a00)
	assert.Equal(t, complex(2, 0), a10)

	orig, _ := in.Amplitude(0, 0)
	assert.Equal(t, complex(1, 0), orig)
}

// TestRun_MatchesProduct checks (a·b)ψ == a(bψ).
func TestRun_MatchesProduct(t *testing.T) {
	reg := qubit.Ints(0, 1, 2)
	in := basis(t, reg, 1, 0, 1)
	a := pauli.MustParse("X0 Y1 + 0.5 Z2")
	b := pauli.MustParse("Y0 - Z1 X2")

	bPsi, err := b.Run(in)
	require.NoError(t, err)
	want, err := a.Run(bPsi)
	require.NoError(t, err)
	got, err := a.Mul(b).Run(in)
	require.NoError(t, err)
	assert.True(t, state.Close(got, want, 1e-12))
}

// TestRun_UnknownQubit reports qubits outside the register.
func TestRun_UnknownQubit(t *testing.T) {
	_, err := pauli.SX(5).Run(basis(t, qubit.Ints(0), 0))
	assert.ErrorIs(t, err, state.ErrQubitNotFound)
}

// TestRun_Zero gives the zero vector.
func TestRun_Zero(t *testing.T) {
	got, err := pauli.Zero().Run(basis(t, qubit.Ints(0), 1))
	require.NoError(t, err)
	assert.Zero(t, got.Norm())
}
