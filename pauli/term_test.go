// SPDX-License-Identifier: MIT

package pauli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qpauli/pauli"
	"github.com/katalvlaran/qpauli/qubit"
)

// TestNewTerm_OrderInvariant builds the same term from two qubit orders.
func TestNewTerm_OrderInvariant(t *testing.T) {
	a, err := pauli.NewTerm(qubit.Ints(2, 0, 1), "ZXY", 0.5)
	require.NoError(t, err)
	b, err := pauli.NewTerm(qubit.Ints(1, 2, 0), "YZX", 0.5)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	require.Equal(t, 1, a.Len())
	term := a.Terms()[0]
	assert.Equal(t, qubit.Ints(0, 1, 2), term.Qubits())
	assert.Equal(t, "XYZ", term.Operators())
	assert.Equal(t, complex(0.5, 0), term.Coefficient())
}

// TestNewTerm_DropsIdentity removes I factors from the stored term.
func TestNewTerm_DropsIdentity(t *testing.T) {
	p, err := pauli.NewTerm(qubit.Ints(0, 1, 2), "XIZ", 1)
	require.NoError(t, err)
	assert.Equal(t, qubit.Ints(0, 2), p.Qubits())

	allI, err := pauli.NewTerm(qubit.Ints(0, 1), "II", 3)
	require.NoError(t, err)
	assert.True(t, allI.IsScalar())
	assert.True(t, allI.Equal(pauli.Scalar(3)))
}

// TestNewTerm_Errors covers every construction failure.
func TestNewTerm_Errors(t *testing.T) {
	_, err := pauli.NewTerm(qubit.Ints(0), "A", 1)
	assert.ErrorIs(t, err, pauli.ErrInvalidOperator)

	_, err = pauli.NewTerm(qubit.Ints(0, 1), "X", 1)
	assert.ErrorIs(t, err, pauli.ErrLengthMismatch)

	_, err = pauli.NewTerm(qubit.Ints(0, 0), "XZ", 1)
	assert.ErrorIs(t, err, pauli.ErrDuplicateQubit)

	_, err = pauli.Sigma(0, pauli.Op('Q'))
	assert.ErrorIs(t, err, pauli.ErrInvalidOperator)

	_, err = pauli.NewTerm([]qubit.Qubit{[]int{1}}, "X", 1)
	assert.ErrorIs(t, err, qubit.ErrInvalidQubit)
}

// TestNewTerm_ZeroCoefficient collapses to the zero element.
func TestNewTerm_ZeroCoefficient(t *testing.T) {
	p, err := pauli.NewTerm(qubit.Ints(0), "X", 0)
	require.NoError(t, err)
	assert.True(t, p.IsZero())
	assert.True(t, p.Equal(pauli.Zero()))
}

// TestSpecialElements checks the predicates of zero, identity and scalars.
func TestSpecialElements(t *testing.T) {
	assert.True(t, pauli.Zero().IsZero())
	assert.True(t, pauli.Zero().IsScalar())
	assert.False(t, pauli.Zero().IsIdentity())

	assert.True(t, pauli.Identity().IsIdentity())
	assert.True(t, pauli.Identity().IsScalar())
	assert.Empty(t, pauli.Identity().Qubits())

	assert.True(t, pauli.SI(7).IsIdentity())
	assert.True(t, pauli.SI(7, 2).Equal(pauli.Scalar(2)))
	assert.False(t, pauli.SX(0).IsScalar())

	var zero pauli.Pauli
	assert.True(t, zero.IsZero(), "zero value is the zero element")
}

// TestMixedLabels sorts integer labels before string labels.
func TestMixedLabels(t *testing.T) {
	p := pauli.SX("anc").Mul(pauli.SZ(3))
	assert.Equal(t, []qubit.Qubit{3, "anc"}, p.Qubits())
	assert.Equal(t, "+ (1+0i) Z(3) X(anc)", p.String())
}

// TestCompare gives a total order consistent with Equal.
func TestCompare(t *testing.T) {
	a := pauli.SX(0)
	b := pauli.SY(0)
	c := pauli.SX(1)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 0, a.Compare(pauli.SX(0)))
	assert.Equal(t, -1, pauli.Zero().Compare(a))
	assert.NotEqual(t, 0, pauli.SX(0, 2).Compare(pauli.SX(0, 3)))
}

// TestKey_AsMapKey deduplicates structurally equal elements.
func TestKey_AsMapKey(t *testing.T) {
	seen := map[string]pauli.Pauli{}
	for _, p := range []pauli.Pauli{
		pauli.SX(0).Mul(pauli.SZ(1)),
		pauli.SZ(1).Mul(pauli.SX(0)),
		pauli.SZ(1),
	} {
		seen[p.Key()] = p
	}
	assert.Len(t, seen, 2)
	assert.NotEqual(t, pauli.SX(1).Key(), pauli.SX("1").Key())
}

// TestString renders terms with their coefficients.
func TestString(t *testing.T) {
	assert.Equal(t, "0", pauli.Zero().String())
	assert.Equal(t, "+ (1+0i)", pauli.Identity().String())
	p := pauli.SX(0).Mul(pauli.SZ(1)).Add(pauli.SY(2, -0.5))
	assert.Equal(t, "+ (1+0i) X(0) Z(1) + (-0.5+0i) Y(2)", p.String())
}

// TestIsHermitian checks the real-coefficient predicate.
func TestIsHermitian(t *testing.T) {
	assert.True(t, pauli.SX(0, 2).Add(pauli.SZ(1)).IsHermitian())
	assert.False(t, pauli.SX(0, 1i).IsHermitian())
}
