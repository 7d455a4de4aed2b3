// SPDX-License-Identifier: MIT

package pauli

import "errors"

// Sentinel errors for Pauli algebra operations.
var (
	// ErrInvalidOperator indicates an operator symbol outside {I, X, Y, Z}.
	ErrInvalidOperator = errors.New("pauli: valid Pauli operators are I, X, Y and Z")

	// ErrLengthMismatch indicates a different number of qubits and operator symbols.
	ErrLengthMismatch = errors.New("pauli: qubit and operator counts differ")

	// ErrDuplicateQubit indicates two non-identity factors on the same qubit in one term.
	ErrDuplicateQubit = errors.New("pauli: qubit appears more than once in a term")

	// ErrInvalidExponent indicates a negative or non-integral power.
	ErrInvalidExponent = errors.New("pauli: exponent must be a non-negative integer")

	// ErrNonHermitian indicates a term coefficient with a non-negligible imaginary part.
	ErrNonHermitian = errors.New("pauli: term coefficients must be real")

	// ErrParse indicates malformed textual input to Parse.
	ErrParse = errors.New("pauli: cannot parse expression")
)
