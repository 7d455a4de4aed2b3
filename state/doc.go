// SPDX-License-Identifier: MIT

// Package state provides a dense state vector over an ordered list of qubits.
//
// The first qubit is the most significant bit of the amplitude index, so the
// basis state |q0 q1 … qn-1⟩ = |b0 b1 … bn-1⟩ lives at index Σ bk·2^(n-1-k).
//
// Operations never mutate their receiver: Apply1, Apply2, Scale and Add all
// return a fresh State, which makes values safe to share between goroutines.
//
// Errors:
//
//	ErrDuplicateQubit - a qubit label appears twice in the register.
//	ErrQubitNotFound  - a gate addresses a qubit outside the register.
//	ErrDimension      - amplitude count or bit string does not match the register,
//	                    or the register exceeds MaxQubits.
//	ErrRegisterMismatch - binary operation on states over different registers.
package state
