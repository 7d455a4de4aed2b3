// SPDX-License-Identifier: MIT

// Package circuit provides the gate set and circuit container used by the
// Pauli exponential synthesizer.
//
// What:
//
//   - Gate: a closed set of fixed and parametrised gates
//     (I, X, Y, Z, V, V†, √Y, √Y†, RZ, CNOT, SWAP) with exact unitaries.
//   - Circuit: an ordered gate list supporting concatenation (Add, Extend),
//     adjoint (H), simulation on a state.State (Run) and OpenQASM 2.0 export.
//
// Basis changes:
//
//	√Y† conjugates Z into X (√Y·Z·√Y† = X) and V = √X conjugates Z into Y
//	(V†·Z·V = Y). A circuit [B, RZ(2θ), B†] therefore implements exp(-iθP) for
//	P = B†·Z·B, which is how X and Y factors are rotated onto the Z axis.
//
// Errors:
//
//	ErrUnknownGate - QASM export met a gate kind with no OpenQASM spelling.
//	state errors   - propagated unchanged from Run.
package circuit
