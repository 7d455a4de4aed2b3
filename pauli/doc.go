// SPDX-License-Identifier: MIT

// Package pauli implements the Pauli operator algebra and the synthesis of
// circuits for exponentials of Hermitian Pauli sums.
//
// What:
//
//   - Pauli: an immutable, canonically sorted formal sum of Pauli terms,
//     built with NewTerm, Sigma, SX/SY/SZ/SI, Scalar, Zero, Identity or Parse.
//   - Algebra: Sum, Product, Pow (binary exponentiation) and Close, plus the
//     method forms Add, Sub, Mul, Scale, Neg.
//   - Commutation: Commute (parity rule over shared qubits) and
//     CommutingSets (first-fit greedy grouping in term order).
//   - Synthesis: ExpCircuit emits basis changes, a CNOT/SWAP parity ladder,
//     an RZ rotation and the inverse ladder per term, optionally routed over
//     a topology.Graph.
//   - Run: applies an element to a state.State; Evolve applies the ordered
//     product of term exponentials, the exact action of ExpCircuit's output.
//
// Canonical form:
//
//	Factors inside a term are sorted by qubit.Compare and never hold I.
//	Terms are sorted by factor sequence, never repeat a signature and never
//	carry a coefficient with magnitude at or below Tolerance. The empty
//	element is zero; the single empty-factor term with coefficient 1 is the
//	identity. Equal, Compare and Key work on this canonical tuple.
//
// Single-qubit products follow the table
//
//	XY = iZ   YZ = iX   ZX = iY
//	YX = -iZ  ZY = -iX  XZ = -iY
//	XX = YY = ZZ = I
//
// Concurrency:
//
//	Values are never mutated after construction and the product table is
//	read-only, so elements may be shared freely across goroutines.
//
// Errors:
//
//	ErrInvalidOperator - symbol outside {I, X, Y, Z}
//	ErrLengthMismatch  - qubit and symbol counts differ
//	ErrDuplicateQubit  - repeated qubit inside NewTerm
//	ErrInvalidExponent - negative or fractional power
//	ErrNonHermitian    - complex coefficient passed to ExpCircuit
//	ErrParse           - malformed Parse input
package pauli
