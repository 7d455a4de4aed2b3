// SPDX-License-Identifier: MIT

// Package qubit defines qubit labels and their canonical ordering.
//
// What:
//
//   - Qubit: any comparable value used as a qubit label (0, 1, "anc", ...).
//   - Compare: a total order over labels of mixed types. Labels are ordered
//     first by their Go type name, then naturally within a type
//     (integers and floats numerically, strings lexically, false < true).
//   - Sort, Sorted, Dedup: helpers built on Compare.
//
// Why:
//
//	Every canonical structure in this module (Pauli terms, circuits, device
//	graphs) sorts its qubits with Compare, so two values built in different
//	orders render, compare and hash identically.
//
// Complexity:
//
//   - Compare: O(1) for builtin kinds, O(size) for strings and composite labels.
//   - Sort:    O(n log n).
package qubit
