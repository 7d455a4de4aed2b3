// SPDX-License-Identifier: MIT

// Package qpauli is an in-memory Pauli algebra engine with circuit synthesis
// for time evolution on constrained qubit devices.
//
// What is qpauli?
//
//	A small, thread-safe library that brings together:
//		• Qubit labels: any comparable value, totally ordered across kinds
//		• Pauli algebra: sums, products, powers, commutation and grouping
//		• Parsing: "0.5 X0 Z1 - Y(anc)" text into canonical operators
//		• State vectors: a reference simulator for checking circuits
//		• Circuits: single-qubit basis changes, RZ, CNOT, SWAP, QASM export
//		• Topology: device coupling graphs, Steiner trees, orientation
//
// Under the hood, everything is organized under these subpackages:
//
//	qubit/     label validation, ordering and helpers
//	pauli/     Term and Pauli values, algebra, Parse, ExpCircuit, Evolve
//	state/     dense complex state vectors over a labelled register
//	circuit/   gates, Circuit, inverse and QASM rendering
//	topology/  coupling graphs, shortest paths, Steiner trees, arborescences
//
// Quick example:
//
//	h := pauli.MustParse("Z0 Z1")
//	c, _ := pauli.ExpCircuit(h, 0.25)
//	// CNOT 1 0
//	// RZ(0.5) 0
//	// CNOT 1 0
//
// The cmd/pauliexp tool wraps the same pipeline for the command line:
//
//	go install github.com/katalvlaran/qpauli/cmd/pauliexp@latest
package qpauli
