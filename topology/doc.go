// SPDX-License-Identifier: MIT

// Package topology models qubit connectivity (device coupling) graphs and the
// tree algorithms the Pauli exponential synthesizer routes CNOT ladders over.
//
// What:
//
//   - Graph: a thread-safe, weighted, directed or undirected graph whose
//     vertices are qubit labels. Self-loops and parallel edges are rejected.
//   - Builders: Line, Ring, Star and Grid device layouts, and ParseLayout for
//     compact descriptions such as "grid:3x3" or "0-1,1-2".
//   - ShortestPaths / ShortestPath: Dijkstra over non-negative weights.
//   - MinimumSpanningTree: Kruskal with union-find.
//   - SteinerTree: Kou–Markowsky–Berman 2-approximation of the minimum tree
//     spanning a terminal set (metric closure → MST → path expansion → MST →
//     pruning of non-terminal leaves).
//   - Center: vertices of minimum eccentricity (hop distance).
//   - Orient: depth-first orientation of a tree away from a root (arborescence).
//   - IsArborescence, Root, Predecessor, TopologicalSort on directed trees.
//
// Why:
//
//	A parity ladder for exp(-iθ Z⊗…⊗Z) needs a tree over the active qubits in
//	which every CNOT acts on a physical coupler. The Steiner tree supplies that
//	tree, its center keeps the ladder shallow, and a reverse topological order
//	walks it leaves-first.
//
// Determinism:
//
//	Every traversal visits vertices and neighbors in canonical qubit order
//	(qubit.Compare), so results are reproducible across runs.
//
// Complexity:
//
//   - ShortestPaths:       O((V + E) log V)
//   - MinimumSpanningTree: O(E log E)
//   - SteinerTree:         O(T·(V + E) log V + T² log T) for T terminals
//   - Center:              O(V·(V + E))
//   - Orient, TopologicalSort, IsArborescence: O(V + E)
//
// Errors:
//
//	ErrGraphNil, ErrVertexNotFound, ErrTerminalNotFound, ErrLoopNotAllowed,
//	ErrMultiEdgeNotAllowed, ErrBadWeight, ErrDisconnected, ErrEmptyGraph,
//	ErrNotArborescence, ErrCycleDetected, ErrUndirected, ErrTooFewVertices,
//	ErrLayout.
package topology
