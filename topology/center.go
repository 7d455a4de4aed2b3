// SPDX-License-Identifier: MIT

package topology

import "github.com/katalvlaran/qpauli/qubit"

// hops returns breadth-first hop distances from source over out-edges.
func (g *Graph) hops(source qubit.Qubit) (map[qubit.Qubit]int, error) {
	depth := map[qubit.Qubit]int{source: 0}
	queue := []qubit.Qubit{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, n := range nbrs {
			if _, seen := depth[n]; !seen {
				depth[n] = depth[cur] + 1
				queue = append(queue, n)
			}
		}
	}

	return depth, nil
}

// Eccentricity returns, for every vertex, the largest hop distance to any other
// vertex of g's undirected view. ErrDisconnected if some pair is unreachable.
func (g *Graph) Eccentricity() (map[qubit.Qubit]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	u := g.Undirected()
	vertices := u.Vertices()
	if len(vertices) == 0 {
		return nil, ErrEmptyGraph
	}
	ecc := make(map[qubit.Qubit]int, len(vertices))
	for _, v := range vertices {
		depth, err := u.hops(v)
		if err != nil {
			return nil, err
		}
		if len(depth) != len(vertices) {
			return nil, ErrDisconnected
		}
		m := 0
		for _, d := range depth {
			m = max(m, d)
		}
		ecc[v] = m
	}

	return ecc, nil
}

// Center returns the vertices of minimum eccentricity in canonical order.
func (g *Graph) Center() ([]qubit.Qubit, error) {
	ecc, err := g.Eccentricity()
	if err != nil {
		return nil, err
	}
	best := -1
	for _, e := range ecc {
		if best < 0 || e < best {
			best = e
		}
	}
	var out []qubit.Qubit
	for _, v := range g.Vertices() {
		if ecc[v] == best {
			out = append(out, v)
		}
	}

	return out, nil
}
