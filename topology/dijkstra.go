// SPDX-License-Identifier: MIT

package topology

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/qpauli/qubit"
)

// item is a heap entry (vertex, tentative distance).
type item struct {
	q    qubit.Qubit
	dist float64
}

// distQueue is a min-heap on distance with canonical qubit order as tie-break.
type distQueue []item

func (pq distQueue) Len() int { return len(pq) }
func (pq distQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return qubit.Less(pq[i].q, pq[j].q)
}
func (pq distQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distQueue) Push(x any)   { *pq = append(*pq, x.(item)) }
func (pq *distQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// ShortestPaths runs Dijkstra from source following out-edges.
//
// Returns dist for every reachable vertex and prev, where prev[v] is the
// predecessor of v on a shortest path (source has no entry). Stale heap
// entries are skipped (lazy decrease-key).
//
// Complexity: O((V + E) log V).
func (g *Graph) ShortestPaths(source qubit.Qubit) (map[qubit.Qubit]float64, map[qubit.Qubit]qubit.Qubit, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	dist := map[qubit.Qubit]float64{source: 0}
	prev := make(map[qubit.Qubit]qubit.Qubit)
	done := make(map[qubit.Qubit]bool)
	pq := &distQueue{{q: source, dist: 0}}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item)
		if done[cur.q] {
			continue
		}
		done[cur.q] = true

		nbrs, err := g.Neighbors(cur.q)
		if err != nil {
			return nil, nil, err
		}
		for _, n := range nbrs {
			w, _ := g.Weight(cur.q, n)
			nd := cur.dist + w
			if d, seen := dist[n]; !seen || nd < d {
				dist[n] = nd
				prev[n] = cur.q
				heap.Push(pq, item{q: n, dist: nd})
			}
		}
	}

	return dist, prev, nil
}

// ShortestPath returns a minimum-weight path from → … → to and its weight.
// ErrDisconnected is returned when to is unreachable.
func (g *Graph) ShortestPath(from, to qubit.Qubit) ([]qubit.Qubit, float64, error) {
	dist, prev, err := g.ShortestPaths(from)
	if err != nil {
		return nil, 0, err
	}
	if !g.HasVertex(to) {
		return nil, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, to)
	}
	d, ok := dist[to]
	if !ok {
		return nil, 0, fmt.Errorf("%w: no path %v→%v", ErrDisconnected, from, to)
	}

	return walkBack(prev, from, to), d, nil
}

// walkBack rebuilds the path from → to out of a predecessor map.
func walkBack(prev map[qubit.Qubit]qubit.Qubit, from, to qubit.Qubit) []qubit.Qubit {
	path := []qubit.Qubit{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}
