// SPDX-License-Identifier: MIT

package topology

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qpauli/qubit"
)

// ErrLayout indicates a malformed device layout string.
var ErrLayout = errors.New("topology: bad layout")

const directedPrefix = "directed:"

// ParseLayout builds a device graph from a compact description:
//
//	line:0,1,2,3        path in the given order
//	ring:0,1,2,3        closed path
//	star:0:1,2,3        center, then leaves
//	grid:3x4            rows x cols, qubits r*cols + c
//	0-1,1-2:2.5,2-a     explicit couplers with optional weights
//
// A "directed:" prefix orients every edge as written, which turns a line or
// star into an arborescence. Numeric labels become ints, anything else stays a
// string. An empty description yields (nil, nil): no device constraint.
func ParseLayout(layout string) (*Graph, error) {
	layout = strings.TrimSpace(layout)
	if layout == "" {
		return nil, nil
	}
	var opts []GraphOption
	if rest, ok := strings.CutPrefix(layout, directedPrefix); ok {
		opts = append(opts, WithDirected(true))
		layout = rest
	}

	kind, body, found := strings.Cut(layout, ":")
	if !found {
		return parseEdges(layout, opts)
	}
	switch kind {
	case "line":
		return Line(parseLabels(body), opts...)
	case "ring":
		return Ring(parseLabels(body), opts...)
	case "star":
		center, leaves, ok := strings.Cut(body, ":")
		if !ok {
			return nil, fmt.Errorf("%w: star needs center:leaves, got %q", ErrLayout, body)
		}
		return Star(parseLabel(center), parseLabels(leaves), opts...)
	case "grid":
		r, c, ok := strings.Cut(strings.ToLower(body), "x")
		if !ok {
			return nil, fmt.Errorf("%w: grid needs RxC, got %q", ErrLayout, body)
		}
		rows, err1 := strconv.Atoi(strings.TrimSpace(r))
		cols, err2 := strconv.Atoi(strings.TrimSpace(c))
		if err := errors.Join(err1, err2); err != nil {
			return nil, fmt.Errorf("%w: grid %q: %v", ErrLayout, body, err)
		}
		return Grid(rows, cols, opts...)
	}

	// "a-b:1.5" has a colon but no known kind: treat as an edge list.
	return parseEdges(layout, opts)
}

// parseEdges reads "a-b[:w],c-d[:w],...".
func parseEdges(layout string, opts []GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for _, item := range strings.Split(layout, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		pair, ws, hasWeight := strings.Cut(item, ":")
		a, b, ok := strings.Cut(pair, "-")
		if !ok || strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
			return nil, fmt.Errorf("%w: edge %q", ErrLayout, item)
		}
		w := DefaultWeight
		if hasWeight {
			var err error
			if w, err = strconv.ParseFloat(strings.TrimSpace(ws), 64); err != nil {
				return nil, fmt.Errorf("%w: weight in %q", ErrLayout, item)
			}
		}
		if err := g.AddEdge(parseLabel(a), parseLabel(b), w); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLayout, err)
		}
	}
	if g.VertexCount() == 0 {
		return nil, fmt.Errorf("%w: no couplers in %q", ErrLayout, layout)
	}

	return g, nil
}

func parseLabels(s string) []qubit.Qubit {
	var out []qubit.Qubit
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, parseLabel(f))
		}
	}

	return out
}

func parseLabel(s string) qubit.Qubit {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}

	return s
}
