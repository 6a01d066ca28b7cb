// Package tour builds approximate traveling-salesman tours on complete
// weighted graphs.
//
// GreedyCycle implements nearest-insertion: starting from a single
// vertex, each round finds the lightest edge between any tour vertex
// and any vertex still outside the tour, and splices the outside
// vertex in just before its connection point. Under the triangle
// inequality the resulting closed tour weighs at most twice the
// optimum.
package tour

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matchgraph/core"
)

// ErrUnsuitableGraph is returned when the input graph is nil, directed,
// unweighted, or not simple.
var ErrUnsuitableGraph = errors.New("tour: graph must be undirected, simple, and weighted")

// ErrIncompleteGraph is returned when the graph does not carry an edge
// for every vertex pair.
var ErrIncompleteGraph = errors.New("tour: not a complete graph")

// GreedyCycle returns an approximate minimum Hamiltonian cycle of g as
// a vertex sequence plus the closed-tour weight (the cost of visiting
// the sequence in order and returning to its first vertex).
//
// Contracts: g must be a complete simple undirected weighted graph.
// An empty graph yields an empty tour of weight 0; a single vertex
// yields a one-element tour of weight 0.
//
// Determinism: candidate vertices are scanned in sorted ID order, so
// repeated calls on an unmodified graph return the same tour.
// Complexity: O(V³) time, O(V) extra memory.
func GreedyCycle(g *core.Graph) ([]string, float64, error) {
	if err := checkSuitable(g); err != nil {
		return nil, 0, err
	}

	remaining := g.Vertices()
	n := len(remaining)
	if g.EdgeCount() != n*(n-1)/2 {
		return nil, 0, fmt.Errorf("%w: %d edges for %d vertices", ErrIncompleteGraph, g.EdgeCount(), n)
	}
	if n == 0 {
		return []string{}, 0, nil
	}

	// Seed with the smallest vertex ID, then grow one vertex per round.
	tour := make([]string, 0, n)
	tour = append(tour, remaining[0])
	remaining = remaining[1:]

	for len(remaining) > 0 {
		var (
			bestWeight float64
			bestOut    int // index into remaining
			bestAt     int // insertion point in tour
			first      = true
		)
		for i, inTour := range tour {
			for j, outside := range remaining {
				e, ok := g.EdgeBetween(inTour, outside)
				if !ok {
					return nil, 0, fmt.Errorf("%w: missing edge %q–%q", ErrIncompleteGraph, inTour, outside)
				}
				if w := float64(e.Weight); first || w < bestWeight {
					first = false
					bestWeight = w
					bestOut = j
					bestAt = i
				}
			}
		}

		tour = append(tour, "")
		copy(tour[bestAt+1:], tour[bestAt:])
		tour[bestAt] = remaining[bestOut]
		remaining = append(remaining[:bestOut], remaining[bestOut+1:]...)
	}

	return tour, cycleWeight(g, tour), nil
}

// cycleWeight sums the closed tour: consecutive legs plus the edge
// back from the last vertex to the first.
func cycleWeight(g *core.Graph, tour []string) float64 {
	if len(tour) < 2 {
		return 0
	}
	var total float64
	for i := range tour {
		next := tour[(i+1)%len(tour)]
		if e, ok := g.EdgeBetween(tour[i], next); ok {
			total += float64(e.Weight)
		}
	}

	return total
}

// checkSuitable enforces the undirected/simple/weighted contract on
// edge content, not only on construction flags.
func checkSuitable(g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrUnsuitableGraph)
	}
	if g.Directed() || g.HasDirectedEdges() {
		return fmt.Errorf("%w: graph has directed edges", ErrUnsuitableGraph)
	}
	if !g.Weighted() {
		return fmt.Errorf("%w: graph is not weighted", ErrUnsuitableGraph)
	}

	type pair struct{ a, b string }
	pairs := make(map[pair]struct{}, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			return fmt.Errorf("%w: self-loop on %q", ErrUnsuitableGraph, e.From)
		}
		p := pair{a: e.From, b: e.To}
		if p.b < p.a {
			p.a, p.b = p.b, p.a
		}
		if _, dup := pairs[p]; dup {
			return fmt.Errorf("%w: parallel edge %q–%q", ErrUnsuitableGraph, p.a, p.b)
		}
		pairs[p] = struct{}{}
	}

	return nil
}
