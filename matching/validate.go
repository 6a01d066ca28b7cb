// Package matching - precondition checks shared by both matchers.
//
// Errors are validated once, at call start, and are fatal: there is no
// retry and no partial result. Past validation both algorithms are
// total. Helpers here are deterministic and side-effect free; they
// return only the sentinels from types.go, wrapped with context.

package matching

import (
	"fmt"

	"github.com/katalvlaran/matchgraph/core"
	"github.com/katalvlaran/matchgraph/matrix"
)

// buildCostMatrix validates the complete-bipartite contract and
// materializes the n×n cost matrix cost[i][j] = weight(left[i], right[j]).
//
// Contract:
//   - g non-nil and weighted; |left| == |right| == n ≥ 1;
//   - IDs across both partitions unique and non-empty;
//   - g carries exactly n² edges, one per (left[i], right[j]) cell;
//   - every weight non-negative.
//
// Complexity: O(n²) time, O(n²) space for the returned matrix.
func buildCostMatrix(g *core.Graph, left, right []string) (*matrix.Dense, error) {
	// Stage 1: shape.
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidInput)
	}
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: |S|=%d, |T|=%d", ErrInvalidInput, len(left), len(right))
	}
	n := len(left)
	if !g.Weighted() {
		return nil, fmt.Errorf("%w: graph is not weighted", ErrInvalidInput)
	}
	if g.EdgeCount() != n*n {
		return nil, fmt.Errorf("%w: %d edges, want %d", ErrInvalidInput, g.EdgeCount(), n*n)
	}

	// Stage 2: partition IDs unique and non-empty.
	seen := make(map[string]struct{}, 2*n)
	for _, id := range append(append(make([]string, 0, 2*n), left...), right...) {
		if id == "" {
			return nil, fmt.Errorf("%w: empty vertex ID", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate vertex ID %q", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	// Stage 3: materialize every cell; a missing cell or a negative
	// weight breaks the complete-bipartite precondition.
	costs, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e, ok := g.EdgeBetween(left[i], right[j])
			if !ok {
				return nil, fmt.Errorf("%w: missing edge %q–%q", ErrInvalidInput, left[i], right[j])
			}
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: negative weight on %q–%q", ErrInvalidInput, left[i], right[j])
			}
			if err = costs.Set(i, j, float64(e.Weight)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}
	}

	return costs, nil
}

// validateSimpleUndirected checks the general matcher's contract on
// content, not only policy flags: any directed edge, self-loop, or
// parallel edge pair fails, while a graph built with permissive options
// but simple content passes.
//
// Complexity: O(E) time, O(E) space for the pair set.
func validateSimpleUndirected(g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrTypeMismatch)
	}
	if g.Directed() || g.HasDirectedEdges() {
		return fmt.Errorf("%w: graph has directed edges", ErrTypeMismatch)
	}

	type pair struct{ a, b string }
	pairs := make(map[pair]struct{}, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			return fmt.Errorf("%w: self-loop on %q", ErrTypeMismatch, e.From)
		}
		p := pair{a: e.From, b: e.To}
		if p.b < p.a {
			p.a, p.b = p.b, p.a
		}
		if _, dup := pairs[p]; dup {
			return fmt.Errorf("%w: parallel edge %q–%q", ErrTypeMismatch, p.a, p.b)
		}
		pairs[p] = struct{}{}
	}

	return nil
}
