package matching

import (
	"errors"

	"github.com/katalvlaran/matchgraph/core"
)

// ErrInvalidInput is returned when the bipartite matcher's input is not
// a complete bipartite graph with equally sized partitions and
// non-negative weights.
var ErrInvalidInput = errors.New("matching: not a complete bipartite graph with equally sized partitions")

// ErrTypeMismatch is returned when the general matcher's input is not
// an undirected simple graph.
var ErrTypeMismatch = errors.New("matching: graph must be undirected and simple")

// Result holds the outcome of a matching computation: a vertex-disjoint
// edge set plus its aggregate value. It is constructed once per call
// and not mutated afterwards.
type Result struct {
	// Edges is the vertex-disjoint set of matched edges.
	Edges []*core.Edge

	// Value is the total weight (bipartite matcher) or the cardinality
	// (general matcher) of the matching.
	Value float64
}

// Cardinality returns the number of matched edges.
func (r Result) Cardinality() int {
	return len(r.Edges)
}
