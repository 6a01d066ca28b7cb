// Package matching computes provably optimal vertex pairings on graphs
// represented by *core.Graph, under two classical models:
//
//   - Minimum-weight perfect matching on a complete bipartite graph
//     (the assignment problem), solved by the Hungarian (Kuhn–Munkres)
//     method.
//
//   - Method: row/column reduction into an excess matrix, maximum
//     matching over the tight (zero-excess) subgraph, König vertex
//     cover, and δ dual adjustment until the matching is perfect.
//
//   - Time:   O(n³) for partition size n.
//
//   - Memory: O(n²) for the excess matrix.
//
//   - Maximum-cardinality matching on an arbitrary undirected simple
//     graph, solved by Edmonds' blossom-contraction method.
//
//   - Method: per exposed root, a breadth-first alternating-tree
//     search; odd cycles (blossoms) are contracted to their stem and
//     the search continues; an augmenting path flips the matching.
//
//   - Time:   O(V⁴) naive bound (V roots × O(V³) searches).
//
//   - Memory: O(V + E) for the dense-index arrays and adjacency.
//
// # API
//
// The two matchers are independent strategies sharing only the graph
// contract and the Result type:
//
//	func MinWeightPerfectMatch(g *core.Graph, left, right []string) (Result, error)
//	func MinWeightAssign(costs matrix.Matrix) ([]int, float64, error)
//	func MaxCardinalityMatch(g *core.Graph) (Result, error)
//
// MinWeightAssign is the matrix entry point: it solves the assignment
// problem directly on an n×n cost matrix and underlies
// MinWeightPerfectMatch, mirroring the graph/matrix split used across
// this module.
//
// # Errors
//
//	ErrInvalidInput  - bipartite input is not complete bipartite with
//	                   equal partitions, carries a negative weight, or
//	                   the graph is not weighted.
//	ErrTypeMismatch  - general input is not an undirected simple graph.
//
// Inputs are validated once, at call start; past validation both
// algorithms always terminate with a valid (possibly empty) Result and
// cannot fail at runtime.
//
// # Concurrency
//
// Both matchers are synchronous and allocate fresh call-local state
// (matrices, coverage vectors, match/parent/base arrays), so concurrent
// calls against independent graphs are safe. A graph shared with a
// running matcher call must not be mutated concurrently with that call;
// callers must serialize reads against writes externally. There is no
// cancellation hook: a caller needing bounded latency must impose an
// external deadline and discard the call's result.
//
// # Determinism
//
// The returned aggregate value (weight or cardinality) is deterministic
// for a fixed input. Ties between equally optimal edge sets are broken
// by traversal order (caller partition order, sorted vertex IDs), so
// the specific edge set is implementation-defined but stable across
// repeated calls on an unmodified graph.
package matching
