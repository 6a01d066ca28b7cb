package matching_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchgraph/core"
	"github.com/katalvlaran/matchgraph/matching"
)

// buildUndirected constructs a simple undirected graph from an edge
// list over v0..v(n-1).
func buildUndirected(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%d", i)))
	}
	for _, e := range edges {
		_, err := g.AddEdge(fmt.Sprintf("v%d", e[0]), fmt.Sprintf("v%d", e[1]), 0)
		require.NoError(t, err)
	}

	return g
}

// bruteMaxMatching returns the maximum matching cardinality by trying
// every edge subset. Exponential in len(edges); keep instances small.
func bruteMaxMatching(n int, edges [][2]int) int {
	used := make([]bool, n)
	var rec func(idx int) int
	rec = func(idx int) int {
		if idx == len(edges) {
			return 0
		}
		best := rec(idx + 1)
		u, v := edges[idx][0], edges[idx][1]
		if !used[u] && !used[v] {
			used[u], used[v] = true, true
			if c := 1 + rec(idx+1); c > best {
				best = c
			}
			used[u], used[v] = false, false
		}

		return best
	}

	return rec(0)
}

func TestMaxCardinalityMatch_EmptyGraph(t *testing.T) {
	res, err := matching.MaxCardinalityMatch(core.NewGraph())
	require.NoError(t, err)
	require.Zero(t, res.Cardinality())
	require.Zero(t, res.Value)
}

func TestMaxCardinalityMatch_SingleEdge(t *testing.T) {
	g := buildUndirected(t, 2, [][2]int{{0, 1}})
	res, err := matching.MaxCardinalityMatch(g)
	require.NoError(t, err)
	require.Equal(t, 1, res.Cardinality())
	require.Equal(t, 1.0, res.Value)
}

// TestMaxCardinalityMatch_OddCycle checks the 5-cycle: its maximum
// matching has 2 edges and leaves exactly one vertex exposed.
func TestMaxCardinalityMatch_OddCycle(t *testing.T) {
	g := buildUndirected(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	res, err := matching.MaxCardinalityMatch(g)
	require.NoError(t, err)
	require.Equal(t, 2, res.Cardinality())

	matched := make(map[string]bool, 4)
	for _, e := range res.Edges {
		matched[e.From] = true
		matched[e.To] = true
	}
	require.Len(t, matched, 4, "exactly one of five vertices stays exposed")
}

func TestMaxCardinalityMatch_EvenCyclePerfect(t *testing.T) {
	g := buildUndirected(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	res, err := matching.MaxCardinalityMatch(g)
	require.NoError(t, err)
	require.Equal(t, 3, res.Cardinality())
}

// TestMaxCardinalityMatch_BlossomRequired uses two triangles joined by
// a bridge. A plain bipartite-style search misses the perfect matching
// here; only blossom contraction finds all 4 edges.
func TestMaxCardinalityMatch_BlossomRequired(t *testing.T) {
	g := buildUndirected(t, 8, [][2]int{
		{0, 1}, {1, 2}, {2, 0}, // left triangle
		{2, 3}, {3, 4}, // bridge
		{4, 5}, {5, 6}, {6, 4}, // right triangle
		{6, 7}, // pendant
	})
	res, err := matching.MaxCardinalityMatch(g)
	require.NoError(t, err)
	require.Equal(t, 4, res.Cardinality())
}

func TestMaxCardinalityMatch_DisconnectedComponents(t *testing.T) {
	// A path of 3, a single edge, and two isolated vertices.
	g := buildUndirected(t, 7, [][2]int{{0, 1}, {1, 2}, {3, 4}})
	res, err := matching.MaxCardinalityMatch(g)
	require.NoError(t, err)
	require.Equal(t, 2, res.Cardinality())
}

func TestMaxCardinalityMatch_IsolatedVerticesOnly(t *testing.T) {
	g := buildUndirected(t, 4, nil)
	res, err := matching.MaxCardinalityMatch(g)
	require.NoError(t, err)
	require.Zero(t, res.Cardinality())
}

// TestMaxCardinalityMatch_RandomVsBruteForce cross-checks cardinality
// against exhaustive search on small random graphs. By Berge's theorem
// matching the brute-force optimum also certifies that no augmenting
// path remains.
func TestMaxCardinalityMatch_RandomVsBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 40; trial++ {
		n := 4 + rng.Intn(7) // 4..10 vertices
		var edges [][2]int
		seen := make(map[[2]int]bool)
		target := rng.Intn(14)
		if max := n * (n - 1) / 2; target > max {
			target = max
		}
		for len(edges) < target {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			if u > v {
				u, v = v, u
			}
			if seen[[2]int{u, v}] {
				continue
			}
			seen[[2]int{u, v}] = true
			edges = append(edges, [2]int{u, v})
		}

		g := buildUndirected(t, n, edges)
		res, err := matching.MaxCardinalityMatch(g)
		require.NoError(t, err)

		// Optimal cardinality.
		want := bruteMaxMatching(n, edges)
		require.Equal(t, want, res.Cardinality(),
			"trial=%d n=%d edges=%v", trial, n, edges)
		require.Equal(t, float64(want), res.Value)

		// Vertex-disjointness.
		matched := make(map[string]bool, 2*res.Cardinality())
		for _, e := range res.Edges {
			require.False(t, matched[e.From], "vertex matched twice: %s", e.From)
			require.False(t, matched[e.To], "vertex matched twice: %s", e.To)
			matched[e.From] = true
			matched[e.To] = true
		}
	}
}

func TestMaxCardinalityMatch_Deterministic(t *testing.T) {
	g := buildUndirected(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 5}})
	first, err := matching.MaxCardinalityMatch(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := matching.MaxCardinalityMatch(g)
		require.NoError(t, err)
		require.Equal(t, first.Value, again.Value)
		require.Equal(t, first.Edges, again.Edges)
	}
}

func TestMaxCardinalityMatch_TypeMismatch(t *testing.T) {
	// Nil graph.
	_, err := matching.MaxCardinalityMatch(nil)
	require.ErrorIs(t, err, matching.ErrTypeMismatch)

	// Directed graph.
	dg := core.NewGraph(core.WithDirected(true))
	_, _ = dg.AddEdge("a", "b", 0)
	_, err = matching.MaxCardinalityMatch(dg)
	require.ErrorIs(t, err, matching.ErrTypeMismatch)

	// Self-loop.
	lg := core.NewGraph(core.WithLoops())
	_, _ = lg.AddEdge("a", "a", 0)
	_, err = matching.MaxCardinalityMatch(lg)
	require.ErrorIs(t, err, matching.ErrTypeMismatch)

	// Parallel edges.
	mg := core.NewGraph(core.WithMultiEdges())
	_, _ = mg.AddEdge("a", "b", 0)
	_, _ = mg.AddEdge("b", "a", 0)
	_, err = matching.MaxCardinalityMatch(mg)
	require.ErrorIs(t, err, matching.ErrTypeMismatch)

	// Permissive options but simple content still passes.
	ok := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = ok.AddEdge("a", "b", 0)
	res, err := matching.MaxCardinalityMatch(ok)
	require.NoError(t, err)
	require.Equal(t, 1, res.Cardinality())
}
