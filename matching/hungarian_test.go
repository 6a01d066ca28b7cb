package matching_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/matchgraph/core"
	"github.com/katalvlaran/matchgraph/matching"
	"github.com/katalvlaran/matchgraph/matrix"
)

// buildCompleteBipartite constructs a complete bipartite weighted graph
// with weights[i][j] on the (left[i], right[j]) edge.
func buildCompleteBipartite(t *testing.T, left, right []string, weights [][]int64) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for i, s := range left {
		for j, d := range right {
			_, err := g.AddEdge(s, d, weights[i][j])
			require.NoError(t, err)
		}
	}

	return g
}

// bruteForceAssign enumerates all n! assignments and returns the
// minimal total cost. Used as the optimality oracle for small n.
func bruteForceAssign(cost [][]float64) float64 {
	n := len(cost)
	perm := make([]int, n)
	used := make([]bool, n)
	best := math.Inf(1)

	var rec func(row int, acc float64)
	rec = func(row int, acc float64) {
		if row == n {
			if acc < best {
				best = acc
			}
			return
		}
		for col := 0; col < n; col++ {
			if used[col] {
				continue
			}
			used[col] = true
			perm[row] = col
			rec(row+1, acc+cost[row][col])
			used[col] = false
		}
	}
	rec(0, 0)

	return best
}

// HungarianSuite exercises the bipartite weighted matcher.
type HungarianSuite struct {
	suite.Suite
}

// TestEmptyInput verifies that zero-size partitions yield an empty
// matching with weight 0.
func (s *HungarianSuite) TestEmptyInput() {
	g := core.NewGraph(core.WithWeighted())
	res, err := matching.MinWeightPerfectMatch(g, nil, nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Value)
	require.Zero(s.T(), res.Cardinality())
}

// TestSinglePair verifies the n=1 case: the sole edge is returned with
// its weight as the value.
func (s *HungarianSuite) TestSinglePair() {
	g := buildCompleteBipartite(s.T(), []string{"s"}, []string{"t"}, [][]int64{{5}})
	res, err := matching.MinWeightPerfectMatch(g, []string{"s"}, []string{"t"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, res.Value)
	require.Equal(s.T(), 1, res.Cardinality())
	require.Equal(s.T(), "s", res.Edges[0].From)
	require.Equal(s.T(), "t", res.Edges[0].To)
}

// TestTwoByTwo checks the diagonal-vs-cross 2×2 instance: the diagonal
// assignment of total weight 2 must win over the weight-4 cross.
func (s *HungarianSuite) TestTwoByTwo() {
	g := buildCompleteBipartite(s.T(),
		[]string{"s1", "s2"}, []string{"t1", "t2"},
		[][]int64{{1, 2}, {2, 1}})
	res, err := matching.MinWeightPerfectMatch(g, []string{"s1", "s2"}, []string{"t1", "t2"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, res.Value)

	got := make(map[string]string, 2)
	for _, e := range res.Edges {
		got[e.From] = e.To
	}
	require.Equal(s.T(), map[string]string{"s1": "t1", "s2": "t2"}, got)
}

// TestBijection verifies that the result pairs every S-vertex and every
// T-vertex exactly once.
func (s *HungarianSuite) TestBijection() {
	const n = 5
	rng := rand.New(rand.NewSource(7))
	left := make([]string, n)
	right := make([]string, n)
	weights := make([][]int64, n)
	for i := 0; i < n; i++ {
		left[i] = fmt.Sprintf("s%d", i)
		right[i] = fmt.Sprintf("t%d", i)
		weights[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			weights[i][j] = int64(rng.Intn(50))
		}
	}
	g := buildCompleteBipartite(s.T(), left, right, weights)

	res, err := matching.MinWeightPerfectMatch(g, left, right)
	require.NoError(s.T(), err)
	require.Equal(s.T(), n, res.Cardinality())

	seenS := make(map[string]bool, n)
	seenT := make(map[string]bool, n)
	for _, e := range res.Edges {
		require.False(s.T(), seenS[e.From], "S-vertex matched twice: %s", e.From)
		require.False(s.T(), seenT[e.To], "T-vertex matched twice: %s", e.To)
		seenS[e.From] = true
		seenT[e.To] = true
	}
}

// TestBruteForceOptimal compares the solver against exhaustive
// enumeration of all n! assignments for n ≤ 6.
func (s *HungarianSuite) TestBruteForceOptimal() {
	rng := rand.New(rand.NewSource(42))
	for n := 2; n <= 6; n++ {
		for trial := 0; trial < 20; trial++ {
			cost := make([][]float64, n)
			m, err := matrix.NewDense(n, n)
			require.NoError(s.T(), err)
			for i := 0; i < n; i++ {
				cost[i] = make([]float64, n)
				for j := 0; j < n; j++ {
					cost[i][j] = float64(rng.Intn(100))
					require.NoError(s.T(), m.Set(i, j, cost[i][j]))
				}
			}

			assignment, total, err := matching.MinWeightAssign(m)
			require.NoError(s.T(), err)
			require.Len(s.T(), assignment, n)

			// The reported total matches the assignment it describes.
			var check float64
			usedCols := make([]bool, n)
			for i, j := range assignment {
				require.False(s.T(), usedCols[j], "column %d assigned twice", j)
				usedCols[j] = true
				check += cost[i][j]
			}
			require.Equal(s.T(), check, total)

			// And it is optimal.
			require.Equal(s.T(), bruteForceAssign(cost), total,
				"n=%d trial=%d cost=%v", n, trial, cost)
		}
	}
}

// TestDeterministicValue verifies repeated calls on an unmodified graph
// return the same value and, with fixed traversal order, the same edges.
func (s *HungarianSuite) TestDeterministicValue() {
	g := buildCompleteBipartite(s.T(),
		[]string{"a", "b", "c"}, []string{"x", "y", "z"},
		[][]int64{{4, 4, 7}, {4, 4, 2}, {9, 1, 3}})
	left, right := []string{"a", "b", "c"}, []string{"x", "y", "z"}

	first, err := matching.MinWeightPerfectMatch(g, left, right)
	require.NoError(s.T(), err)
	for i := 0; i < 5; i++ {
		again, err := matching.MinWeightPerfectMatch(g, left, right)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first.Value, again.Value)
		require.Equal(s.T(), first.Edges, again.Edges)
	}
}

// TestInvalidInputs covers every precondition violation of the graph
// entry point.
func (s *HungarianSuite) TestInvalidInputs() {
	t := s.T()

	// Nil graph.
	_, err := matching.MinWeightPerfectMatch(nil, nil, nil)
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	// Partitions differ in size.
	g := buildCompleteBipartite(t, []string{"s"}, []string{"t"}, [][]int64{{1}})
	_, err = matching.MinWeightPerfectMatch(g, []string{"s"}, []string{"t", "u"})
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	// Edge count differs from n² (incomplete graph).
	sparse := core.NewGraph(core.WithWeighted())
	_, _ = sparse.AddEdge("s1", "t1", 1)
	_, _ = sparse.AddEdge("s2", "t2", 1)
	_, err = matching.MinWeightPerfectMatch(sparse, []string{"s1", "s2"}, []string{"t1", "t2"})
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	// Right cell count but a missing (i,j) cell.
	skewed := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, _ = skewed.AddEdge("s1", "t1", 1)
	_, _ = skewed.AddEdge("s1", "t1", 2)
	_, _ = skewed.AddEdge("s1", "t2", 1)
	_, _ = skewed.AddEdge("s2", "t2", 1)
	_, err = matching.MinWeightPerfectMatch(skewed, []string{"s1", "s2"}, []string{"t1", "t2"})
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	// Negative weight.
	neg := buildCompleteBipartite(t, []string{"s"}, []string{"t"}, [][]int64{{-3}})
	_, err = matching.MinWeightPerfectMatch(neg, []string{"s"}, []string{"t"})
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	// Unweighted graph.
	plain := core.NewGraph()
	_, _ = plain.AddEdge("s", "t", 0)
	_, err = matching.MinWeightPerfectMatch(plain, []string{"s"}, []string{"t"})
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	// Duplicate ID across partitions.
	dup := buildCompleteBipartite(t, []string{"s"}, []string{"t"}, [][]int64{{1}})
	_, err = matching.MinWeightPerfectMatch(dup, []string{"s"}, []string{"s"})
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	// Leftover edges with empty partitions.
	leftover := core.NewGraph(core.WithWeighted())
	_, _ = leftover.AddEdge("a", "b", 1)
	_, err = matching.MinWeightPerfectMatch(leftover, nil, nil)
	require.ErrorIs(t, err, matching.ErrInvalidInput)
}

// TestAssignValidation covers the matrix entry point's own checks.
func (s *HungarianSuite) TestAssignValidation() {
	t := s.T()

	_, _, err := matching.MinWeightAssign(nil)
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = matching.MinWeightAssign(rect)
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	bad, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, bad.Set(0, 0, math.NaN()))
	_, _, err = matching.MinWeightAssign(bad)
	require.ErrorIs(t, err, matching.ErrInvalidInput)

	negative, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, negative.Set(1, 1, -1))
	_, _, err = matching.MinWeightAssign(negative)
	require.ErrorIs(t, err, matching.ErrInvalidInput)
}

// TestTieBreaking verifies that equal optima report the same value even
// when the chosen edge set is implementation-defined.
func (s *HungarianSuite) TestTieBreaking() {
	// Every assignment costs exactly 2.
	g := buildCompleteBipartite(s.T(),
		[]string{"s1", "s2"}, []string{"t1", "t2"},
		[][]int64{{1, 1}, {1, 1}})
	res, err := matching.MinWeightPerfectMatch(g, []string{"s1", "s2"}, []string{"t1", "t2"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, res.Value)
	require.Equal(s.T(), 2, res.Cardinality())
}

func TestHungarianSuite(t *testing.T) {
	suite.Run(t, new(HungarianSuite))
}
