package matching

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matchgraph/core"
	"github.com/katalvlaran/matchgraph/matrix"
)

// MinWeightPerfectMatch computes the minimum-weight perfect matching of
// a complete bipartite graph over the partitions left (S) and right (T)
// using the Hungarian (Kuhn–Munkres) method.
//
// It returns a Result whose Edges form a bijection S→T and whose Value
// is the summed weight of the chosen edges.
//
// Contracts:
//   - g must be weighted and contain exactly one edge per (S[i], T[j])
//     pair, |S| == |T| == n, all weights non-negative; otherwise
//     ErrInvalidInput.
//   - n == 0 yields an empty Result with Value 0.
//
// Among equally optimal assignments the returned edge set depends on
// traversal order over zero-excess cells; the Value never does.
//
// Complexity: O(n³) time, O(n²) memory.
func MinWeightPerfectMatch(g *core.Graph, left, right []string) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("%w: nil graph", ErrInvalidInput)
	}
	if len(left) != len(right) {
		return Result{}, fmt.Errorf("%w: |S|=%d, |T|=%d", ErrInvalidInput, len(left), len(right))
	}
	// Expected behavior for an empty input is an empty matching, but a
	// leftover edge still breaks the complete-bipartite precondition.
	if len(left) == 0 {
		if g.EdgeCount() != 0 {
			return Result{}, fmt.Errorf("%w: %d edges, want 0", ErrInvalidInput, g.EdgeCount())
		}

		return Result{Edges: []*core.Edge{}}, nil
	}

	costs, err := buildCostMatrix(g, left, right)
	if err != nil {
		return Result{}, err
	}

	assignment, total, err := MinWeightAssign(costs)
	if err != nil {
		return Result{}, err
	}

	edges := make([]*core.Edge, 0, len(assignment))
	for i, j := range assignment {
		e, ok := g.EdgeBetween(left[i], right[j])
		if !ok {
			// Unreachable past buildCostMatrix; guard kept for safety.
			return Result{}, fmt.Errorf("%w: missing edge %q–%q", ErrInvalidInput, left[i], right[j])
		}
		edges = append(edges, e)
	}

	return Result{Edges: edges, Value: total}, nil
}

// MinWeightAssign solves the assignment problem on an n×n cost matrix:
// it returns assignment with assignment[i] = j meaning row i is paired
// with column j, plus the minimized total cost.
//
// Contracts: costs non-nil, square, every entry finite and
// non-negative; otherwise ErrInvalidInput.
//
// Complexity: O(n³) time, O(n²) memory.
func MinWeightAssign(costs matrix.Matrix) ([]int, float64, error) {
	if costs == nil {
		return nil, 0, fmt.Errorf("%w: nil cost matrix", ErrInvalidInput)
	}
	n := costs.Rows()
	if n != costs.Cols() || n == 0 {
		return nil, 0, fmt.Errorf("%w: cost matrix is %dx%d", ErrInvalidInput, costs.Rows(), costs.Cols())
	}

	// Snapshot the costs; the solver mutates only its excess copy.
	cost := make([][]float64, n)
	for i := 0; i < n; i++ {
		cost[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v, err := costs.At(i, j)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, 0, fmt.Errorf("%w: cost[%d][%d]=%g", ErrInvalidInput, i, j, v)
			}
			cost[i][j] = v
		}
	}

	km := newKuhnMunkres(cost)
	assignment := km.buildMatching()

	var total float64
	for i, j := range assignment {
		total += cost[i][j]
	}

	return assignment, total, nil
}

// kuhnMunkres carries the per-call state of the Hungarian method.
// Rows index the first partition (S), columns the second (T). All
// state is allocated fresh per invocation and discarded at call end.
type kuhnMunkres struct {
	n int

	// excess is the reduced cost matrix. Invariant: every entry ≥ 0,
	// and the zero entries form the current tight (equality) subgraph.
	// Zeros are produced by exact self-subtraction, so comparing
	// against 0 is exact despite float64 arithmetic.
	excess [][]float64

	// columnMatched[i] is the column matched at row i, rowMatched[j]
	// the row matched at column j; -1 means unmatched. The partial
	// bijection columnMatched[i]=j ⇔ rowMatched[j]=i is carried across
	// outer iterations: the dual adjustment keeps matched cells tight,
	// so the tight-subgraph matching grows monotonically.
	columnMatched []int
	rowMatched    []int

	// Line coverage for the König step. When the tight matching is not
	// yet perfect, the number of covered lines equals its size.
	rowsCovered []bool
	colsCovered []bool

	// Scratch state for the augmenting search and the cover build.
	rowsVisited []bool
	colsVisited []bool
	invertible  []bool
}

// newKuhnMunkres allocates solver state and derives the excess matrix
// by row- then column-reduction of cost.
func newKuhnMunkres(cost [][]float64) *kuhnMunkres {
	n := len(cost)
	km := &kuhnMunkres{
		n:             n,
		excess:        make([][]float64, n),
		columnMatched: make([]int, n),
		rowMatched:    make([]int, n),
		rowsCovered:   make([]bool, n),
		colsCovered:   make([]bool, n),
		rowsVisited:   make([]bool, n),
		colsVisited:   make([]bool, n),
		invertible:    make([]bool, n),
	}
	for i := 0; i < n; i++ {
		km.excess[i] = make([]float64, n)
		copy(km.excess[i], cost[i])
		km.columnMatched[i] = -1
		km.rowMatched[i] = -1
	}

	// Subtract each row's minimum, then each column's minimum. Every
	// row and column now contains at least one zero and all entries
	// stay ≥ 0; the reductions act as dual potentials satisfying
	// complementary slackness with the eventual optimum.
	for i := 0; i < n; i++ {
		rowMin := km.excess[i][0]
		for j := 1; j < n; j++ {
			if km.excess[i][j] < rowMin {
				rowMin = km.excess[i][j]
			}
		}
		for j := 0; j < n; j++ {
			km.excess[i][j] -= rowMin
		}
	}
	for j := 0; j < n; j++ {
		colMin := km.excess[0][j]
		for i := 1; i < n; i++ {
			if km.excess[i][j] < colMin {
				colMin = km.excess[i][j]
			}
		}
		for i := 0; i < n; i++ {
			km.excess[i][j] -= colMin
		}
	}

	return km
}

// buildMatching runs the outer Hungarian loop: grow a maximum matching
// over the tight subgraph; while it is not perfect, build a minimum
// vertex cover and extend the equality graph with a dual adjustment.
// The loop strictly grows the matching each pass and terminates in at
// most n iterations.
func (km *kuhnMunkres) buildMatching() []int {
	for km.maximalMatching() < km.n {
		km.coverZeros()
		km.adjustPotentials()
	}

	assignment := make([]int, km.n)
	copy(assignment, km.columnMatched)

	return assignment
}

// maximalMatching grows the tight-subgraph matching to maximum size:
// a greedy seed over free columns, then one augmenting search per
// remaining free column. Returns the matching size.
// Complexity: O(n²) per free column, O(n³) worst case.
func (km *kuhnMunkres) maximalMatching() int {
	// Greedy seed: pair each free column with any free row holding a
	// zero. Which zero wins is a function of iteration order only.
	for col := 0; col < km.n; col++ {
		if km.rowMatched[col] != -1 {
			continue
		}
		for row := 0; row < km.n; row++ {
			if km.excess[row][col] == 0 && km.columnMatched[row] == -1 {
				km.columnMatched[row] = col
				km.rowMatched[col] = row
				break
			}
		}
	}

	// The matching is maximum iff the tight subgraph contains no
	// augmenting path; try to extend from every remaining free column.
	for col := 0; col < km.n; col++ {
		if km.rowMatched[col] != -1 {
			continue
		}
		clearBools(km.rowsVisited)
		clearBools(km.colsVisited)
		km.augmentFrom(col)
	}

	size := 0
	for col := 0; col < km.n; col++ {
		if km.rowMatched[col] != -1 {
			size++
		}
	}

	return size
}

// dfsFrame is one column on the alternating-path stack. via is the
// matched row through which the column was entered and from the column
// preceding that row on the path (-1 markers on the root frame).
type dfsFrame struct {
	col  int
	via  int
	from int
	next int // next row index to probe in this column
}

// augmentFrom searches for an augmenting alternating path over the
// tight subgraph, starting at free column root, and flips it when
// found. The search is an explicit iterative DFS bounded by n frames:
// visiting a zero cell in an unvisited row extends the path; a free row
// completes it, a matched row descends through its partner column.
func (km *kuhnMunkres) augmentFrom(root int) bool {
	stack := make([]dfsFrame, 0, km.n)
	stack = append(stack, dfsFrame{col: root, via: -1, from: -1})
	km.colsVisited[root] = true

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		descended := false
		for f.next < km.n {
			row := f.next
			f.next++
			if km.excess[row][f.col] != 0 || km.rowsVisited[row] {
				continue
			}
			if km.columnMatched[row] == -1 {
				// Free row: flip every matching edge recorded on the
				// stack, growing the matching by one.
				km.columnMatched[row] = f.col
				km.rowMatched[f.col] = row
				for k := len(stack) - 1; k > 0; k-- {
					km.columnMatched[stack[k].via] = stack[k].from
					km.rowMatched[stack[k].from] = stack[k].via
				}

				return true
			}
			km.rowsVisited[row] = true
			next := km.columnMatched[row]
			if km.colsVisited[next] {
				continue
			}
			km.colsVisited[next] = true
			stack = append(stack, dfsFrame{col: next, via: row, from: f.col})
			descended = true
			break
		}
		if !descended {
			stack = stack[:len(stack)-1]
		}
	}

	return false
}

// coverZeros builds a minimum vertex cover of the tight subgraph from
// the current maximum matching, per König's theorem: mark unmatched
// rows holding zeros, propagate coverage forward along zero cells to
// columns and backward along matched cells to rows, then invert the
// row marks.
func (km *kuhnMunkres) coverZeros() {
	clearBools(km.rowsCovered)
	clearBools(km.colsCovered)
	clearBools(km.invertible)

	for row := 0; row < km.n; row++ {
		if km.columnMatched[row] != -1 {
			km.invertible[row] = true
			continue
		}
		for col := 0; col < km.n; col++ {
			if km.excess[row][col] == 0 {
				km.rowsCovered[row] = true
				km.invertible[row] = true
				break
			}
		}
	}

	for changed := true; changed; {
		for row := 0; row < km.n; row++ {
			if !km.rowsCovered[row] {
				continue
			}
			for col := 0; col < km.n; col++ {
				if km.excess[row][col] == 0 && !km.colsCovered[col] {
					km.colsCovered[col] = true
				}
			}
		}

		changed = false
		for col := 0; col < km.n; col++ {
			if km.colsCovered[col] && km.rowMatched[col] != -1 && !km.rowsCovered[km.rowMatched[col]] {
				km.rowsCovered[km.rowMatched[col]] = true
				changed = true
			}
		}
	}

	for row := 0; row < km.n; row++ {
		if km.invertible[row] {
			km.rowsCovered[row] = !km.rowsCovered[row]
		}
	}
}

// adjustPotentials extends the equality graph: let δ be the minimum
// excess over cells with both lines uncovered, then add δ to every
// covered row and subtract δ from every uncovered column. All entries
// stay ≥ 0, at least one new zero appears outside the old tight
// subgraph, and dual optimality is preserved.
func (km *kuhnMunkres) adjustPotentials() {
	delta := math.Inf(1)
	for row := 0; row < km.n; row++ {
		if km.rowsCovered[row] {
			continue
		}
		for col := 0; col < km.n; col++ {
			if km.colsCovered[col] {
				continue
			}
			if km.excess[row][col] < delta {
				delta = km.excess[row][col]
			}
		}
	}

	for row := 0; row < km.n; row++ {
		if !km.rowsCovered[row] {
			continue
		}
		for col := 0; col < km.n; col++ {
			km.excess[row][col] += delta
		}
	}
	for col := 0; col < km.n; col++ {
		if km.colsCovered[col] {
			continue
		}
		for row := 0; row < km.n; row++ {
			km.excess[row][col] -= delta
		}
	}
}

// clearBools resets a scratch vector without reallocating.
func clearBools(b []bool) {
	for i := range b {
		b[i] = false
	}
}
