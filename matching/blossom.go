package matching

import (
	"fmt"

	"github.com/katalvlaran/matchgraph/core"
)

// MaxCardinalityMatch computes a maximum-cardinality matching on an
// undirected simple graph using Edmonds' blossom-contraction method.
//
// It returns a Result whose Edges are vertex-disjoint and whose Value
// is the matching cardinality; the matching is not necessarily perfect.
// Isolated vertices and odd components always leave at least one vertex
// exposed, and disconnected components are handled implicitly since
// each search only explores vertices reachable from its root.
//
// Contracts: g must be undirected and simple (no self-loops, no
// parallel edges); otherwise ErrTypeMismatch. Edge weights are ignored.
//
// Complexity: O(V⁴) time naive bound, O(V + E) memory.
func MaxCardinalityMatch(g *core.Graph) (Result, error) {
	if err := validateSimpleUndirected(g); err != nil {
		return Result{}, err
	}

	bs := newBlossomSearch(g)

	// Any augmenting path must start at an exposed vertex; a vertex
	// never leaves the matching once added, so each root is tried once.
	for root := 0; root < bs.n; root++ {
		if bs.match[root] != -1 {
			continue
		}
		if end := bs.findPath(root); end != -1 {
			bs.augment(end)
		}
	}

	return bs.result(), nil
}

// blossomSearch carries the per-call state of the blossom algorithm.
// Vertices are reindexed to dense integers at call start (sorted ID
// order, for determinism) and all traversal state lives in plain
// arrays; the mapping is discarded at call end.
type blossomSearch struct {
	g   *core.Graph
	n   int
	ids []string // dense index → vertex ID
	adj [][]int  // neighbor lists over dense indices

	// match is the current matching as a partial symmetric bijection;
	// parent holds the alternating search tree; base maps each vertex
	// to its blossom base. -1 marks "unset" in match and parent.
	match  []int
	parent []int
	base   []int

	// Scratch state, reset per root.
	queue     []int
	inQueue   []bool
	inBlossom []bool
	seen      []bool
}

// newBlossomSearch reindexes g's vertices and builds dense adjacency.
func newBlossomSearch(g *core.Graph) *blossomSearch {
	ids := g.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	bs := &blossomSearch{
		g:         g,
		n:         n,
		ids:       ids,
		adj:       make([][]int, n),
		match:     make([]int, n),
		parent:    make([]int, n),
		base:      make([]int, n),
		queue:     make([]int, 0, n),
		inQueue:   make([]bool, n),
		inBlossom: make([]bool, n),
		seen:      make([]bool, n),
	}
	for i := range bs.match {
		bs.match[i] = -1
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		bs.adj[u] = append(bs.adj[u], v)
		bs.adj[v] = append(bs.adj[v], u)
	}

	return bs
}

// findPath runs a breadth-first alternating-tree search from root over
// a fresh parent/base state. It returns the exposed endpoint of an
// augmenting path, or -1 when the root stays exposed.
func (bs *blossomSearch) findPath(root int) int {
	// Expand the graph back from any previous contracted state.
	for i := 0; i < bs.n; i++ {
		bs.parent[i] = -1
		bs.base[i] = i
		bs.inQueue[i] = false
	}
	bs.queue = bs.queue[:0]
	bs.queue = append(bs.queue, root)
	bs.inQueue[root] = true

	for head := 0; head < len(bs.queue); head++ {
		v := bs.queue[head]

		for _, to := range bs.adj[v] {
			// Skip edges inside the current blossom and the matched
			// partner edge.
			if bs.base[v] == bs.base[to] || bs.match[v] == to {
				continue
			}

			if to == root || (bs.match[to] != -1 && bs.parent[bs.match[to]] != -1) {
				// Odd cycle: v and to close a blossom through their
				// lowest common tree ancestor; contract it to the stem.
				stem := bs.lowestCommonAncestor(v, to)
				clearBools(bs.inBlossom)
				bs.markPath(v, to, stem)
				bs.markPath(to, v, stem)
				for i := 0; i < bs.n; i++ {
					if !bs.inBlossom[bs.base[i]] {
						continue
					}
					bs.base[i] = stem
					if !bs.inQueue[i] {
						bs.inQueue[i] = true
						bs.queue = append(bs.queue, i)
					}
				}
			} else if bs.parent[to] == -1 {
				// Fresh tree vertex, reached via a non-matching edge.
				bs.parent[to] = v
				if bs.match[to] == -1 {
					// Exposed: an augmenting path ends here.
					return to
				}
				// Matched: its partner joins the outer tree layer.
				partner := bs.match[to]
				if !bs.inQueue[partner] {
					bs.inQueue[partner] = true
					bs.queue = append(bs.queue, partner)
				}
			}
		}
	}

	return -1
}

// markPath walks from v up to the blossom stem, flagging every blossom
// base on the way and re-rooting parent pointers so the cycle can later
// be traversed in either direction.
func (bs *blossomSearch) markPath(v, child, stem int) {
	for bs.base[v] != stem {
		bs.inBlossom[bs.base[v]] = true
		bs.inBlossom[bs.base[bs.match[v]]] = true
		bs.parent[v] = child
		child = bs.match[v]
		v = bs.parent[bs.match[v]]
	}
}

// lowestCommonAncestor finds the first common blossom base on the
// tree paths of a and b, walking matched-partner/parent links.
func (bs *blossomSearch) lowestCommonAncestor(a, b int) int {
	clearBools(bs.seen)
	for {
		a = bs.base[a]
		bs.seen[a] = true
		if bs.match[a] == -1 {
			break // reached the exposed root
		}
		a = bs.parent[bs.match[a]]
	}
	for {
		b = bs.base[b]
		if bs.seen[b] {
			return b
		}
		b = bs.parent[bs.match[b]]
	}
}

// augment flips every matching edge along the alternating path ending
// at the exposed vertex v, walking parent pointers back to the root;
// the matching cardinality grows by one.
func (bs *blossomSearch) augment(v int) {
	for v != -1 {
		pv := bs.parent[v]
		next := bs.match[pv]
		bs.match[v] = pv
		bs.match[pv] = v
		v = next
	}
}

// result collects the matched pairs into a Result, resolving each pair
// back to its graph edge.
func (bs *blossomSearch) result() Result {
	edges := make([]*core.Edge, 0, bs.n/2)
	for v := 0; v < bs.n; v++ {
		if bs.match[v] <= v {
			continue // unmatched, or already emitted from the partner
		}
		e, ok := bs.g.EdgeBetween(bs.ids[v], bs.ids[bs.match[v]])
		if !ok {
			// Matching edges always come from the graph; never reached.
			panic(fmt.Sprintf("matching: lost edge %s-%s", bs.ids[v], bs.ids[bs.match[v]]))
		}
		edges = append(edges, e)
	}

	return Result{Edges: edges, Value: float64(len(edges))}
}
