// Package core: non-mutating graph views.
//
// Views clone topology with altered properties; the source graph is
// never mutated, so a view can be taken while readers hold the source.
// Vertex and edge IDs are preserved, as is directedness.

package core

import "sync/atomic"

// UnweightedView returns a new Graph with identical topology but with
// all edge weights set to zero and the weighted flag turned off. The
// input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on the source.
func UnweightedView(g *Graph) *Graph {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Snapshot the ID counter under the same lock as the edge catalog,
	// so the view keeps generating IDs strictly after the source's last.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: 0, Directed: e.Directed}
		out.edges[eid] = ne
		out.ensureAdjMap(ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			out.ensureAdjMap(ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// InducedSubgraph returns a new Graph induced by the vertex set "keep":
// the result contains only vertices v with keep[v] true, and all edges
// whose endpoints are both kept. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on the source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.optionSet()...)
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		out.edges[eid] = ne
		out.ensureAdjMap(ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			out.ensureAdjMap(ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	// Carry the counter forward even when edges were filtered out, so
	// future AddEdge calls cannot collide with historical IDs.
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
