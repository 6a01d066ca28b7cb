// Package neighbor maintains lazily built neighbor caches over core
// graphs.
//
// A core.Graph answers Neighbors queries by scanning adjacency on
// every call. Index trades memory for speed: the first NeighborsOf
// call for a vertex materializes its neighbor list, and subsequent
// calls return the cached copy in O(1) plus the copy cost. Mutation
// callbacks (EdgeAdded, EdgeRemoved, VertexRemoved) keep already
// cached entries current without touching vertices that were never
// queried.
//
// The cache counts multiplicities, so parallel edges are handled: a
// neighbor disappears from the list only when its last connecting
// edge is removed.
//
// The caller is responsible for forwarding every graph mutation to the
// matching callback; a missed event leaves the cache stale until
// Invalidate. All methods are safe for concurrent use.
package neighbor

import (
	"errors"
	"sort"
	"sync"

	"github.com/katalvlaran/matchgraph/core"
)

// ErrNilGraph is returned by NewIndex when no graph is supplied.
var ErrNilGraph = errors.New("neighbor: nil graph")

// Index is a lazy neighbor cache over a single core.Graph.
type Index struct {
	g *core.Graph

	mu    sync.RWMutex
	cache map[string]*neighborSet
}

// NewIndex wraps g in an empty Index. No neighbor lists are computed
// until the first NeighborsOf call.
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Index{g: g, cache: make(map[string]*neighborSet)}, nil
}

// NeighborsOf returns the sorted neighbor IDs of id, materializing the
// cache entry on first access. The returned slice is a copy and safe
// to retain.
//
// Returns core.ErrVertexNotFound (or core.ErrEmptyVertexID) untouched
// when the graph rejects the lookup.
// Complexity: O(d log d) on a miss, O(d) on a hit.
func (ix *Index) NeighborsOf(id string) ([]string, error) {
	ix.mu.RLock()
	ns, ok := ix.cache[id]
	ix.mu.RUnlock()
	if ok {
		ix.mu.Lock()
		defer ix.mu.Unlock()

		return ns.list(), nil
	}

	edges, err := ix.g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ns = newNeighborSet()
	for _, e := range edges {
		ns.add(e.Other(id))
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	// Another goroutine may have filled the entry meanwhile; keep the
	// existing one, it has seen any callbacks fired since.
	if prior, raced := ix.cache[id]; raced {
		return prior.list(), nil
	}
	ix.cache[id] = ns

	return ns.list(), nil
}

// DegreeOf returns the number of distinct neighbors of id, using the
// same cache as NeighborsOf.
func (ix *Index) DegreeOf(id string) (int, error) {
	neighbors, err := ix.NeighborsOf(id)
	if err != nil {
		return 0, err
	}

	return len(neighbors), nil
}

// EdgeAdded records a new from–to adjacency in the cached entries of
// both endpoints. Vertices never queried stay lazy.
func (ix *Index) EdgeAdded(from, to string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ns, ok := ix.cache[from]; ok {
		ns.add(to)
	}
	if ns, ok := ix.cache[to]; ok {
		ns.add(from)
	}
}

// EdgeRemoved drops one from–to adjacency from the cached entries of
// both endpoints. With parallel edges the neighbor survives until its
// last connecting edge is gone.
func (ix *Index) EdgeRemoved(from, to string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ns, ok := ix.cache[from]; ok {
		ns.remove(to)
	}
	if ns, ok := ix.cache[to]; ok {
		ns.remove(from)
	}
}

// VertexRemoved evicts id's own entry and removes id from every other
// cached neighbor list.
func (ix *Index) VertexRemoved(id string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	delete(ix.cache, id)
	for _, ns := range ix.cache {
		ns.removeAll(id)
	}
}

// Invalidate drops the entire cache; the next NeighborsOf per vertex
// recomputes from the graph.
func (ix *Index) Invalidate() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.cache = make(map[string]*neighborSet)
}

// CachedCount reports how many vertices currently hold a cache entry.
func (ix *Index) CachedCount() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return len(ix.cache)
}

// neighborSet is one vertex's neighbor multiset plus a lazily rebuilt
// sorted view. Callers must hold the Index lock.
type neighborSet struct {
	counts map[string]int
	sorted []string // nil when stale
}

func newNeighborSet() *neighborSet {
	return &neighborSet{counts: make(map[string]int)}
}

func (ns *neighborSet) add(id string) {
	ns.counts[id]++
	ns.sorted = nil
}

func (ns *neighborSet) remove(id string) {
	c, ok := ns.counts[id]
	if !ok {
		return
	}
	if c <= 1 {
		delete(ns.counts, id)
	} else {
		ns.counts[id] = c - 1
	}
	ns.sorted = nil
}

func (ns *neighborSet) removeAll(id string) {
	if _, ok := ns.counts[id]; ok {
		delete(ns.counts, id)
		ns.sorted = nil
	}
}

// list returns a fresh copy of the sorted distinct neighbors.
func (ns *neighborSet) list() []string {
	if ns.sorted == nil {
		ns.sorted = make([]string, 0, len(ns.counts))
		for v := range ns.counts {
			ns.sorted = append(ns.sorted, v)
		}
		sort.Strings(ns.sorted)
	}
	out := make([]string, len(ns.sorted))
	copy(out, ns.sorted)

	return out
}
