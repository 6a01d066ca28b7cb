// Package matchgraph is an in-memory graph matching engine: provably
// optimal vertex pairings over a thread-safe graph store.
//
// 🚀 What is matchgraph?
//
//	A modern, thread-safe, zero-dependency library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Matching: minimum-weight perfect matching on complete bipartite
//		  graphs (Hungarian / Kuhn–Munkres) and maximum-cardinality
//		  matching on general graphs (Edmonds blossom contraction)
//		• Matrix: dense cost matrices bridging graphs and the assignment problem
//		• Neighbor: an incremental, callback-driven adjacency cache
//		• Tour: a greedy Hamiltonian-cycle heuristic for complete graphs
//
// ✨ Why choose matchgraph?
//
//   - Exact results – both matchers return provably optimal pairings
//   - Rock-solid guarantees – R/W locks, deterministic sorted iteration
//   - Pure Go – no cgo, no hidden deps
//   - Minimal API – one entry point per algorithm, sentinel errors only
//
// Under the hood, everything is organized under five subpackages:
//
//	core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	matrix/   — dense float64 matrices + graph↔matrix bridging
//	matching/ — Hungarian and blossom matchers producing a Matching result
//	neighbor/ — lazily-built neighbor cache kept current via callbacks
//	tour/     — greedy nearest-insertion Hamiltonian cycle approximation
//
// Quick ASCII example (a 5-cycle; its maximum matching has two edges,
// leaving exactly one vertex exposed):
//
//	    A───B
//	   ╱     ╲
//	  E       C
//	   ╲     ╱
//	    ╰─D─╯
//
// Dive into the per-package doc.go files for contracts, complexity
// bounds, and worked examples.
//
//	go get github.com/katalvlaran/matchgraph
package matchgraph
