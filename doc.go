// SPDX-License-Identifier: MIT

// Package lvroute is an indexed single-source shortest-path toolkit:
// dense integer node ids, append-only adjacency, and a binary-heap Dijkstra
// whose results answer path and distance queries without touching the graph
// again.
//
// Layout:
//
//	core/      — Graph: nodes 0..N-1, directed weighted edges, Clone
//	dijkstra/  — CalculateFor and the immutable ShortestPaths result
//	builder/   — deterministic template constructors (grid, random, café, …)
//	reuse/     — clone-extend-solve over one shared template, concurrently
//	cmd/lvroute — CLI: cafe, route, bench
//
// Quick example (the café graph):
//
//	g, _ := builder.BuildGraph(nil, builder.Cafe())
//	sp, _ := dijkstra.CalculateFor(g, builder.CafeFullStack)
//	path, _ := sp.ShortestPathTo(builder.CafeGrumpy) // [0 2 5 4]
//	w, _ := sp.TotalWeight(builder.CafeGrumpy)       // 14
//
// Errors are sentinels: every invalid input satisfies
// errors.Is(err, core.ErrInvalidArgument); an unreachable destination in
// ShortestPathTo satisfies errors.Is(err, dijkstra.ErrNoPathFound).
package lvroute
