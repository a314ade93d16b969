// Package pathrace races two exact shortest-path algorithms, Dijkstra's
// algorithm and A* search, over random undirected graphs embedded in the
// plane, where every edge weighs the straight-line distance between its
// endpoints.
//
// Both engines stream each improved path to a listener while they search,
// so a front end can animate the race and then compare final routes, costs,
// timings and the number of vertices each one had to settle.
//
// Packages:
//
//	core/      immutable Euclidean Graph, Path, Table, Listener, Termination
//	builder/   NewRandomGraph (exact edge count) and NewGridGraph
//	pqueue/    binary-heap priority queue with FIFO tie-break
//	dijkstra/  O(n²) label-setting search with progress notifications
//	astar/     heuristic-guided search (Euclidean, Chebyshev, Manhattan, Zero)
//	matrix/    Floyd-Warshall oracle and weight-matrix checks
//	spatial/   R-tree vertex picking by canvas position
//	render/    PNG drawing of graphs and streamed paths
//	compare/   concurrent timed race with a single-goroutine event sink
//	metrics/   Prometheus instruments for runs and path updates
//	cmd/pathrace the command line front end
//
// Quick ASCII example:
//
//	(0,0) 0───1 (10,0)
//	      │ ╲ │
//	(0,10)3───2 (10,10)
//
// Dijkstra(g, 0, 2) and AStar(g, 0, 2) both take the diagonal: cost 14.14.
//
//	go install github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/cmd/pathrace@latest
package pathrace
