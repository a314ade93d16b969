// Package dijkstra implements Dijkstra's label-setting shortest-path search on
// the Euclidean graphs of package core, streaming every improved path to a
// caller-supplied listener as it is found.
//
// Overview:
//
//   - Vertices with no incident edge are marked visited up front: they can never
//     be entered or left, so the "closest unvisited" scan must not pick them.
//   - distance[source] = 0, every other distance starts at +Inf.
//   - Up to n-1 rounds: pick the unvisited vertex with the smallest finite
//     distance (lowest index on ties), mark it visited, relax each unvisited
//     neighbor. A strict improvement of distance[k] replaces path[k] with
//     path[current] + [k] and notifies the listener with a copy.
//   - When no finite candidate remains, the rest of the graph is unreachable.
//
// Termination (WithTermination):
//
//   - core.StopOnSettle (default): return once the destination is selected;
//     its path is then a shortest one.
//   - core.StopOnReach: return on the first relaxation of the destination, the
//     quickest answer but possibly not the cheapest route. This is the
//     stopping rule this comparison historically used.
//   - core.Exhaustive: finish all rounds; every entry of the table is a shortest path.
//
// With an early exit, entries for vertices other than the destination may be
// incomplete: they hold the best route known at that moment.
//
// Complexity:
//
//   - Time:  O(n²) from the linear selection scan; relaxation adds O(m).
//   - Space: O(n) for distances and the visited set, plus the path table.
//
// Errors (sentinel):
//
//   - ErrNilGraph          if g is nil (wraps core.ErrNilGraph).
//   - ErrVertexOutOfRange  if source or destination is not in [0, n) (wraps core.ErrVertexOutOfRange).
//
// An unreachable destination is not an error: table.Reachable(destination) is false.
//
// Example:
//
//	var stats core.SearchStats
//	table, err := dijkstra.Dijkstra(g, 0, 9,
//	    dijkstra.WithListener(core.ListenerFunc(func(p core.Path) { fmt.Println(p) })),
//	    dijkstra.WithStats(&stats),
//	)
package dijkstra
