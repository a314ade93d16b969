// Package astar implements A* search on the Euclidean graphs of package core.
//
// A* keeps two labels per vertex: distance[v], the best known cost from the
// source, and estimate[v] = distance[v] + h(v, destination). Vertices leave a
// min-priority queue (package pqueue) in estimate order; a vertex popped for
// the second time is a stale duplicate and is skipped, so every vertex is
// expanded at most once. Each strict improvement of distance[k] replaces
// path[k] with path[current] + [k], notifies the listener with a copy and
// pushes k again.
//
// Heuristics (WithHeuristic):
//
//   - Euclidean (default): straight-line distance. Because every edge weight is
//     the straight-line distance between its endpoints, it never overestimates
//     and is consistent, so the first pop of the destination is optimal.
//   - Chebyshev: max(|dx|, |dy|). Admissible and consistent, but weaker.
//   - Zero: h = 0; A* degenerates to uniform-cost search (Dijkstra order).
//   - Manhattan: |dx| + |dy|. Overestimates diagonal moves, so returned routes
//     can be longer than the shortest. Useful only to show that effect.
//
// Termination (WithTermination):
//
//   - core.StopOnSettle (default): return when the destination is popped.
//   - core.StopOnReach: same as StopOnSettle. A* never returns a route it
//     has only relaxed.
//   - core.Exhaustive: drain the queue.
//
// If the queue drains without reaching the destination, the partial table is
// returned and table.Reachable(destination) is false.
//
// Complexity:
//
//   - Time:  O((n + m) log m) with lazy decrease-key.
//   - Space: O(n + m) for labels and queued duplicates.
//
// Errors (sentinel):
//
//   - ErrNilGraph          if g is nil.
//   - ErrVertexOutOfRange  if source or destination is not in [0, n).
package astar
