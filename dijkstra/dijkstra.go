package dijkstra

import (
	"fmt"
	"math"

	"github.com/yourbasic/bit"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

// Dijkstra searches g for a shortest path from source to destination and
// returns the per-vertex path table known when it stops (see WithTermination).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and destination must be in [0, g.VertexCount()) (ErrVertexOutOfRange).
//
// The graph is only read, so concurrent calls on one graph are safe. The
// listener runs synchronously on the calling goroutine.
//
// Complexity: O(n²) time, O(n) scratch space besides the table.
func Dijkstra(g *core.Graph, source, destination int, opts ...Option) (core.Table, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph and endpoints.
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := core.Validate(g, source, destination); err != nil {
		return nil, fmt.Errorf("dijkstra: source=%d destination=%d: %w", source, destination, ErrVertexOutOfRange)
	}

	// 3) Prepare scratch state.
	r := newRunner(g, source, destination, cfg)

	// 4) Trivial query: the source already is the destination.
	if source == destination && cfg.Termination != core.Exhaustive {
		return r.paths, nil
	}

	// 5) Main loop.
	r.process()

	return r.paths, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g           *core.Graph
	n           int
	destination int
	termination core.Termination
	listener    core.Listener     // nil when nobody listens
	stats       *core.SearchStats // never nil; points at a local when not requested
	dist        []float64         // best known distance from source
	visited     *bit.Set          // finalized vertices, isolated ones included
	paths       core.Table        // best known route per vertex
}

// newRunner sets distances to +Inf except the source, pre-marks isolated
// vertices as visited and seeds the table with the one-vertex source path.
func newRunner(g *core.Graph, source, destination int, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:           g,
		n:           n,
		destination: destination,
		termination: cfg.Termination,
		listener:    cfg.Listener,
		stats:       cfg.Stats,
		dist:        make([]float64, n),
		visited:     new(bit.Set),
		paths:       core.NewTable(n, source),
	}
	if r.stats == nil {
		r.stats = new(core.SearchStats)
	} else {
		*r.stats = core.SearchStats{}
	}

	for v := 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		if g.Isolated(v) {
			r.visited.Add(v)
		}
	}
	r.dist[source] = 0

	return r
}

// process runs at most n-1 selection rounds.
//
// Loop termination conditions:
//
//   - No unvisited vertex has a finite distance (the rest is unreachable).
//   - The destination is selected, under StopOnSettle.
//   - The destination is first relaxed, under StopOnReach.
func (r *runner) process() {
	var u int
	for round := 0; round < r.n-1; round++ {
		// 1) Pick the closest unvisited vertex.
		u = r.closest()
		if u < 0 {
			return
		}

		// 2) Its distance is final now.
		r.visited.Add(u)
		r.stats.Settled++
		if u == r.destination && r.termination == core.StopOnSettle {
			return
		}

		// 3) Relax its unvisited neighbors.
		if r.relax(u) {
			return
		}
	}
}

// closest returns the unvisited vertex with the smallest finite distance,
// the lowest index among ties, or -1 if there is none.
func (r *runner) closest() int {
	best := -1
	bestDist := math.Inf(1)
	for v := 0; v < r.n; v++ {
		if r.visited.Contains(v) {
			continue
		}
		if r.dist[v] < bestDist {
			best, bestDist = v, r.dist[v]
		}
	}

	return best
}

// relax improves the distances of u's unvisited neighbors. It reports true
// when the run must stop because the destination was reached under StopOnReach.
func (r *runner) relax(u int) bool {
	var w, candidate float64
	for _, k := range r.g.Neighbors(u) {
		if r.visited.Contains(k) {
			continue
		}
		w = r.g.Weight(u, k)
		if w <= 0 {
			continue
		}

		// Only a strict improvement rewrites the path.
		candidate = r.dist[u] + w
		if candidate >= r.dist[k] {
			continue
		}
		r.dist[k] = candidate
		r.paths[k] = r.paths[u].Extend(k)
		r.stats.Relaxations++
		r.notify(k)

		if k == r.destination && r.termination == core.StopOnReach {
			return true
		}
	}

	return false
}

// notify hands a copy of path[v] to the listener.
func (r *runner) notify(v int) {
	if r.listener == nil {
		return
	}
	r.stats.Notifications++
	r.listener.PathUpdated(r.paths[v].Clone())
}
