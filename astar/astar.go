package astar

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/yourbasic/bit"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/pqueue"
)

// AStar searches g for a shortest path from source to destination guided by
// the configured heuristic, and returns the per-vertex path table known when
// it stops.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and destination must be in [0, g.VertexCount()) (ErrVertexOutOfRange).
//
// The graph is only read; the listener runs synchronously on the calling goroutine.
func AStar(g *core.Graph, source, destination int, opts ...Option) (core.Table, error) {
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
		return nil, fmt.Errorf("astar: source=%d destination=%d: %w", source, destination, ErrVertexOutOfRange)
	}

	// 3) Prepare scratch state and seed the queue with the source.
	r := newRunner(g, source, destination, cfg)
	if source == destination && cfg.Termination != core.Exhaustive {
		return r.paths, nil
	}

	// 4) Main loop.
	r.process()

	return r.paths, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g           *core.Graph
	target      orb.Point
	destination int
	heuristic   Heuristic
	termination core.Termination
	listener    core.Listener
	stats       *core.SearchStats
	dist        []float64 // best known cost from source
	estimate    []float64 // dist + heuristic to destination
	closed      *bit.Set  // expanded vertices
	queue       *pqueue.Queue[int]
	paths       core.Table
}

func newRunner(g *core.Graph, source, destination int, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:           g,
		target:      g.Point(destination),
		destination: destination,
		heuristic:   cfg.Heuristic,
		termination: cfg.Termination,
		listener:    cfg.Listener,
		stats:       cfg.Stats,
		dist:        make([]float64, n),
		estimate:    make([]float64, n),
		closed:      new(bit.Set),
		queue:       pqueue.New[int](n),
		paths:       core.NewTable(n, source),
	}
	if r.stats == nil {
		r.stats = new(core.SearchStats)
	} else {
		*r.stats = core.SearchStats{}
	}

	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		r.dist[v] = inf
		r.estimate[v] = inf
	}
	r.dist[source] = 0
	r.estimate[source] = r.heuristic(g.Point(source), r.target)
	r.push(source)

	return r
}

// process pops vertices in estimate order until the queue drains or the
// termination rule fires.
func (r *runner) process() {
	var u int
	for r.queue.Len() > 0 {
		// 1) Pop the most promising vertex; skip stale duplicates.
		u = r.queue.ExtractMin()
		if r.closed.Contains(u) {
			continue
		}

		// 2) Expand it exactly once.
		r.closed.Add(u)
		r.stats.Settled++
		if u == r.destination && r.termination != core.Exhaustive {
			return
		}

		// 3) Relax neighbors that are still open.
		r.relax(u)
	}
}

// relax improves the open neighbors of u and queues each improved one.
func (r *runner) relax(u int) {
	var w, tentative float64
	for _, k := range r.g.Neighbors(u) {
		if r.closed.Contains(k) {
			continue
		}
		w = r.g.Weight(u, k)
		if w <= 0 {
			continue
		}

		tentative = r.dist[u] + w
		if tentative >= r.dist[k] {
			continue
		}
		r.dist[k] = tentative
		r.estimate[k] = tentative + r.heuristic(r.g.Point(k), r.target)
		r.paths[k] = r.paths[u].Extend(k)
		r.stats.Relaxations++
		r.notify(k)
		r.push(k)
	}
}

func (r *runner) push(v int) {
	r.queue.Insert(v, r.estimate[v])
	r.stats.Pushes++
}

func (r *runner) notify(v int) {
	if r.listener == nil {
		return
	}
	r.stats.Notifications++
	r.listener.PathUpdated(r.paths[v].Clone())
}
