package compare

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/astar"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/dijkstra"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/metrics"
)

// Run searches source → destination with both engines concurrently.
//
// Errors:
//   - ErrNilGraph, or a wrapped core.ErrVertexOutOfRange for bad endpoints.
//   - ctx.Err() if ctx ends before both engines return.
//   - any engine error, first one wins.
func Run(ctx context.Context, g *core.Graph, source, destination int, opts ...Option) (*Report, error) {
	cfg := newConfig(opts...)
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := core.Validate(g, source, destination); err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{Source: source, Destination: destination}
	events := make(chan Event, cfg.buffer)
	done := make(chan error, 1)

	// Single consumer: every sink call happens on this goroutine.
	drained := make(chan int)
	go func() {
		n := 0
		for ev := range events {
			n++
			if klog.V(4).Enabled() {
				klog.Infof("compare: %s update #%d: %v", ev.Algorithm, ev.Seq, ev.Path)
			}
			if cfg.sink != nil {
				cfg.sink(ev)
			}
		}
		drained <- n
	}()

	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		report.Dijkstra, err = cfg.run(g, Dijkstra, source, destination, events)
		return err
	})
	eg.Go(func() error {
		var err error
		report.AStar, err = cfg.run(g, AStar, source, destination, events)
		return err
	})
	go func() {
		err := eg.Wait()
		close(events)
		report.Events = <-drained
		done <- err
	}()

	select {
	case <-ctx.Done():
		klog.V(2).Infof("compare: %d->%d abandoned: %v", source, destination, ctx.Err())
		return nil, ctx.Err()
	case err := <-done:
		if err != nil {
			return nil, err
		}
		return report, nil
	}
}

// run times one engine call and records it.
func (cfg config) run(g *core.Graph, alg Algorithm, source, destination int, events chan<- Event) (Result, error) {
	var stats core.SearchStats
	res := Result{Algorithm: alg, Cost: math.Inf(1)}

	listeners := []core.Listener{forwarder(alg, events)}
	if cfg.collector != nil {
		listeners = append(listeners, cfg.collector.Listener(string(alg)))
	}
	listener := core.Listeners(listeners...)

	var (
		table core.Table
		err   error
	)
	start := time.Now()
	switch alg {
	case Dijkstra:
		table, err = dijkstra.Dijkstra(g, source, destination,
			dijkstra.WithListener(listener),
			dijkstra.WithStats(&stats),
			dijkstra.WithTermination(cfg.termination),
		)
	case AStar:
		table, err = astar.AStar(g, source, destination,
			astar.WithListener(listener),
			astar.WithStats(&stats),
			astar.WithTermination(cfg.termination),
			astar.WithHeuristic(cfg.heuristic),
		)
	default:
		err = fmt.Errorf("compare: unknown algorithm %q", alg)
	}
	res.Elapsed = time.Since(start)
	res.Stats = stats

	if err != nil {
		cfg.observe(res, metrics.OutcomeFailed)
		return res, err
	}

	res.Table = table
	res.Reachable = table.Reachable(destination)
	outcome := metrics.OutcomeUnreachable
	if res.Reachable {
		res.Path = table.Path(destination)
		res.Cost = res.Path.Cost(g)
		outcome = metrics.OutcomeFound
	}
	cfg.observe(res, outcome)
	klog.V(2).Infof("compare: %s %d->%d reachable=%t cost=%.3f settled=%d updates=%d in %s",
		alg, source, destination, res.Reachable, res.Cost, stats.Settled, stats.Notifications, res.Elapsed)

	return res, nil
}

func (cfg config) observe(res Result, outcome string) {
	if cfg.collector == nil {
		return
	}
	cfg.collector.Observe(string(res.Algorithm), outcome, res.Stats, res.Elapsed)
}

// forwarder turns engine notifications into channel events.
func forwarder(alg Algorithm, events chan<- Event) core.Listener {
	seq := 0

	return core.ListenerFunc(func(p core.Path) {
		seq++
		events <- Event{Algorithm: alg, Seq: seq, Path: p}
	})
}
