package compare

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/astar"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/metrics"
)

// Algorithm names one engine.
type Algorithm string

// Engines raced by Run.
const (
	Dijkstra Algorithm = "dijkstra"
	AStar    Algorithm = "astar"
)

// ErrNilGraph indicates that Run was given a nil graph.
var ErrNilGraph = errors.New("compare: graph is nil")

// Event is one path update, tagged with the engine that produced it.
// Seq numbers the events of one engine from 1.
type Event struct {
	Algorithm Algorithm
	Seq       int
	Path      core.Path
}

// Sink consumes events. It is always called from a single goroutine.
type Sink func(Event)

// Result is the outcome of one engine run.
type Result struct {
	Algorithm Algorithm
	Table     core.Table
	Path      core.Path // route to the destination, nil if unreachable
	Cost      float64   // +Inf if unreachable
	Reachable bool
	Elapsed   time.Duration
	Stats     core.SearchStats
}

// Report holds both results of one Run.
type Report struct {
	Source      int
	Destination int
	Dijkstra    Result
	AStar       Result
	Events      int // updates delivered through the sink goroutine
}

// Results returns the two results in a fixed order: Dijkstra, then A*.
func (r *Report) Results() []Result {
	return []Result{r.Dijkstra, r.AStar}
}

// SameCost reports whether both engines agree on reachability and, when the
// destination is reachable, on the cost within eps.
func (r *Report) SameCost(eps float64) bool {
	if r.Dijkstra.Reachable != r.AStar.Reachable {
		return false
	}
	if !r.Dijkstra.Reachable {
		return true
	}

	return math.Abs(r.Dijkstra.Cost-r.AStar.Cost) <= eps
}

// DefaultBuffer is the capacity of the event channel.
const DefaultBuffer = 64

type config struct {
	sink        Sink
	collector   *metrics.Collector
	termination core.Termination
	heuristic   astar.Heuristic
	buffer      int
}

// Option customizes Run.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		termination: core.StopOnSettle,
		heuristic:   astar.Euclidean,
		buffer:      DefaultBuffer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSink delivers every event to s. Panics on nil.
func WithSink(s Sink) Option {
	if s == nil {
		panic("compare: WithSink(nil)")
	}

	return func(c *config) {
		c.sink = s
	}
}

// WithCollector records runs and updates in col. Panics on nil.
func WithCollector(col *metrics.Collector) Option {
	if col == nil {
		panic("compare: WithCollector(nil)")
	}

	return func(c *config) {
		c.collector = col
	}
}

// WithTermination applies t to both engines. Panics on an unknown mode.
func WithTermination(t core.Termination) Option {
	if t < core.StopOnSettle || t > core.Exhaustive {
		panic(fmt.Sprintf("compare: WithTermination(%v)", t))
	}

	return func(c *config) {
		c.termination = t
	}
}

// WithHeuristic replaces the A* heuristic. Panics on nil.
func WithHeuristic(h astar.Heuristic) Option {
	if h == nil {
		panic("compare: WithHeuristic(nil)")
	}

	return func(c *config) {
		c.heuristic = h
	}
}

// WithBuffer sets the event channel capacity. Panics if n < 0.
func WithBuffer(n int) Option {
	if n < 0 {
		panic("compare: WithBuffer(n<0)")
	}

	return func(c *config) {
		c.buffer = n
	}
}
