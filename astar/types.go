package astar

import (
	"errors"
	"fmt"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

// Sentinel errors returned by AStar.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to AStar.
	ErrNilGraph = fmt.Errorf("astar: %w", core.ErrNilGraph)

	// ErrVertexOutOfRange indicates a source or destination outside [0, n).
	ErrVertexOutOfRange = fmt.Errorf("astar: %w", core.ErrVertexOutOfRange)

	// ErrBadHeuristic is returned by ParseHeuristic for an unknown name and is
	// the panic value of WithHeuristic(nil).
	ErrBadHeuristic = errors.New("astar: invalid heuristic")

	// ErrNilListener is the panic value of WithListener(nil).
	ErrNilListener = errors.New("astar: listener is nil")

	// ErrBadTermination is the panic value of WithTermination for an unknown mode.
	ErrBadTermination = errors.New("astar: unknown termination mode")
)

// Options configures one AStar run.
type Options struct {
	Heuristic   Heuristic
	Listener    core.Listener
	Stats       *core.SearchStats
	Termination core.Termination
}

// Option represents a functional option for configuring AStar.
type Option func(*Options)

// WithHeuristic replaces the default Euclidean heuristic. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic(ErrBadHeuristic.Error())
	}

	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithListener subscribes l to path updates. Panics if l is nil.
func WithListener(l core.Listener) Option {
	if l == nil {
		panic(ErrNilListener.Error())
	}

	return func(o *Options) {
		o.Listener = l
	}
}

// WithStats asks AStar to record its counters into s. A nil s disables it.
func WithStats(s *core.SearchStats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithTermination selects the stopping rule. Panics on an unknown mode.
func WithTermination(t core.Termination) Option {
	if t < core.StopOnSettle || t > core.Exhaustive {
		panic(ErrBadTermination.Error())
	}

	return func(o *Options) {
		o.Termination = t
	}
}

// DefaultOptions returns Euclidean, no listener, no stats, core.StopOnSettle.
func DefaultOptions() Options {
	return Options{
		Heuristic:   Euclidean,
		Termination: core.StopOnSettle,
	}
}
