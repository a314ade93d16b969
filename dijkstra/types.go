// Package dijkstra defines sentinel errors and functional options for Dijkstra.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = fmt.Errorf("dijkstra: %w", core.ErrNilGraph)

	// ErrVertexOutOfRange indicates a source or destination outside [0, n).
	ErrVertexOutOfRange = fmt.Errorf("dijkstra: %w", core.ErrVertexOutOfRange)

	// ErrNilListener is the panic value of WithListener(nil).
	ErrNilListener = errors.New("dijkstra: listener is nil")

	// ErrBadTermination is the panic value of WithTermination for an unknown mode.
	ErrBadTermination = errors.New("dijkstra: unknown termination mode")
)

// Options configures one Dijkstra run.
//
// Listener    – receives a copy of every improved path (default: none).
// Stats       – if non-nil, filled with the run's counters.
// Termination – when to stop; default core.StopOnSettle.
type Options struct {
	Listener    core.Listener
	Stats       *core.SearchStats
	Termination core.Termination
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithListener subscribes l to path updates. Panics if l is nil.
func WithListener(l core.Listener) Option {
	if l == nil {
		panic(ErrNilListener.Error())
	}

	return func(o *Options) {
		o.Listener = l
	}
}

// WithStats asks Dijkstra to record its counters into s. A nil s disables it.
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

// DefaultOptions returns the configuration used when no Option is given:
// no listener, no stats, core.StopOnSettle.
func DefaultOptions() Options {
	return Options{Termination: core.StopOnSettle}
}
