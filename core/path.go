package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is an ordered route of vertex indices; Path[0] is the source.
//
// Engines never modify a Path after publishing it: an improvement produces a
// new Path via Extend. Listeners receive their own copy.
type Path []int

// Extend returns a new Path equal to p followed by v. p is left untouched.
func (p Path) Extend(v int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = v

	return out
}

// Clone returns an independent copy of p (nil stays nil).
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Last returns the final vertex of p, or -1 for an empty path.
func (p Path) Last() int {
	if len(p) == 0 {
		return -1
	}

	return p[len(p)-1]
}

// Cost returns the sum of edge weights along p in g. An empty or single-vertex
// path costs 0. A hop between non-adjacent (or invalid) vertices makes the
// cost +Inf.
func (p Path) Cost(g *Graph) float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		if !g.Contains(p[i-1]) || !g.Contains(p[i]) {
			return infinity
		}
		w := g.Weight(p[i-1], p[i])
		if w == 0 {
			return infinity
		}
		total += w
	}

	return total
}

// String renders p as "0 -> 4 -> 2".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}

// Table holds the best-known Path for every vertex at the moment an engine
// returned. An empty entry means no route is known.
//
// With early termination only the destination entry is guaranteed to be a
// shortest path; other entries reflect the search state at exit.
type Table []Path

// NewTable returns a table of n empty paths with Table[source] = [source].
func NewTable(n, source int) Table {
	t := make(Table, n)
	t[source] = Path{source}

	return t
}

// Reachable reports whether a route to v is known.
func (t Table) Reachable(v int) bool {
	return v >= 0 && v < len(t) && len(t[v]) > 0
}

// Path returns a copy of the route to v, or nil if none is known.
func (t Table) Path(v int) Path {
	if !t.Reachable(v) {
		return nil
	}

	return t[v].Clone()
}

// Cost returns the cost of the route to v in g, or +Inf if none is known.
func (t Table) Cost(g *Graph, v int) float64 {
	if !t.Reachable(v) {
		return infinity
	}

	return t[v].Cost(g)
}

// Listener receives every improved path, synchronously, on the goroutine that
// runs the engine. It must not block for long: the search waits for it.
// Implementations that drive a UI must marshal the call to their own context.
type Listener interface {
	PathUpdated(p Path)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(p Path)

// PathUpdated calls f(p).
func (f ListenerFunc) PathUpdated(p Path) { f(p) }

// NopListener discards every notification.
var NopListener Listener = ListenerFunc(func(Path) {})

// Listeners fans a notification out to every non-nil listener in order.
// Each listener gets its own copy of the path.
func Listeners(ls ...Listener) Listener {
	kept := make([]Listener, 0, len(ls))
	for _, l := range ls {
		if l != nil {
			kept = append(kept, l)
		}
	}
	if len(kept) == 1 {
		return kept[0]
	}

	return ListenerFunc(func(p Path) {
		for _, l := range kept {
			l.PathUpdated(p.Clone())
		}
	})
}

// Termination selects when an engine stops searching.
type Termination int

const (
	// StopOnSettle returns as soon as the destination is finalized: selected as
	// the closest unvisited vertex (Dijkstra) or popped from the queue (A*).
	// The destination path is then a shortest path.
	StopOnSettle Termination = iota

	// StopOnReach returns the moment the destination's path first improves.
	// Fastest, but the returned route is only the first one discovered and may
	// be longer than the shortest. It mirrors the classic Dijkstra early exit;
	// A* would otherwise only ever stop on popping the destination, so astar
	// ignores it and behaves as under StopOnSettle.
	StopOnReach

	// Exhaustive never stops early: every reachable vertex ends up with its
	// shortest path in the table.
	Exhaustive
)

// String returns the flag spelling of t.
func (t Termination) String() string {
	switch t {
	case StopOnSettle:
		return "settle"
	case StopOnReach:
		return "reach"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("Termination(%d)", int(t))
	}
}

// ParseTermination maps "settle", "reach" or "exhaustive" to a Termination.
func ParseTermination(s string) (Termination, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "settle":
		return StopOnSettle, nil
	case "reach":
		return StopOnReach, nil
	case "exhaustive", "full":
		return Exhaustive, nil
	default:
		return StopOnSettle, fmt.Errorf("core: unknown termination %q", s)
	}
}

// SearchStats counts the work of one engine run. Engines fill it only when the
// caller passes one in; it is never shared between runs.
type SearchStats struct {
	Settled       int // vertices finalized and expanded
	Relaxations   int // strict distance improvements
	Notifications int // listener calls
	Pushes        int // priority-queue inserts (A* only)
}
