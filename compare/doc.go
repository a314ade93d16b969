// Package compare races Dijkstra against A* on one graph.
//
// Run starts both engines on their own goroutines (errgroup), times each
// call with a wall-clock timer and forwards every path update into a single
// channel. One consumer goroutine drains that channel and hands the events,
// in arrival order, to the optional Sink. A UI that must touch its widgets
// from one thread plugs in there.
//
// The engines themselves cannot be interrupted. When ctx ends first, Run
// returns ctx.Err() at once and the engines finish in the background; their
// results are discarded.
package compare
