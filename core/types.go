// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, sentinel errors and the New constructor.
// Policy:
//   - Graph is immutable after New returns; no method mutates it.
//   - Weights are always recomputed from coordinates (Euclidean), never trusted from input.

package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates that an unordered pair was listed more than once.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrNoVertices indicates that New received an empty point set.
	ErrNoVertices = errors.New("core: graph needs at least one vertex")
)

// Vertex is a node of the graph: its index and its fixed position in the plane.
type Vertex struct {
	// Index identifies the vertex, 0..n-1.
	Index int

	// Point is the vertex coordinate. X grows to the right, Y grows downwards
	// (canvas convention), which does not matter for distances.
	Point orb.Point
}

// Edge is an undirected weighted connection. Listings always report From < To.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is an immutable, simple, undirected graph whose edge weights are the
// Euclidean distances between vertex coordinates.
//
// weights holds the symmetric n×n matrix in row-major order; weights[i*n+j] == 0
// means there is no edge between i and j.
type Graph struct {
	points  []orb.Point
	weights []float64
	degree  []int
	edges   int
}

// New builds a Graph over the given points with one edge per pair.
// Each pair is an unordered {u, v}; its weight is the Euclidean distance
// between points[u] and points[v].
//
// Errors:
//   - ErrNoVertices if len(points) == 0.
//   - ErrVertexOutOfRange if an endpoint is outside [0, len(points)).
//   - ErrSelfLoop if u == v.
//   - ErrDuplicateEdge if {u, v} appears twice (in either orientation).
//
// Two distinct points at the same coordinate would yield a zero weight, which
// the matrix cannot tell apart from "no edge"; such pairs are rejected as
// ErrSelfLoop since they are loops in the plane.
//
// Complexity: O(n² + m) time and O(n²) space.
func New(points []orb.Point, pairs ...[2]int) (*Graph, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoVertices
	}

	g := &Graph{
		points:  make([]orb.Point, n),
		weights: make([]float64, n*n),
		degree:  make([]int, n),
	}
	copy(g.points, points)

	var u, v int
	var w float64
	for _, p := range pairs {
		u, v = p[0], p[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("core: New: edge {%d,%d} with n=%d: %w", u, v, n, ErrVertexOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("core: New: edge {%d,%d}: %w", u, v, ErrSelfLoop)
		}
		if g.weights[u*n+v] != 0 {
			return nil, fmt.Errorf("core: New: edge {%d,%d}: %w", u, v, ErrDuplicateEdge)
		}
		w = planar.Distance(points[u], points[v])
		if w == 0 {
			return nil, fmt.Errorf("core: New: edge {%d,%d} joins coincident points %v: %w", u, v, points[u], ErrSelfLoop)
		}
		g.weights[u*n+v] = w
		g.weights[v*n+u] = w
		g.degree[u]++
		g.degree[v]++
		g.edges++
	}

	return g, nil
}

// Contains reports whether i is a valid vertex index.
func (g *Graph) Contains(i int) bool {
	return i >= 0 && i < len(g.points)
}

// Validate returns ErrNilGraph or a wrapped ErrVertexOutOfRange for the first
// invalid index in ids, or nil. Engines call it before touching any state.
func Validate(g *Graph, ids ...int) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, id := range ids {
		if !g.Contains(id) {
			return fmt.Errorf("vertex %d not in [0,%d): %w", id, len(g.points), ErrVertexOutOfRange)
		}
	}

	return nil
}

// mustContain panics for an invalid index; accessors behave like slice indexing.
func (g *Graph) mustContain(i int) {
	if !g.Contains(i) {
		panic(fmt.Sprintf("core: vertex %d out of range [0,%d)", i, len(g.points)))
	}
}

// infinity is the distance reported for "no route".
var infinity = math.Inf(1)
