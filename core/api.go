// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over an immutable Graph.
// Policy:
//   - Every slice returned here is a fresh copy; callers may modify it freely.
//   - Index arguments out of range panic, exactly like slice indexing. Engines
//     validate their inputs with Validate first and return ErrVertexOutOfRange.

package core

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// VertexCount returns n, the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.points)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// MaxEdges returns n·(n-1)/2, the edge capacity of a simple undirected graph
// on n vertices.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Point returns the coordinate of vertex i.
func (g *Graph) Point(i int) orb.Point {
	g.mustContain(i)

	return g.points[i]
}

// Vertex returns vertex i with its coordinate.
func (g *Graph) Vertex(i int) Vertex {
	g.mustContain(i)

	return Vertex{Index: i, Point: g.points[i]}
}

// Vertices returns all vertices in index order.
// Complexity: O(n).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.points))
	for i, p := range g.points {
		out[i] = Vertex{Index: i, Point: p}
	}

	return out
}

// Points returns a copy of the vertex coordinates in index order.
func (g *Graph) Points() []orb.Point {
	out := make([]orb.Point, len(g.points))
	copy(out, g.points)

	return out
}

// Weight returns the weight of edge {i, j}, or 0 when there is no edge.
// Weight(i, i) is always 0.
// Complexity: O(1).
func (g *Graph) Weight(i, j int) float64 {
	g.mustContain(i)
	g.mustContain(j)

	return g.weights[i*len(g.points)+j]
}

// HasEdge reports whether i and j are adjacent.
func (g *Graph) HasEdge(i, j int) bool {
	return g.Weight(i, j) > 0
}

// Distance returns the Euclidean distance between the coordinates of i and j,
// whether or not they are adjacent. It is the A* heuristic and a lower bound on
// the cost of any path from i to j.
func (g *Graph) Distance(i, j int) float64 {
	g.mustContain(i)
	g.mustContain(j)

	return planar.Distance(g.points[i], g.points[j])
}

// Neighbors returns the vertices adjacent to i in ascending order.
// Complexity: O(n) (one matrix row scan).
func (g *Graph) Neighbors(i int) []int {
	g.mustContain(i)
	n := len(g.points)
	out := make([]int, 0, g.degree[i])
	row := g.weights[i*n : (i+1)*n]
	for j, w := range row {
		if w > 0 {
			out = append(out, j)
		}
	}

	return out
}

// Degree returns the number of edges incident to i.
func (g *Graph) Degree(i int) int {
	g.mustContain(i)

	return g.degree[i]
}

// Isolated reports whether i has no incident edge at all.
func (g *Graph) Isolated(i int) bool {
	return g.Degree(i) == 0
}

// Edges returns every edge once, ordered by (From, To) with From < To.
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	n := len(g.points)
	out := make([]Edge, 0, g.edges)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w := g.weights[i*n+j]; w > 0 {
				out = append(out, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return out
}

// WeightMatrix returns a fresh n×n copy of the adjacency weights.
// Complexity: O(n²).
func (g *Graph) WeightMatrix() [][]float64 {
	n := len(g.points)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		copy(out[i], g.weights[i*n:(i+1)*n])
	}

	return out
}

// Bounds returns the smallest axis-aligned box containing every vertex.
func (g *Graph) Bounds() orb.Bound {
	return orb.MultiPoint(g.points).Bound()
}

// GraphStats is a snapshot summary of a Graph.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	IsolatedCount int     // vertices with degree 0
	Components    int     // connected components, isolated vertices included
	MaxDegree     int     // largest vertex degree
	TotalWeight   float64 // sum of all edge weights
	Density       float64 // EdgeCount / MaxEdges(VertexCount); 0 when n < 2
}

// Stats returns a summary of g.
// Complexity: O(n²).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		VertexCount: len(g.points),
		EdgeCount:   g.edges,
	}
	for _, d := range g.degree {
		if d == 0 {
			s.IsolatedCount++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	for _, e := range g.Edges() {
		s.TotalWeight += e.Weight
	}
	s.Components = len(g.Components())
	if capacity := MaxEdges(s.VertexCount); capacity > 0 {
		s.Density = float64(s.EdgeCount) / float64(capacity)
	}

	return s
}
