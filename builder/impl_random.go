// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go: implementation of NewRandomGraph(n, m, height, width).
//
// Model:
//   • n vertices at distinct uniformly random integer points of [0,width)×[0,height).
//   • m distinct undirected edges. Each attempt draws source uniformly, then
//     destination uniformly with self-loops resampled; a pair that already has
//     an edge is retried and does not count.
//   • Edge weight = Euclidean distance between the endpoints (computed by core.New).
//
// Contract:
//   • n ≥ 1, m ≥ 0, height ≥ 1, width ≥ 1 (else ErrInvalidArgument).
//   • m ≤ n·(n-1)/2 (else ErrTooManyEdges).
//   • width·height ≥ n (else ErrCanvasTooSmall); distinct positions keep every
//     edge weight strictly positive, so "0 = no edge" stays unambiguous.
//
// Determinism:
//   • Fixed draw order: all x,y pairs in vertex order, then edge attempts.
//   • Identical graphs for identical seeds.

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/yourbasic/bit"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

// NewRandomGraph returns a random Euclidean graph with exactly edgeCount edges
// on vertexCount vertices placed inside a height×width canvas.
func NewRandomGraph(vertexCount, edgeCount, height, width int, opts ...BuilderOption) (*core.Graph, error) {
	// 1) Validate parameters before drawing anything.
	if vertexCount < MinVertices {
		return nil, invalidf(MethodRandomGraph, "vertexCount=%d < min=%d", vertexCount, MinVertices)
	}
	if edgeCount < 0 {
		return nil, invalidf(MethodRandomGraph, "edgeCount=%d is negative", edgeCount)
	}
	if height < MinCanvasSide || width < MinCanvasSide {
		return nil, invalidf(MethodRandomGraph, "canvas %dx%d (height x width) must be at least %dx%d",
			height, width, MinCanvasSide, MinCanvasSide)
	}
	if limit := core.MaxEdges(vertexCount); edgeCount > limit {
		return nil, invalidAsf(MethodRandomGraph, ErrTooManyEdges,
			"edgeCount=%d > n(n-1)/2=%d for n=%d", edgeCount, limit, vertexCount)
	}
	if int64(height)*int64(width) < int64(vertexCount) {
		return nil, invalidAsf(MethodRandomGraph, ErrCanvasTooSmall,
			"%d vertices do not fit on %dx%d distinct positions", vertexCount, height, width)
	}

	cfg := newBuilderConfig(opts...)
	rng := cfg.randomSource()

	// 2) Place vertices.
	points := randomPoints(rng, vertexCount, height, width)

	// 3) Draw edges.
	pairs := randomPairs(rng, vertexCount, edgeCount)

	// 4) core.New computes the symmetric Euclidean weights.
	g, err := core.New(points, pairs...)
	if err != nil {
		return nil, invalidf(MethodRandomGraph, "core.New: %v", err)
	}

	return g, nil
}

// randomPoints draws n distinct integer points; a repeated position is redrawn.
func randomPoints(rng *rand.Rand, n, height, width int) []orb.Point {
	points := make([]orb.Point, 0, n)
	taken := make(map[[2]int]struct{}, n)
	var x, y int
	for len(points) < n {
		x = rng.Intn(width)
		y = rng.Intn(height)
		if _, dup := taken[[2]int{x, y}]; dup {
			continue
		}
		taken[[2]int{x, y}] = struct{}{}
		points = append(points, orb.Point{float64(x), float64(y)})
	}

	return points
}

// randomPairs draws m distinct unordered pairs over n vertices. The bit set is
// keyed by lo*n+hi, which is bounded by the n² matrix core.New allocates anyway.
func randomPairs(rng *rand.Rand, n, m int) [][2]int {
	pairs := make([][2]int, 0, m)
	seen := new(bit.Set)
	var u, v, lo, hi, key int
	for len(pairs) < m {
		u = rng.Intn(n)
		v = u
		for v == u {
			v = rng.Intn(n)
		}

		lo, hi = u, v
		if lo > hi {
			lo, hi = hi, lo
		}
		key = lo*n + hi
		if seen.Contains(key) {
			// Existing edge: retry this attempt without counting it.
			continue
		}
		seen.Add(key)
		pairs = append(pairs, [2]int{u, v})
	}

	return pairs
}
