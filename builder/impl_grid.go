// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go: implementation of NewGridGraph(height, width).
//
// Model:
//   • Rows start at y = margin and continue while y < height, step = spacing.
//   • Within a row, x starts at margin and a vertex is placed while
//     x + spacing < width, so the last column keeps a spacing-wide gutter.
//   • Vertex index = row*columns + column (row-major).
//   • Each vertex links to its right (row, column+1) and bottom (row+1, column)
//     neighbor where they exist; weight = spacing (Euclidean, via core.New).
//
// Contract:
//   • height ≥ 1, width ≥ 1 (else ErrInvalidArgument).
//   • At least one vertex must fit (else ErrCanvasTooSmall).
//
// Determinism:
//   • No randomness; identical inputs give identical graphs.

package builder

import (
	"github.com/paulmach/orb"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

// NewGridGraph returns a lattice graph that fills a height×width canvas.
func NewGridGraph(height, width int, opts ...BuilderOption) (*core.Graph, error) {
	if height < MinCanvasSide || width < MinCanvasSide {
		return nil, invalidf(MethodGridGraph, "canvas %dx%d (height x width) must be at least %dx%d",
			height, width, MinCanvasSide, MinCanvasSide)
	}

	cfg := newBuilderConfig(opts...)
	margin, step := cfg.gridMargin, cfg.gridSpacing

	rows, cols := GridShape(height, width, margin, step)
	if rows == 0 || cols == 0 {
		return nil, invalidAsf(MethodGridGraph, ErrCanvasTooSmall,
			"no vertex fits in %dx%d with margin=%d spacing=%d", height, width, margin, step)
	}

	points := make([]orb.Point, 0, rows*cols)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			points = append(points, orb.Point{
				float64(margin + c*step),
				float64(margin + r*step),
			})
		}
	}

	pairs := make([][2]int, 0, rows*(cols-1)+cols*(rows-1))
	var u int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			u = r*cols + c
			if c+1 < cols {
				pairs = append(pairs, [2]int{u, u + 1})
			}
			if r+1 < rows {
				pairs = append(pairs, [2]int{u, u + cols})
			}
		}
	}

	g, err := core.New(points, pairs...)
	if err != nil {
		return nil, invalidf(MethodGridGraph, "core.New: %v", err)
	}

	return g, nil
}

// GridShape returns how many rows and columns NewGridGraph places on a
// height×width canvas for the given margin and spacing.
func GridShape(height, width, margin, spacing int) (rows, cols int) {
	if spacing <= 0 {
		return 0, 0
	}
	for y := margin; y < height; y += spacing {
		rows++
	}
	for x := margin; x+spacing < width; x += spacing {
		cols++
	}

	return rows, cols
}
