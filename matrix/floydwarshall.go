// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with a deterministic k → i → j loop order.
//   - Oracle for the single-pair engines: tests and `pathrace run --verify`
//     compare their destination cost against ShortestDistances.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before closure.

package matrix

import (
	"fmt"
	"math"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

// Operation names for unified error wrapping.
const (
	opFloydWarshall     = "FloydWarshall"
	opShortestDistances = "ShortestDistances"
	opCheckSymmetric    = "CheckSymmetric"
)

// ShortestDistances returns the n×n matrix of shortest-path costs in g.
// Unreachable pairs hold +Inf; the diagonal is 0.
//
// Complexity: O(n³) time, O(n²) space.
func ShortestDistances(g *core.Graph) ([][]float64, error) {
	if g == nil {
		return nil, matrixErrorf(opShortestDistances, "%w", ErrNilGraph)
	}

	n := g.VertexCount()
	data := make([]float64, n*n)
	initDistances(g, data, n)
	floydWarshallInPlace(data, n)

	return unflatten(data, n), nil
}

// FloydWarshall closes the distance matrix d in place.
//
// Contract:
//   - d must be square; +Inf denotes "no edge"; the diagonal MUST be 0.
//   - No entry may be NaN.
func FloydWarshall(d [][]float64) error {
	n := len(d)
	var i, j int
	for i = 0; i < n; i++ {
		if len(d[i]) != n {
			return matrixErrorf(opFloydWarshall, "row %d has %d columns, want %d: %w", i, len(d[i]), n, ErrNotSquare)
		}
		for j = 0; j < n; j++ {
			if math.IsNaN(d[i][j]) {
				return matrixErrorf(opFloydWarshall, "d[%d][%d]: %w", i, j, ErrNaN)
			}
		}
		if d[i][i] != 0 {
			return matrixErrorf(opFloydWarshall, "d[%d][%d]=%v: %w", i, i, d[i][i], ErrNonZeroDiagonal)
		}
	}

	data := make([]float64, n*n)
	for i = 0; i < n; i++ {
		copy(data[i*n:(i+1)*n], d[i])
	}
	floydWarshallInPlace(data, n)
	for i = 0; i < n; i++ {
		copy(d[i], data[i*n:(i+1)*n])
	}

	return nil
}

// initDistances converts the adjacency of g into a distance buffer:
// diag = 0, missing edge = +Inf, edge = weight.
func initDistances(g *core.Graph, data []float64, n int) {
	inf := math.Inf(1)
	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch w = g.Weight(i, j); {
			case i == j:
				data[i*n+j] = 0
			case w == 0:
				data[i*n+j] = inf
			default:
				data[i*n+j] = w
			}
		}
	}
}

// floydWarshallInPlace runs the APSP closure on a flat row-major n×n buffer.
// Loop order is fixed (k → i → j); only strict improvements are written.
func floydWarshallInPlace(data []float64, n int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

func unflatten(data []float64, n int) [][]float64 {
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = data[i*n : (i+1)*n : (i+1)*n]
	}

	return out
}

// describe is used by CheckSymmetric error messages.
func describe(i, j int, a, b float64) string {
	return fmt.Sprintf("w[%d][%d]=%v w[%d][%d]=%v", i, j, a, j, i, b)
}
