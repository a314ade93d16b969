package astar_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

// square is (0,0),(10,0),(10,10),(0,10) with the four sides and diagonal 0-2.
func square(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.New(
		[]orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 3}, [2]int{0, 2},
	)
	require.NoError(t, err)

	return g
}

// detour has two routes from 0 to 3: through the close vertex 1 (cost ≈11.05,
// found first) and through 2 (cost ≈10.05, the shortest).
func detour(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.New(
		[]orb.Point{{0, 0}, {0, -1}, {5, 0.5}, {10, 0}},
		[2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 3},
	)
	require.NoError(t, err)

	return g
}

// recorder collects every notification.
type recorder struct {
	paths []core.Path
}

func (r *recorder) PathUpdated(p core.Path) { r.paths = append(r.paths, p) }

// perVertex counts notifications by the vertex they end at.
func (r *recorder) perVertex() map[int]int {
	out := make(map[int]int)
	for _, p := range r.paths {
		out[p.Last()]++
	}

	return out
}
