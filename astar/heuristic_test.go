package astar_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/astar"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/builder"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/matrix"
)

func TestHeuristics_Values(t *testing.T) {
	a, b := orb.Point{1, 2}, orb.Point{4, 6}

	assert.Equal(t, 5.0, astar.Euclidean(a, b))
	assert.Equal(t, 4.0, astar.Chebyshev(a, b))
	assert.Equal(t, 7.0, astar.Manhattan(a, b))
	assert.Equal(t, 0.0, astar.Zero(a, b))
}

func TestParseHeuristic(t *testing.T) {
	p := orb.Point{3, 4}
	for name, want := range map[string]float64{
		"": 5, "Euclidean": 5, "chebyshev": 4, " manhattan ": 7, "zero": 0, "none": 0,
	} {
		h, err := astar.ParseHeuristic(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, h(orb.Point{}, p), name)
	}

	_, err := astar.ParseHeuristic("octile")
	assert.ErrorIs(t, err, astar.ErrBadHeuristic)
}

// Every heuristic but Manhattan must never exceed the true remaining cost.
func TestHeuristics_Admissible(t *testing.T) {
	admissible := map[string]astar.Heuristic{
		"euclidean": astar.Euclidean,
		"chebyshev": astar.Chebyshev,
		"zero":      astar.Zero,
	}
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.NewRandomGraph(20, 40, 200, 200, builder.WithSeed(seed))
		require.NoError(t, err)
		oracle, err := matrix.ShortestDistances(g)
		require.NoError(t, err)

		for v := 0; v < g.VertexCount(); v++ {
			for d := 0; d < g.VertexCount(); d++ {
				if math.IsInf(oracle[v][d], 1) {
					continue
				}
				for name, h := range admissible {
					assert.LessOrEqual(t, h(g.Point(v), g.Point(d)), oracle[v][d]+1e-9,
						"%s seed=%d %d->%d", name, seed, v, d)
				}
			}
		}
	}

	// Manhattan overestimates the diagonal of the square.
	g := square(t)
	assert.Greater(t, astar.Manhattan(g.Point(0), g.Point(2)), g.Weight(0, 2))
}
