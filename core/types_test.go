package core_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
)

// square returns the 4-vertex square with one diagonal:
//
//	3 ─── 2
//	│   ╱ │
//	│  ╱  │
//	0 ─── 1
func square(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New(
		[]orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 3}, [2]int{0, 2},
	)
	require.NoError(t, err)

	return g
}

func TestNew_Errors(t *testing.T) {
	pts := []orb.Point{{0, 0}, {1, 0}, {1, 0}}

	_, err := core.New(nil)
	assert.ErrorIs(t, err, core.ErrNoVertices)

	_, err = core.New(pts, [2]int{0, 3})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = core.New(pts, [2]int{-1, 0})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = core.New(pts, [2]int{1, 1})
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = core.New(pts, [2]int{0, 1}, [2]int{1, 0})
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	// vertices 1 and 2 share a coordinate
	_, err = core.New(pts, [2]int{1, 2})
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestNew_SymmetricEuclideanWeights(t *testing.T) {
	g := square(t)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.InDelta(t, 10.0, g.Weight(0, 1), 1e-12)
	assert.InDelta(t, math.Sqrt(200), g.Weight(0, 2), 1e-12)
	assert.Equal(t, 0.0, g.Weight(1, 3), "no edge between 1 and 3")

	for i := 0; i < g.VertexCount(); i++ {
		assert.Equal(t, 0.0, g.Weight(i, i))
		for j := 0; j < g.VertexCount(); j++ {
			assert.Equal(t, g.Weight(i, j), g.Weight(j, i))
		}
	}
}

func TestGraph_Accessors(t *testing.T) {
	g := square(t)

	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Equal(t, 3, g.Degree(0))
	assert.False(t, g.Isolated(3))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(1, 3))
	assert.InDelta(t, math.Sqrt(200), g.Distance(1, 3), 1e-12, "distance ignores adjacency")
	assert.Equal(t, orb.Point{10, 10}, g.Point(2))
	assert.Equal(t, core.Vertex{Index: 3, Point: orb.Point{0, 10}}, g.Vertex(3))
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}, g.Bounds())

	edges := g.Edges()
	require.Len(t, edges, 5)
	for _, e := range edges {
		assert.Less(t, e.From, e.To)
		assert.Equal(t, g.Weight(e.From, e.To), e.Weight)
	}

	assert.True(t, g.Contains(0))
	assert.False(t, g.Contains(4))
	assert.False(t, g.Contains(-1))
	assert.Panics(t, func() { g.Weight(0, 4) })
}

func TestGraph_AccessorsReturnCopies(t *testing.T) {
	g := square(t)

	m := g.WeightMatrix()
	m[0][1] = 999
	assert.InDelta(t, 10.0, g.Weight(0, 1), 1e-12)

	pts := g.Points()
	pts[0] = orb.Point{42, 42}
	assert.Equal(t, orb.Point{0, 0}, g.Point(0))

	nb := g.Neighbors(0)
	nb[0] = 3
	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
}

func TestGraph_Stats(t *testing.T) {
	g, err := core.New([]orb.Point{{0, 0}, {3, 4}, {100, 100}}, [2]int{0, 1})
	require.NoError(t, err)

	s := g.Stats()
	assert.Equal(t, 3, s.VertexCount)
	assert.Equal(t, 1, s.EdgeCount)
	assert.Equal(t, 1, s.IsolatedCount)
	assert.Equal(t, 2, s.Components)
	assert.Equal(t, 1, s.MaxDegree)
	assert.InDelta(t, 5.0, s.TotalWeight, 1e-12)
	assert.InDelta(t, 1.0/3.0, s.Density, 1e-12)
}

func TestValidate(t *testing.T) {
	g := square(t)

	assert.NoError(t, core.Validate(g, 0, 3))
	assert.ErrorIs(t, core.Validate(nil, 0), core.ErrNilGraph)
	assert.ErrorIs(t, core.Validate(g, 0, 4), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, core.Validate(g, -1), core.ErrVertexOutOfRange)
}

func TestMaxEdges(t *testing.T) {
	assert.Equal(t, 0, core.MaxEdges(0))
	assert.Equal(t, 0, core.MaxEdges(1))
	assert.Equal(t, 1, core.MaxEdges(2))
	assert.Equal(t, 45, core.MaxEdges(10))
}

func TestGraph_Components(t *testing.T) {
	//  0 ─ 1    3 ─ 4    5
	//   ╲ ╱
	//    2
	g, err := core.New(
		[]orb.Point{{0, 0}, {2, 0}, {1, 1}, {10, 0}, {12, 0}, {20, 20}},
		[2]int{1, 2}, [2]int{0, 1}, [2]int{2, 0}, [2]int{4, 3},
	)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}, {5}}, g.Components())
	assert.True(t, g.Connected(2, 0))
	assert.True(t, g.Connected(5, 5))
	assert.False(t, g.Connected(0, 3))
	assert.False(t, g.Connected(4, 5))
	assert.Panics(t, func() { g.Connected(0, 6) })

	assert.Len(t, square(t).Components(), 1)
}
