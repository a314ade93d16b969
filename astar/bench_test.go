package astar_test

import (
	"testing"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/astar"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/builder"
)

func BenchmarkAStar_Random200(b *testing.B) {
	g, err := builder.NewRandomGraph(200, 800, 600, 800, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.AStar(g, 0, 199)
	}
}

func BenchmarkAStar_GridCorner(b *testing.B) {
	g, err := builder.NewGridGraph(400, 600)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.AStar(g, 0, g.VertexCount()-1)
	}
}
