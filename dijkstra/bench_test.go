package dijkstra_test

import (
	"testing"

	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/builder"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/core"
	"github.com/Vitya77/Dejkstra-Astar-Algorithms-Comparison/dijkstra"
)

func BenchmarkDijkstra_Random200(b *testing.B) {
	g, err := builder.NewRandomGraph(200, 800, 600, 800, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, 0, 199)
	}
}

func BenchmarkDijkstra_GridExhaustive(b *testing.B) {
	g, err := builder.NewGridGraph(400, 600)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, 0, g.VertexCount()-1, dijkstra.WithTermination(core.Exhaustive))
	}
}
