package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/campusplanner/builder"
	"github.com/katalvlaran/campusplanner/dijkstra"
)

// BenchmarkDijkstra_RandomSparse measures a run over a 2,000-vertex random graph.
func BenchmarkDijkstra_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(2000,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.RandomSparse(0.005),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
