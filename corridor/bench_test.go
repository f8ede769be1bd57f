package corridor_test

import (
	"testing"

	"github.com/PennIARC/GridTesting/corridor"
	"github.com/PennIARC/GridTesting/mapgen"
	"github.com/PennIARC/GridTesting/scenario"
)

// BenchmarkSearch measures a budget-2 search on a default generated map.
func BenchmarkSearch(b *testing.B) {
	res, err := mapgen.Generate(mapgen.DefaultConfig(), mapgen.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	bundle, err := scenario.FromGenerated(res)
	if err != nil {
		b.Fatalf("setup bundle failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = corridor.Search(bundle.Grid, bundle.VisibleField, 2, 2)
	}
}
