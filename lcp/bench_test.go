package lcp_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/strnum/lcp"
)

// benchmarkStrategy runs one strategy over 1000 strings sharing a
// 200-character prefix.
func benchmarkStrategy(b *testing.B, s lcp.Strategy) {
	prefix := strings.Repeat("x", 200)
	strs := make([]string, 1000)
	for i := range strs {
		strs[i] = prefix + strings.Repeat("y", i%50)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lcp.Find(strs, lcp.WithStrategy(s)); err != nil {
			b.Fatalf("Find failed: %v", err)
		}
	}
}

func BenchmarkFind_Horizontal(b *testing.B)       { benchmarkStrategy(b, lcp.Horizontal) }
func BenchmarkFind_Vertical(b *testing.B)         { benchmarkStrategy(b, lcp.Vertical) }
func BenchmarkFind_DivideAndConquer(b *testing.B) { benchmarkStrategy(b, lcp.DivideAndConquer) }
func BenchmarkFind_BinarySearch(b *testing.B)     { benchmarkStrategy(b, lcp.BinarySearch) }
func BenchmarkFind_Sorted(b *testing.B)           { benchmarkStrategy(b, lcp.Sorted) }
