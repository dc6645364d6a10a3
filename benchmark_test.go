package region

import (
	"math/rand/v2"
	"testing"
)

// setupBenchRegion creates a Region with n overlapping members scattered over
// a 1024x1024 map.
func setupBenchRegion(n int) *Region {
	rng := rand.New(rand.NewPCG(42, 42))
	rs := make([]Rectangle, 0, n)
	for i := 0; i < n; i++ {
		rs = append(rs, Rectangle{
			X:      int32(rng.IntN(1000)),
			Y:      int32(rng.IntN(1000)),
			Width:  int32(8 + rng.IntN(64)),
			Height: int32(8 + rng.IntN(64)),
		})
	}
	return NewRegion(rs)
}

// --- Area Benchmarks ---

func BenchmarkArea_100Members(b *testing.B) {
	reg := setupBenchRegion(100)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = reg.Area()
	}
}

func BenchmarkArea_500Members(b *testing.B) {
	reg := setupBenchRegion(500)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = reg.Area()
	}
}

// --- Query Benchmarks ---

func BenchmarkContainsRect_500Members(b *testing.B) {
	reg := setupBenchRegion(500)
	probe := Rectangle{500, 500, 32, 32}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = reg.Contains(probe)
	}
}

func BenchmarkContainsPoint_500Members(b *testing.B) {
	reg := setupBenchRegion(500)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = reg.ContainsPoint(int32(i%1024), int32(i/1024%1024))
	}
}

// --- Edit Benchmarks ---

func BenchmarkSubtract_100Members(b *testing.B) {
	base := setupBenchRegion(100)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		reg := base.Clone()
		reg.Subtract(Rectangle{256, 256, 512, 512})
	}
}

func BenchmarkAdd_Paint(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var reg Region
		for j := int32(0); j < 64; j++ {
			reg.Add(Rectangle{j * 4, j * 2, 16, 16})
		}
	}
}
