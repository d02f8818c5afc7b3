package array

import (
	"fmt"
	"testing"
)

// BenchmarkBoxing compares unboxed storage with its boxed form
func BenchmarkBoxing(b *testing.B) {
	for _, size := range []int{1000, 100000} {
		p, _ := NewPrimitive(size, func(i int) int64 { return int64(i) })

		b.Run(fmt.Sprintf("ToBoxed_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = p.ToBoxed()
			}
		})

		boxed := p.ToBoxed()
		b.Run(fmt.Sprintf("FromBoxed_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := FromBoxed(boxed); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(fmt.Sprintf("MemoryUsage_%d", size), func(b *testing.B) {
			b.ReportMetric(float64(p.MemoryUsage())/float64(size), "bytes/element")
			for i := 0; i < b.N; i++ {
				_ = p.MemoryUsage()
			}
		})
	}
}

// BenchmarkEquality measures shallow and deep comparison of nested arrays
func BenchmarkEquality(b *testing.B) {
	build := func() *Array[*Array[int]] {
		outer, _ := New(100, func(i int) *Array[int] {
			inner, _ := New(100, func(j int) int { return i * j })
			return inner
		})
		return outer
	}
	x, y := build(), build()

	b.Run("Shallow", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = ShallowEqual(x, y)
		}
	})
	b.Run("Deep", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if !DeepEqual(x, y) {
				b.Fatal("expected deep equality")
			}
		}
	})
}

// BenchmarkString measures rendering through the pooled builders
func BenchmarkString(b *testing.B) {
	p, _ := NewPrimitive(10000, func(i int) float64 { return float64(i) / 3 })

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.String()
	}
}
