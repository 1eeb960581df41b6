package ghash

import (
	"fmt"
	"testing"

	"github.com/joshuapare/hashkit/ghashutil"
	"github.com/joshuapare/hashkit/internal/testutil"
)

// ============================================================================
// Insert
// ============================================================================

var benchSizes = []int{100, 10_000, 1_000_000}

// Benchmark_Insert_StrMap measures building a string-keyed table.
func Benchmark_Insert_StrMap(b *testing.B) {
	for _, n := range benchSizes {
		keys := testutil.DistinctKeys("bench", n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				m := NewStrMap[int]("bench")
				for i, k := range keys {
					m.Insert(k, i)
				}
				m.Free(nil, nil)
			}
		})
	}
}

// Benchmark_Insert_XXMap is Benchmark_Insert_StrMap with xxhash keys.
func Benchmark_Insert_XXMap(b *testing.B) {
	for _, n := range benchSizes {
		keys := testutil.DistinctKeys("bench", n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				m := New[string, int](ghashutil.StrXX(), "bench")
				for i, k := range keys {
					m.Insert(k, i)
				}
				m.Free(nil, nil)
			}
		})
	}
}

// Benchmark_Insert_GoMap is the built-in map baseline.
func Benchmark_Insert_GoMap(b *testing.B) {
	for _, n := range benchSizes {
		keys := testutil.DistinctKeys("bench", n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				m := make(map[string]int)
				for i, k := range keys {
					m[k] = i
				}
			}
		})
	}
}

// ============================================================================
// Lookup
// ============================================================================

// Benchmark_Lookup_IntMap measures hits on a populated integer table.
func Benchmark_Lookup_IntMap(b *testing.B) {
	for _, n := range benchSizes {
		m := NewIntMap[int, int]("bench")
		for i := range n {
			m.Insert(i, i)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			sum := 0
			for i := range b.N {
				v, _ := m.Lookup(i % n)
				sum += v
			}
			_ = sum
		})
		m.Free(nil, nil)
	}
}

// Benchmark_Lookup_GoMap is the built-in map baseline.
func Benchmark_Lookup_GoMap(b *testing.B) {
	for _, n := range benchSizes {
		m := make(map[int]int, n)
		for i := range n {
			m[i] = i
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			sum := 0
			for i := range b.N {
				sum += m[i%n]
			}
			_ = sum
		})
	}
}

// ============================================================================
// Churn
// ============================================================================

// Benchmark_Churn_Shrinking measures interleaved inserts and removes on a
// table that is allowed to shrink.
func Benchmark_Churn_Shrinking(b *testing.B) {
	m := NewIntMap[int, int]("bench", WithShrink())
	defer m.Free(nil, nil)
	rng := testutil.Seeded(7)

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		k := rng.IntN(50_000)
		if i%2 == 0 {
			m.Reinsert(k, i, nil, nil)
		} else {
			m.Remove(k, nil, nil)
		}
	}
}

// Benchmark_Pop_Drain measures draining a table with Pop.
func Benchmark_Pop_Drain(b *testing.B) {
	const n = 10_000
	b.ReportAllocs()
	for range b.N {
		b.StopTimer()
		m := NewIntMap[int, int]("bench")
		for i := range n {
			m.Insert(i, i)
		}
		b.StartTimer()

		var state IterState
		for _, _, ok := m.Pop(&state); ok; _, _, ok = m.Pop(&state) {
		}
		m.Free(nil, nil)
	}
}
