package cuckoo

import (
	"math/rand/v2"
	"testing"
)

func benchFilter(b *testing.B, spaceOptimized bool) *Filter[int] {
	size, err := NewSize(1<<16, 4, 16)
	if err != nil {
		b.Fatal(err)
	}
	f, err := New(Config{
		Size:           size,
		SpaceOptimized: spaceOptimized,
		Rand:           rand.New(rand.NewPCG(1, 2)),
	}, IntFunnel)
	if err != nil {
		b.Fatal(err)
	}
	return f
}

func BenchmarkInsert(b *testing.B) {
	f := benchFilter(b, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Insert(i % 200000)
	}
}

func BenchmarkInsertSemiSorted(b *testing.B) {
	f := benchFilter(b, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Insert(i % 200000)
	}
}

func BenchmarkContains(b *testing.B) {
	f := benchFilter(b, false)
	for i := 0; i < 100000; i++ {
		f.Insert(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Contains(i % 200000)
	}
}

func BenchmarkContainsSemiSorted(b *testing.B) {
	f := benchFilter(b, true)
	for i := 0; i < 100000; i++ {
		f.Insert(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Contains(i % 200000)
	}
}

func BenchmarkSerializeTable(b *testing.B) {
	f := benchFilter(b, false)
	for i := 0; i < 100000; i++ {
		f.Insert(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.SerializeTable()
	}
}
