package openaddressing

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
)

const benchmarkItemCount = 1024

// compares with https://github.com/cornelk/hashmap and https://github.com/alphadose/haxmap, both lock free maps
// used here single threaded.

func setupTable(b *testing.B) *Table[int, int] {
	b.Helper()

	m := New[int, int](0, nil)
	for i := 0; i < benchmarkItemCount; i++ {
		m.Insert(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int, int] {
	b.Helper()

	m := hashmap.New[int, int]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, int] {
	b.Helper()

	m := haxmap.New[int, int]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func BenchmarkReadTable(b *testing.B) {
	m := setupTable(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if v := m.Find(i); v == nil || *v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if v, ok := m.Get(i); !ok || v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if v, ok := m.Get(i); !ok || v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkWriteTable(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := New[int, int](0, nil)
		for i := 0; i < benchmarkItemCount; i++ {
			m.Insert(i, i)
		}
		for i := 0; i < benchmarkItemCount; i += 2 {
			m.Erase(i)
		}
	}
}

func BenchmarkWriteHashMap(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := hashmap.New[int, int]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
		for i := 0; i < benchmarkItemCount; i += 2 {
			m.Del(i)
		}
	}
}

func BenchmarkWriteHaxMap(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := haxmap.New[int, int]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
		for i := 0; i < benchmarkItemCount; i += 2 {
			m.Del(i)
		}
	}
}
