package list

import (
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	l, err := New[int64](nil)
	if err != nil {
		b.Fatal(err)
	}
	defer l.Free()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Add(int64(i))
	}
}

func BenchmarkAdd_NativeAppendBaseline(b *testing.B) {
	s := make([]int64, 0, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = append(s, int64(i))
	}
	_ = s
}

func BenchmarkAddRange(b *testing.B) {
	batch := make([]int64, 64)
	for i := range batch {
		batch[i] = int64(i)
	}
	l, err := New[int64](nil)
	if err != nil {
		b.Fatal(err)
	}
	defer l.Free()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.AddRange(batch)
	}
}

func BenchmarkInsertFront(b *testing.B) {
	l, err := New[int64](nil)
	if err != nil {
		b.Fatal(err)
	}
	defer l.Free()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.InsertAt(0, int64(i))
	}
}

func BenchmarkRemoveFront(b *testing.B) {
	l, err := WithCapacity[int64](nil, int64(b.N))
	if err != nil {
		b.Fatal(err)
	}
	defer l.Free()
	for i := 0; i < b.N; i++ {
		_ = l.Add(int64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.RemoveAt(0)
	}
}

func BenchmarkItems(b *testing.B) {
	l, err := New[int64](nil)
	if err != nil {
		b.Fatal(err)
	}
	defer l.Free()
	for i := int64(0); i < 1024; i++ {
		_ = l.Add(i)
	}

	b.ResetTimer()
	var sum int64
	for i := 0; i < b.N; i++ {
		for _, v := range l.Items() {
			sum += v
		}
	}
	_ = sum
}
