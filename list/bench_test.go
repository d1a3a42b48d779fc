package list

import "testing"

func BenchmarkPushBack(b *testing.B) {
	l := New[int]()
	for i := 0; i < b.N; i++ {
		l.PushBack(i)
	}
}

func BenchmarkPushPopFront(b *testing.B) {
	l := New[int]()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
		l.PopFront()
	}
}

func BenchmarkGetMiddle(b *testing.B) {
	l := New[int]()
	for i := 0; i < 1024; i++ {
		l.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Get(512)
	}
}

// Append splices in constant time; Extend copies every value. The two
// benchmarks bound the cost of moving a 1024-element chain either way.
func BenchmarkAppendSplice(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := New[int]()
		other := New[int]()
		for j := 0; j < 1024; j++ {
			other.PushBack(j)
		}
		b.StartTimer()
		l.Append(other)
	}
}

func BenchmarkExtendCopy(b *testing.B) {
	other := New[int]()
	for j := 0; j < 1024; j++ {
		other.PushBack(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := New[int]()
		l.Extend(other)
	}
}

func BenchmarkReverse(b *testing.B) {
	l := New[int]()
	for i := 0; i < 1024; i++ {
		l.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Reverse()
	}
}
