package binder

import "testing"

func BenchmarkBindRelease(b *testing.B) {
	p := New(0)
	for i := 0; i < b.N; i++ {
		h := p.Bind()
		*h.Get()++
		h.Release()
	}
}

func BenchmarkBindReleaseNoLeakCheck(b *testing.B) {
	p := New(0, WithLeakCheck(false))
	for i := 0; i < b.N; i++ {
		h := p.Bind()
		*h.Get()++
		h.Release()
	}
}

func BenchmarkTryBindParallel(b *testing.B) {
	p := New(0, WithLeakCheck(false))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h, err := p.TryBind()
			if err != nil {
				continue
			}
			*h.Get()++
			h.Release()
		}
	})
}
