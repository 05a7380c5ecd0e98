package sched

import (
	"context"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func BenchmarkSubmitThroughput(b *testing.B) {
	s, err := New[int](runtime.GOMAXPROCS(0), Options{QueueCapacity: 4096})
	if err != nil {
		b.Fatalf("new: %v", err)
	}
	defer s.Stop()

	var done atomic.Int64
	task := Task[int]{Fn: func(context.Context) (int, error) {
		done.Add(1)
		return 0, nil
	}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Submit(task); err != nil {
			b.Fatalf("submit: %v", err)
		}
	}
	waitUntilB(b, time.Minute, func() bool { return done.Load() == int64(b.N) })
}

func BenchmarkSubmitHighContention(b *testing.B) {
	s, err := New[int](2, Options{QueueCapacity: 4096})
	if err != nil {
		b.Fatalf("new: %v", err)
	}
	defer s.Stop()

	var done atomic.Int64
	var submitted atomic.Int64

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			prio := int(submitted.Add(1) % 8)
			_, err := s.Submit(Task[int]{Priority: prio, Fn: func(context.Context) (int, error) {
				done.Add(1)
				return 0, nil
			}})
			if err != nil {
				b.Fatalf("submit: %v", err)
			}
		}
	})
	waitUntilB(b, time.Minute, func() bool { return done.Load() == submitted.Load() })
}
