package sched

import (
	"math/rand"
	"sort"
	"testing"
)

func TestPrioQueueOrdering(t *testing.T) {
	q := newPrioQueue[int](0)

	push := func(prio int, seq uint64) {
		q.Push(&record[int]{task: Task[int]{Priority: prio}, seq: seq})
	}
	push(0, 1)
	push(5, 2)
	push(5, 3)
	push(2, 4)

	want := []struct {
		prio int
		seq  uint64
	}{
		{5, 2}, // highest priority, earlier seq first
		{5, 3},
		{2, 4},
		{0, 1},
	}
	for i, w := range want {
		rec, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue empty", i)
		}
		if rec.task.Priority != w.prio || rec.seq != w.seq {
			t.Fatalf("pop %d = (prio %d, seq %d); want (prio %d, seq %d)",
				i, rec.task.Priority, rec.seq, w.prio, w.seq)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("pop on empty queue returned a record")
	}
}

func TestPrioQueueRandomizedMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	q := newPrioQueue[int](0)
	type key struct {
		prio int
		seq  uint64
	}
	keys := make([]key, 0, 500)
	for seq := uint64(1); seq <= 500; seq++ {
		k := key{prio: rng.Intn(10) - 5, seq: seq}
		keys = append(keys, k)
		q.Push(&record[int]{task: Task[int]{Priority: k.prio}, seq: k.seq})
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].prio != keys[j].prio {
			return keys[i].prio > keys[j].prio
		}
		return keys[i].seq < keys[j].seq
	})

	for i, w := range keys {
		rec, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue empty; len reported %d", i, q.Len())
		}
		if rec.task.Priority != w.prio || rec.seq != w.seq {
			t.Fatalf("pop %d = (prio %d, seq %d); want (prio %d, seq %d)",
				i, rec.task.Priority, rec.seq, w.prio, w.seq)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("len after draining = %d; want 0", q.Len())
	}
}
