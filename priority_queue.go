package sched

import (
	"container/heap"
)

const prioCap = 256

// prioQueue holds pending records ordered by (priority descending,
// sequence ascending). It is owned exclusively by the dispatch goroutine
// and needs no locking of its own.
type prioQueue[T any] struct {
	pq taskHeap[T]
}

// newPrioQueue creates a priority queue initialized as a max-heap with
// the given preallocated capacity.
func newPrioQueue[T any](capacity int) *prioQueue[T] {
	if capacity <= 0 {
		capacity = prioCap
	}
	q := &prioQueue[T]{}
	q.pq = make(taskHeap[T], 0, capacity)
	heap.Init(&q.pq)
	return q
}

// Push inserts a record. Afterward Pop order reflects the ordering key.
func (p *prioQueue[T]) Push(rec *record[T]) {
	heap.Push(&p.pq, rec)
}

// Pop removes and returns the record with the highest priority, earliest
// sequence among ties. It returns nil and false if the queue is empty.
// A popped record is never reinserted.
func (p *prioQueue[T]) Pop() (*record[T], bool) {
	if p.pq.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&p.pq).(*record[T]), true
}

// Len returns the number of records currently queued.
func (p *prioQueue[T]) Len() int {
	return p.pq.Len()
}

// taskHeap — max-heap by (priority, then earlier seq)
type taskHeap[T any] []*record[T]

func (pq taskHeap[T]) Len() int { return len(pq) }
func (pq taskHeap[T]) Less(i, j int) bool {
	if pq[i].task.Priority != pq[j].task.Priority {
		return pq[i].task.Priority > pq[j].task.Priority // max-heap
	}
	return pq[i].seq < pq[j].seq
}
func (pq taskHeap[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *taskHeap[T]) Push(x any) {
	*pq = append(*pq, x.(*record[T]))
}

func (pq *taskHeap[T]) Pop() any {
	old := *pq
	n := len(old)
	rec := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return rec
}
