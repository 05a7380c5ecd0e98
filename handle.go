package sched

import (
	"context"
	"sync/atomic"
)

// Handle is the future returned by Submit. It settles exactly once, with
// either the task's value or its error, and can be observed by any number
// of goroutines.
type Handle[T any] struct {
	done    chan struct{}
	val     T
	err     error
	settled atomic.Bool
}

func newHandle[T any]() *Handle[T] {
	return &Handle[T]{done: make(chan struct{})}
}

// Done returns a channel that is closed once the handle settles.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Result blocks until the handle settles, then returns the outcome.
// It is safe to call from multiple goroutines and after settlement.
func (h *Handle[T]) Result() (T, error) {
	<-h.done
	return h.val, h.err
}

// Wait is Result bounded by ctx. If ctx expires first, Wait returns
// ctx.Err(); the task keeps running and the handle settles later.
func (h *Handle[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-h.done:
		return h.val, h.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// settle records the outcome and releases waiters. Only the dispatch
// machinery calls it, once per handle; a second call is a bug in the
// scheduler, not a recoverable condition.
func (h *Handle[T]) settle(v T, err error) {
	if !h.settled.CompareAndSwap(false, true) {
		panic("sched: handle settled twice")
	}
	h.val = v
	h.err = err
	close(h.done)
}
