package sched

import (
	"context"
)

// TaskFunc is the unit of work accepted by the scheduler. It runs at most
// once and reports its outcome through the return values; the scheduler
// relays that outcome to the task's Handle verbatim.
type TaskFunc[T any] func(ctx context.Context) (T, error)

// Task bundles a function with its submission attributes.
type Task[T any] struct {
	// Fn is the work to execute. Required.
	Fn TaskFunc[T]

	// Ctx is passed to Fn and used for logging. Defaults to
	// context.Background(). The scheduler itself never cancels it;
	// compose WithTimeout or a cancellable context before submission.
	Ctx context.Context

	// Priority orders queued tasks, higher first. Tasks of equal
	// priority start in submission order. Zero is a valid priority.
	Priority int
}

// record is a queued task together with the bookkeeping the dispatch
// goroutine needs. Immutable after the dispatch goroutine assigns seq.
type record[T any] struct {
	task Task[T]

	// seq is assigned by the dispatch goroutine at insertion and breaks
	// priority ties in favor of earlier submissions.
	seq uint64

	handle *Handle[T]
}
