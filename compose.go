package sched

import (
	"context"
	"time"
)

// This file holds one-shot adapters over a single TaskFunc. They share no
// state with the scheduler and compose freely before submission.

// Delayed runs fn after d has elapsed. The wait aborts on ctx
// cancellation without invoking fn.
func Delayed[T any](d time.Duration, fn TaskFunc[T]) TaskFunc[T] {
	return func(ctx context.Context) (T, error) {
		timer := time.NewTimer(d)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			var zero T
			return zero, ctx.Err()
		}
		return fn(ctx)
	}
}

// WithTimeout races fn against a deadline. If fn does not return within
// d, the wrapper returns context.DeadlineExceeded; fn keeps running in
// the background with a cancelled context and its result is discarded.
func WithTimeout[T any](d time.Duration, fn TaskFunc[T]) TaskFunc[T] {
	return func(ctx context.Context) (T, error) {
		tctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		type outcome struct {
			v   T
			err error
		}
		ch := make(chan outcome, 1)
		go func() {
			v, err := fn(tctx)
			ch <- outcome{v, err}
		}()

		select {
		case out := <-ch:
			return out.v, out.err
		case <-tctx.Done():
			var zero T
			return zero, tctx.Err()
		}
	}
}

// FromFunc adapts a plain nullary function into a TaskFunc, for work
// that has no use for a context.
func FromFunc[T any](f func() (T, error)) TaskFunc[T] {
	return func(context.Context) (T, error) {
		return f()
	}
}

// Resolve returns a task that immediately succeeds with v.
func Resolve[T any](v T) TaskFunc[T] {
	return func(context.Context) (T, error) {
		return v, nil
	}
}

// RejectWith returns a task that immediately fails with err.
func RejectWith[T any](err error) TaskFunc[T] {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}
