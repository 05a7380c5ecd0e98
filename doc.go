// Package sched provides a priority-based task scheduler with a
// runtime-adjustable concurrency limit and future-style completion handles.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - Bound concurrent execution to an adjustable limit
//   - Start queued tasks strictly by priority, FIFO among ties
//   - Report each task's outcome exactly once, through its handle
//   - Keep all scheduling state behind a single dispatch goroutine
//
// Architecture overview
//
// The scheduler is composed of three loosely coupled layers:
//
//   1. Ordering (prioQueue)
//      A binary heap keyed by (priority descending, sequence ascending).
//      The sequence number is assigned at insertion and breaks ties in
//      favor of earlier submissions, so equal-priority tasks run in
//      arrival order.
//
//   2. Dispatch (the dispatch goroutine)
//      One goroutine owns the heap, the running count, and the limit.
//      Submissions, limit changes, and completions arrive as channel
//      events; after each event the goroutine starts queued tasks while
//      running < limit. Because no other goroutine touches this state,
//      no interleaving of the public operations can overshoot the limit
//      or corrupt the ordering.
//
//   3. Execution (task goroutines)
//      Each admitted task runs on its own goroutine, settles its handle
//      with the outcome, and signals the dispatch goroutine that a slot
//      is free.
//
// Limit changes
//
// SetLimit takes effect immediately for queued work: raising the limit
// starts waiting tasks without requiring a new submission. Lowering it
// never interrupts running tasks; they finish naturally and new starts
// are throttled until the running count falls under the new limit, so
// the count may transiently exceed the limit after a decrease.
//
// Priority is an admission policy only. A later, higher-priority
// submission overtakes queued work but never preempts a task that has
// already started.
//
// Completion handles
//
// Submit returns a Handle that settles exactly once, with the task's
// value or its error. Task failures are relayed verbatim; they are never
// retried or swallowed by the scheduler. Panics inside tasks are
// recovered and surface as handle errors.
//
// Composition
//
// Cancellation, timeouts, delays, and retries are not scheduler
// features. They are adapters over a single TaskFunc — Delayed,
// WithTimeout, WithRetry, FromFunc — applied before submission. The
// scheduler treats every task as an opaque unit whose only observable
// events are started and finished.
//
// Shutdown
//
// Shutdown rejects further submissions, settles every still-queued
// handle with ErrClosed, and waits for running tasks to finish on their
// own. Tasks already executing always settle with their real outcome.
package sched
