package sched

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
)

// Sentinel errors returned by the public operations.
var (
	// ErrNegativeLimit reports a negative concurrency value passed to
	// New or SetLimit. Negative limits are rejected, not clamped.
	ErrNegativeLimit = fmt.Errorf("sched: negative concurrency limit")

	// ErrClosed is returned by Submit and SetLimit after shutdown, and
	// settles every handle that was still queued when shutdown began.
	ErrClosed = fmt.Errorf("sched: scheduler closed")

	// ErrNilTask reports a Task submitted without a Fn.
	ErrNilTask = fmt.Errorf("sched: task has no function")
)

// Scheduler runs submitted tasks concurrently, at most limit at a time,
// highest priority first. The limit can be changed at runtime; lowering
// it never interrupts tasks already running.
//
// All queue and counter mutations happen on a single dispatch goroutine;
// Submit, SetLimit, and task completions only hand events to it. That
// goroutine is the sole authority deciding what starts next, so no
// interleaving of the public operations can overshoot the limit or
// corrupt the queue ordering.
type Scheduler[T any] struct {
	submitCh chan *record[T]
	limitCh  chan int
	finishCh chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{} // closed when dispatch drains and exits
	closed   chan struct{} // rejects new submissions
	stopOnce sync.Once

	// mirrors of dispatch-goroutine state, for observation only
	running atomic.Int32
	queued  atomic.Int32

	opts    Options
	metrics MetricsPolicy
}

// New creates a scheduler that runs at most limit tasks at once and starts
// its dispatch goroutine. A limit of zero is valid: tasks queue up until
// SetLimit raises it. A negative limit returns ErrNegativeLimit.
func New[T any](limit int, opts Options) (*Scheduler[T], error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}
	opts.FillDefaults()

	s := &Scheduler[T]{
		submitCh: make(chan *record[T]),
		limitCh:  make(chan int),
		finishCh: make(chan struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		closed:   make(chan struct{}),
		opts:     opts,
		metrics:  opts.Metrics,
	}
	go s.dispatch(limit)
	return s, nil
}

// Submit hands a task to the dispatch goroutine and returns its Handle.
// It never waits for the task to run, only for the dispatch goroutine to
// accept the record. The handle settles exactly once, with the task's
// value or its error.
func (s *Scheduler[T]) Submit(task Task[T]) (*Handle[T], error) {
	if task.Fn == nil {
		return nil, ErrNilTask
	}
	if task.Ctx == nil {
		task.Ctx = context.Background()
	}
	select {
	case <-s.closed:
		return nil, ErrClosed
	default:
	}
	rec := &record[T]{task: task, handle: newHandle[T]()}
	select {
	case s.submitCh <- rec:
		s.metrics.IncQueued()
		lg.FromContext(task.Ctx).Info("Task submitted", lg.Int("priority", task.Priority))
		return rec.handle, nil
	case <-s.closed:
		return nil, ErrClosed
	}
}

// SetLimit replaces the concurrency limit. Raising it immediately starts
// queued tasks into the new capacity; lowering it lets running tasks
// finish naturally and only throttles new starts. A negative value
// returns ErrNegativeLimit.
func (s *Scheduler[T]) SetLimit(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLimit, n)
	}
	select {
	case <-s.closed:
		return ErrClosed
	default:
	}
	select {
	case s.limitCh <- n:
		return nil
	case <-s.closed:
		return ErrClosed
	}
}

// Shutdown stops the scheduler: new submissions are rejected with
// ErrClosed, every still-queued handle settles with ErrClosed, and
// running tasks finish naturally. Shutdown waits for those tasks until
// ctx expires. Safe to call more than once.
func (s *Scheduler[T]) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.closed)
		close(s.stopCh)
	})
	select {
	case <-s.doneCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop is Shutdown without a deadline.
func (s *Scheduler[T]) Stop() { _ = s.Shutdown(context.Background()) }

// Running returns the number of tasks currently executing.
func (s *Scheduler[T]) Running() int32 { return s.running.Load() }

// QueueLen returns the number of tasks waiting to start.
func (s *Scheduler[T]) QueueLen() int { return int(s.queued.Load()) }
