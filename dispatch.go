package sched

import (
	"fmt"

	lg "github.com/Andrej220/go-utils/zlog"
)

// dispatch is the dedicated goroutine that:
//   - owns the priority queue and the running/limit pair
//   - starts queued tasks while running < limit, highest priority first
//   - reacts to submissions, limit changes, and completions
//   - settles queued-but-unstarted handles on shutdown
//
// Every state-changing event re-enters the same fill loop, so a freed
// slot or a raised limit is consumed immediately without recursion.
func (s *Scheduler[T]) dispatch(limit int) {
	q := newPrioQueue[T](s.opts.QueueCapacity)
	running := 0
	var seq uint64

loop:
	for {
		for running < limit {
			rec, ok := q.Pop()
			if !ok {
				break
			}
			s.metrics.DecQueued()
			running++
			s.running.Store(int32(running))
			s.queued.Store(int32(q.Len()))
			s.start(rec)
		}

		select {
		case <-s.stopCh:
			break loop

		case rec := <-s.submitCh:
			seq++
			rec.seq = seq
			q.Push(rec)
			s.queued.Store(int32(q.Len()))

		case n := <-s.limitCh:
			limit = n

		case <-s.finishCh:
			running--
			s.running.Store(int32(running))
		}
	}

	// Shutdown: fail whatever never started, then wait out the tasks
	// still running. Submissions that won the race with close(closed)
	// are settled the same way.
	for {
		rec, ok := q.Pop()
		if !ok {
			break
		}
		s.metrics.DecQueued()
		var zero T
		rec.handle.settle(zero, ErrClosed)
	}
	s.queued.Store(0)

	for running > 0 {
		select {
		case <-s.finishCh:
			running--
			s.running.Store(int32(running))
		case rec := <-s.submitCh:
			s.metrics.DecQueued()
			var zero T
			rec.handle.settle(zero, ErrClosed)
		}
	}

	close(s.doneCh)
}

// start launches one task goroutine. The goroutine settles the handle
// with the task's outcome and then notifies the dispatch loop that a
// slot is free; it never touches the queue or counters directly.
func (s *Scheduler[T]) start(rec *record[T]) {
	go func() {
		logger := lg.FromContext(rec.task.Ctx).With(lg.Int("priority", rec.task.Priority))
		logger.Info("Task started", lg.Int32("running", s.running.Load()))

		v, err := runTask(rec.task)
		if err != nil {
			logger.Error("Task failed", lg.Any("error", err))
		} else {
			logger.Info("Task finished")
		}

		rec.handle.settle(v, err)
		s.metrics.IncExecuted()
		s.finishCh <- struct{}{}
	}()
}

// runTask executes the task function, converting a panic into an error
// so the handle still settles and the worker goroutine survives.
func runTask[T any](t Task[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v = zero
			err = fmt.Errorf("sched: task panicked: %v", r)
		}
	}()
	return t.Fn(t.Ctx)
}
