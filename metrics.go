package sched

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the scheduler to report
// queueing and execution activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking
type MetricsPolicy interface {

	// IncExecuted increments the executed tasks counter.
	IncExecuted()

	// IncQueued increments the queued tasks counter.
	IncQueued()

	// DecQueued decrements the queued counter when a task leaves the
	// queue, whether it starts or is failed on shutdown.
	DecQueued()
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// executed is the total number of tasks that ran to completion,
	// successfully or not.
	executed atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	// queued is the current number of tasks waiting to start.
	queued atomic.Int64
}

// Executed returns the total number of executed tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// Queued returns the current number of queued tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Queued() int64 {
	return m.queued.Load()
}

// IncExecuted increments the executed tasks counter by one.
func (m *AtomicMetrics) IncExecuted() {
	m.executed.Add(1)
}

// IncQueued increments the queued tasks counter by one.
func (m *AtomicMetrics) IncQueued() {
	m.queued.Add(1)
}

// DecQueued decrements the queued tasks counter by one.
func (m *AtomicMetrics) DecQueued() {
	m.queued.Add(-1)
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncExecuted() {}
func (m *NoopMetrics) IncQueued()   {}
func (m *NoopMetrics) DecQueued()   {}
