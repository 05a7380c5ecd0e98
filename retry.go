package sched

import (
	"context"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

const (
	defaultAttempts     = 3
	defaultInitialRetry = 200 * time.Millisecond
	defaultMaxRetry     = 5 * time.Second
)

// RetryPolicy describes how many times and how often a task should be retried.
// Zero values are treated as "use defaults".
type RetryPolicy struct {
	// Attempts is the maximum number of tries for a task.
	Attempts int

	// Initial is the first backoff duration.
	Initial time.Duration

	// Max is the cap for backoff duration.
	Max time.Duration
}

// GetDefaultRP returns a pointer to the default retry policy.
// Useful in tests or when composing wrappers with the same defaults.
func GetDefaultRP() *RetryPolicy {
	rp := RetryPolicy{
		Attempts: defaultAttempts,
		Initial:  defaultInitialRetry,
		Max:      defaultMaxRetry,
	}
	return &rp
}

// WithRetry wraps fn so that failures are re-attempted with backoff.
// The scheduler itself never retries; submit the wrapped function when
// retry semantics are wanted. The last error is returned once attempts
// are exhausted, and the wait between attempts aborts on ctx
// cancellation.
func WithRetry[T any](pol RetryPolicy, fn TaskFunc[T]) TaskFunc[T] {
	if pol.Attempts <= 0 {
		pol.Attempts = defaultAttempts
	}
	if pol.Initial <= 0 {
		pol.Initial = defaultInitialRetry
	}
	if pol.Max <= 0 {
		pol.Max = defaultMaxRetry
	}

	return func(ctx context.Context) (T, error) {
		logger := lg.FromContext(ctx)
		bo := boff.New(pol.Initial, pol.Max, time.Now().UnixNano())
		var zero T

		for attempt := 1; ; attempt++ {
			v, err := fn(ctx)
			if err == nil {
				return v, nil
			}
			if attempt == pol.Attempts {
				logger.Error("Task retry exhausted", lg.Int("attempt", attempt), lg.Any("error", err))
				return zero, err
			}
			delay := bo.Next()
			logger.Warn("task attempt failed; backing off",
				lg.Int("attempt", attempt),
				lg.String("sleep", delay.String()),
				lg.Any("error", err),
			)
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C // drain if timer is fired
				}
				return zero, ctx.Err()
			}
		}
	}
}
