package sched

// Options configure a Scheduler.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// QueueCapacity preallocates the pending-task heap.
	QueueCapacity int

	// Metrics receives queueing and execution counters. Defaults to
	// NoopMetrics.
	Metrics MetricsPolicy
}

func (o *Options) FillDefaults() {
	if o.QueueCapacity <= 0 {
		o.QueueCapacity = prioCap
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
