package metrics

import "time"

// Registry creates named metrics.
type Registry interface {
	NewCounter(path ...string) Counter
	NewTimer(path ...string) Timer
}

// Counter is a monotonically growing metric.
type Counter interface {
	Inc()
	Count() int64
}

// Timer observes durations.
type Timer interface {
	UpdateSince(ts time.Time)
	Count() int64
}
