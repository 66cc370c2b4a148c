package metrics

import (
	"sync/atomic"
	"time"
)

// DummyRegistry creates metrics that are only counted in memory. Used when telemetry is off and in tests.
type DummyRegistry struct{}

func NewDummyRegistry() *DummyRegistry {
	return &DummyRegistry{}
}

func (*DummyRegistry) NewCounter(...string) Counter {
	return &dummyCounter{}
}

func (*DummyRegistry) NewTimer(...string) Timer {
	return &dummyTimer{}
}

type dummyCounter struct {
	count int64
}

func (counter *dummyCounter) Inc() {
	atomic.AddInt64(&counter.count, 1)
}

func (counter *dummyCounter) Count() int64 {
	return atomic.LoadInt64(&counter.count)
}

type dummyTimer struct {
	count int64
}

func (timer *dummyTimer) UpdateSince(time.Time) {
	atomic.AddInt64(&timer.count, 1)
}

func (timer *dummyTimer) Count() int64 {
	return atomic.LoadInt64(&timer.count)
}
