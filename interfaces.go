package userportal

import (
	"context"
	"time"

	"github.com/prometheus/common/model"
)

// Directory is the read-only view over the identity directory holding users and allocations.
type Directory interface {
	FindAllocations(ctx context.Context, filter AllocationFilter) ([]AllocationRecord, error)
	FindUserByUsername(ctx context.Context, username string) (DirectoryUser, error)
	FindUserByUID(ctx context.Context, uid int) (DirectoryUser, error)
	IsGroupMember(ctx context.Context, group, username string) (bool, error)
}

// Logger implements logger abstraction.
type Logger interface {
	Debug() EventBuilder
	Info() EventBuilder
	Error() EventBuilder
	Fatal() EventBuilder
	Warning() EventBuilder

	// Level sets minimal level of logger
	Level(string) (Logger, error)

	// Clone returns independent copy of logger, fields added to a clone don't affect the parent
	Clone() Logger

	// Following methods add fields to every log event of this logger
	String(key, value string) Logger
	Int(key string, value int) Logger
	Int64(key string, value int64) Logger
	Fields(fields map[string]interface{}) Logger
}

// EventBuilder allows to build log events with custom tags.
type EventBuilder interface {
	String(key, value string) EventBuilder
	Error(err error) EventBuilder
	Int(key string, value int) EventBuilder
	Int64(key string, value int64) EventBuilder
	Interface(key string, value interface{}) EventBuilder
	Fields(fields map[string]interface{}) EventBuilder

	// Msg must be called after all tags were set
	Msg(message string)
}

// MetricSource queries the metrics time-series database.
type MetricSource interface {
	// Filter returns label matchers appended to every generated query, e.g. cluster="narval"
	Filter() string
	QueryRange(ctx context.Context, query string, start, end time.Time, step time.Duration) ([]time.Time, []float64, error)
	QueryRangeMultiple(ctx context.Context, query string, start, end time.Time, step time.Duration) ([]Series, error)
	QueryLast(ctx context.Context, query string) (model.Value, error)
}

// Clock is the source of current time.
type Clock interface {
	NowUTC() time.Time
}
